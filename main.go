package main

import (
	"os"

	"gush/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gush/core/shell"
)

// builtinsCmd shows which commands the shell handles itself.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands the shell handles itself.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range shell.BuiltinNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}

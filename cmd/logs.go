package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gush/core/shell"
)

// logsCmd replays a session log written with --log-file.
var logsCmd = &cobra.Command{
	Use:   "logs FILE",
	Short: "Replay a recorded session log.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fd, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		w := cmd.OutOrStdout()
		return shell.ReadLog(fd, func(ev shell.Event) {
			when := ev.Time.Format(time.RFC3339)
			switch ev.Outcome {
			case shell.OutcomeExec:
				fmt.Fprintf(w, "%s $ %s (%s)\n", when, ev.Line, ev.Path)
			default:
				fmt.Fprintf(w, "%s $ %s [%s]\n", when, ev.Line, ev.Outcome)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
}

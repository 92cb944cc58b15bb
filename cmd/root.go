package cmd

import (
	"os"

	"github.com/abiosoft/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gush/core/shell"
)

var (
	logPath string
	noColor bool

	// exitStatus holds the termination status requested by the shell.
	exitStatus int
)

// rootCmd runs the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "gush",
	Short: "An interactive command interpreter.",
	Long: `gush reads one command per line, handles builtins itself and runs
everything else from the search path, printing the captured output.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &readline.Config{
			Stdin:  readline.NewCancelableStdin(os.Stdin),
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			FuncGetWidth: func() int {
				width, _, err := term.GetSize(int(os.Stdout.Fd()))
				if err != nil {
					return 80
				}
				return width
			},
			FuncIsTerminal: func() bool {
				return term.IsTerminal(int(os.Stdin.Fd()))
			},
		}
		if err := cfg.Init(); err != nil {
			return err
		}
		rl, err := readline.NewEx(cfg)
		if err != nil {
			return err
		}
		defer rl.Close()

		s := shell.New(rl, os.Stdout, os.Stderr)
		s.Color = !noColor && term.IsTerminal(int(os.Stderr.Fd()))

		if logPath != "" {
			fd, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				return err
			}
			defer fd.Close()
			s.Recorder = shell.NewJSONRecorder(fd)
		}

		status, err := s.Run()
		if err != nil {
			return err
		}
		exitStatus = status
		return nil
	},
}

// Execute runs the root command and returns the process exit status.
// This is called by main.main().
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitStatus
}

func init() {
	rootCmd.Flags().StringVar(&logPath, "log-file", "", "append a JSON session log to this file")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

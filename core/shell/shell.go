package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
)

// DefaultPrompt is written (and flushed) before every read.
const DefaultPrompt = "$ "

// LineReader yields one line of input per prompt cycle, with the
// trailing newline already removed.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Shell owns one read-eval-print session. The zero value is not
// usable; construct with New or populate every field.
type Shell struct {
	Reader   LineReader
	Stdout   io.Writer
	Stderr   io.Writer
	Sys      Sys
	Path     SearchPath
	Resolver *Resolver
	Runner   Runner
	Recorder Recorder
	Prompt   string

	// Color turns on colored diagnostics. Leave it off when stderr
	// is not a terminal.
	Color bool
}

// New creates a Shell bound to the real OS: the search path from PATH,
// os/exec for externals and no session log.
func New(reader LineReader, stdout, stderr io.Writer) *Shell {
	return &Shell{
		Reader:   reader,
		Stdout:   stdout,
		Stderr:   stderr,
		Sys:      OSSys{},
		Path:     SearchPathFromEnv(os.Getenv("PATH")),
		Resolver: NewResolver(),
		Runner:   ExecRunner{},
		Recorder: NopRecorder{},
		Prompt:   DefaultPrompt,
	}
}

var errColor = color.New(color.FgRed)

// Errorf prints a recoverable diagnostic to stderr.
func (s *Shell) Errorf(format string, a ...interface{}) {
	if s.Color {
		fmt.Fprint(s.Stderr, errColor.Sprintf(format, a...))
		return
	}
	fmt.Fprintf(s.Stderr, format, a...)
}

// Run drives the read-eval-print loop until a builtin requests
// termination or input is closed. The returned status is the process
// exit code. A non-nil error means the execution environment itself
// failed and no further progress is possible.
func (s *Shell) Run() (int, error) {
	for {
		s.Reader.SetPrompt(s.Prompt)
		line, err := s.Reader.Readline()

		switch {
		case err == io.EOF:
			return 0, nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Interrupt clears the line.

		case err != nil:
			return 1, fmt.Errorf("read input: %w", err)
		}

		line = strings.Trim(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		req, err := s.Eval(line)
		if err != nil {
			return 1, err
		}
		if req != nil {
			return int(req.Code), nil
		}
	}
}

// Eval tokenizes and dispatches a single non-blank line. Recoverable
// problems are printed and reported as (nil, nil).
func (s *Shell) Eval(line string) (*ExitRequest, error) {
	tokens, err := Split(line)
	if err != nil {
		s.record(line, OutcomeParseError, "")
		s.Errorf("gush: syntax error: %v\n", err)
		return nil, nil
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	cmd := Command{Program: tokens[0], Args: tokens[1:]}

	if builtin, ok := AllBuiltins[cmd.Program]; ok {
		s.record(line, OutcomeBuiltin, "")
		return builtin.Main(s, cmd.Args)
	}

	if path, ok := s.Resolver.Resolve(s.Path, cmd.Program); ok {
		s.record(line, OutcomeExec, path)
		return nil, s.runExternal(path, cmd)
	}

	s.record(line, OutcomeNotFound, "")
	fmt.Fprintf(s.Stderr, "%s: command not found\n", cmd.Program)
	return nil, nil
}

// runExternal spawns the resolved program, waits for it and writes its
// captured output through unmodified. A spawn failure is reported and
// the loop continues; a failure to write the shell's own streams is
// fatal.
func (s *Shell) runExternal(path string, cmd Command) error {
	res, err := s.Runner.Run(path, cmd.Args)
	if err != nil {
		s.Errorf("%s: %v\n", cmd.Program, err)
		return nil
	}
	if _, err := s.Stdout.Write(res.Stdout); err != nil {
		return err
	}
	if _, err := s.Stderr.Write(res.Stderr); err != nil {
		return err
	}
	return nil
}

func (s *Shell) record(line string, outcome Outcome, path string) {
	if s.Recorder == nil {
		return
	}
	ev := Event{Time: time.Now().UTC(), Line: line, Outcome: outcome, Path: path}
	if err := s.Recorder.Record(ev); err != nil {
		log.Printf("session log: %v", err)
	}
}

package shell

import (
	"bytes"
	"errors"
	"os/exec"
)

// RunResult holds everything a finished external process produced.
type RunResult struct {
	Stdout     []byte
	Stderr     []byte
	ExitStatus int
}

// Runner launches an external program, waits for it to complete and
// yields its captured output streams and exit status. A non-nil error
// means the program could not be run at all.
type Runner interface {
	Run(path string, args []string) (RunResult, error)
}

// ExecRunner runs programs on the host OS.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(path string, args []string) (RunResult, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := RunResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitStatus = exitErr.ExitCode()
	default:
		return res, err
	}
	return res, nil
}

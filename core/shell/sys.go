package shell

import (
	"os"
	"path/filepath"
)

// Sys abstracts the process-wide OS state the shell reads and mutates:
// the working directory and the user's home. Handlers receive it
// explicitly so tests can substitute a fake.
type Sys interface {
	Getwd() (string, error)
	Chdir(dir string) error
	// Realpath canonicalizes path relative to the working directory,
	// resolving ".", ".." and symlinks.
	Realpath(path string) (string, error)
	UserHomeDir() (string, error)
}

// OSSys is the real process state.
type OSSys struct{}

var _ Sys = OSSys{}

func (OSSys) Getwd() (string, error) { return os.Getwd() }

func (OSSys) Chdir(dir string) error { return os.Chdir(dir) }

func (OSSys) UserHomeDir() (string, error) { return os.UserHomeDir() }

func (OSSys) Realpath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

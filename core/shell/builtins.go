package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

// AllBuiltins holds every registered shell builtin.
var AllBuiltins = make(map[string]Builtin)

// ExitRequest asks the read-eval-print loop to stop and exit the
// process with Code.
type ExitRequest struct {
	Code uint8
}

// Builtin is a command the shell handles itself instead of launching
// an external program. A non-nil ExitRequest stops the loop; a non-nil
// error is fatal to it. Recoverable problems are printed by the
// handler and reported as (nil, nil).
type Builtin interface {
	Main(s *Shell, args []string) (*ExitRequest, error)
}

// BuiltinFunc adapts a function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) (*ExitRequest, error)

func (f BuiltinFunc) Main(s *Shell, args []string) (*ExitRequest, error) {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// BuiltinNames returns the registered builtin names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(AllBuiltins))
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exit ends the shell. With no argument the requested status is 0;
// with one argument it is the argument parsed as an unsigned byte.
// Bad arguments are reported and the loop continues.
func Exit(s *Shell, args []string) (*ExitRequest, error) {
	switch len(args) {
	case 0:
		return &ExitRequest{}, nil
	case 1:
		code, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			s.Errorf("exit: %s: numeric argument required\n", args[0])
			return nil, nil
		}
		return &ExitRequest{Code: uint8(code)}, nil
	default:
		s.Errorf("exit: too many arguments\n")
		return nil, nil
	}
}

// Echo prints its arguments joined by single spaces.
func Echo(s *Shell, args []string) (*ExitRequest, error) {
	fmt.Fprintln(s.Stdout, strings.Join(args, " "))
	return nil, nil
}

// Type reports how each named command would be dispatched. Builtins
// shadow externals with the same name.
func Type(s *Shell, args []string) (*ExitRequest, error) {
	for _, name := range args {
		if _, ok := AllBuiltins[name]; ok {
			fmt.Fprintf(s.Stdout, "%s is a shell builtin\n", name)
			continue
		}
		if path, ok := s.Resolver.Resolve(s.Path, name); ok {
			fmt.Fprintf(s.Stdout, "%s is %s\n", name, path)
		} else {
			fmt.Fprintf(s.Stdout, "%s: not found\n", name)
		}
	}
	return nil, nil
}

// Pwd prints the working directory. A failing OS query means the
// execution environment is broken, so it is fatal.
func Pwd(s *Shell, args []string) (*ExitRequest, error) {
	wd, err := s.Sys.Getwd()
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(s.Stdout, wd)
	return nil, nil
}

// Cd changes the working directory. "~" and a missing argument both
// mean the user's home. A nonexistent target is reported and ignored;
// any other failure is fatal.
func Cd(s *Shell, args []string) (*ExitRequest, error) {
	var target string
	switch len(args) {
	case 0:
		target = "~"
	case 1:
		target = args[0]
	default:
		s.Errorf("cd: too many arguments\n")
		return nil, nil
	}

	if target == "~" {
		home, err := s.Sys.UserHomeDir()
		if err != nil {
			return nil, err
		}
		target = home
	}

	resolved, err := s.Sys.Realpath(target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.Errorf("cd: %s: No such file or directory\n", target)
		return nil, nil
	case err != nil:
		return nil, err
	}

	return nil, s.Sys.Chdir(resolved)
}

func init() {
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["echo"] = BuiltinFunc(Echo)
	AllBuiltins["type"] = BuiltinFunc(Type)
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
	AllBuiltins["cd"] = BuiltinFunc(Cd)
}

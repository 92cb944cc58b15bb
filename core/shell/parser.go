package shell

import (
	"errors"
	"strings"
	"unicode"
)

// Parse errors. Both are recoverable: the loop reports them and
// re-prompts without changing any state.
var (
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrDanglingEscape    = errors.New("dangling escape at end of line")
)

// Command is one parsed input line: the program to run plus its
// arguments in the order they were typed.
type Command struct {
	Program string
	Args    []string
}

// lexState tracks the tokenizer state machine.
type lexState int

const (
	stateNormal lexState = iota
	stateSingleQuote
	stateDoubleQuote
	stateEscape
)

// Split breaks a raw input line into tokens.
//
// Single and double quotes open spans that are copied verbatim until
// the matching close quote; neither processes escapes inside. A
// backslash outside quotes makes the next character literal. Unquoted
// whitespace separates tokens and runs of it collapse to a single
// boundary, so whitespace never produces empty tokens. An explicitly
// quoted empty string ('') does produce one.
func Split(line string) ([]string, error) {
	var (
		tokens  []string
		tok     strings.Builder
		started bool
	)

	flush := func() {
		if started {
			tokens = append(tokens, tok.String())
			tok.Reset()
			started = false
		}
	}

	state := stateNormal
	for _, r := range line {
		switch state {
		case stateNormal:
			switch {
			case r == '\'':
				state = stateSingleQuote
				started = true
			case r == '"':
				state = stateDoubleQuote
				started = true
			case r == '\\':
				state = stateEscape
			case unicode.IsSpace(r):
				flush()
			default:
				tok.WriteRune(r)
				started = true
			}

		case stateSingleQuote:
			if r == '\'' {
				state = stateNormal
			} else {
				tok.WriteRune(r)
			}

		case stateDoubleQuote:
			if r == '"' {
				state = stateNormal
			} else {
				tok.WriteRune(r)
			}

		case stateEscape:
			tok.WriteRune(r)
			started = true
			state = stateNormal
		}
	}

	switch state {
	case stateSingleQuote, stateDoubleQuote:
		return nil, ErrUnterminatedQuote
	case stateEscape:
		return nil, ErrDanglingEscape
	}

	flush()
	return tokens, nil
}

// Tokenize parses a line into a Command. Callers filter blank lines
// first; a line that still yields no tokens returns the zero Command.
func Tokenize(line string) (Command, error) {
	tokens, err := Split(line)
	if err != nil || len(tokens) == 0 {
		return Command{}, err
	}
	return Command{Program: tokens[0], Args: tokens[1:]}, nil
}

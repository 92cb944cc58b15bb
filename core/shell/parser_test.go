package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		line     string
		expected []string
	}{
		{`echo hello`, []string{"echo", "hello"}},
		{`echo 'a b' c`, []string{"echo", "a b", "c"}},
		{`echo "a b" c`, []string{"echo", "a b", "c"}},
		{`echo a\ b`, []string{"echo", "a b"}},
		{`echo \'quoted\'`, []string{"echo", "'quoted'"}},
		{`echo \\`, []string{"echo", `\`}},
		// Consecutive whitespace collapses to one boundary.
		{"echo   a \t b", []string{"echo", "a", "b"}},
		// Quotes can open mid-token and adjacent spans join.
		{`ec'ho' 'a'"b"c`, []string{"echo", "abc"}},
		// No escape processing inside either quote kind.
		{`echo 'a\nb'`, []string{"echo", `a\nb`}},
		{`echo "a\nb"`, []string{"echo", `a\nb`}},
		// An explicitly quoted empty string is a real token.
		{`echo ''`, []string{"echo", ""}},
		{`echo "" x`, []string{"echo", "", "x"}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			tokens, err := Split(tc.line)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

func TestSplitErrors(t *testing.T) {
	cases := []struct {
		line     string
		expected error
	}{
		{`echo 'unterminated`, ErrUnterminatedQuote},
		{`echo "unterminated`, ErrUnterminatedQuote},
		{`echo "mismatch'`, ErrUnterminatedQuote},
		{`echo trailing\`, ErrDanglingEscape},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			_, err := Split(tc.line)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

// Rejoining tokens with single spaces reproduces the semantic content
// of the line, with quotes and escapes stripped.
func TestSplitRoundTrip(t *testing.T) {
	cases := []struct {
		line   string
		joined string
	}{
		{`echo 'a b'   c`, "echo a b c"},
		{`echo a\ b "c d"`, "echo a b c d"},
		{`pwd`, "pwd"},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			first, err := Split(tc.line)
			assert.NoError(t, err)
			assert.Equal(t, tc.joined, strings.Join(first, " "))

			// Deterministic: a second pass agrees with the first.
			second, err := Split(tc.line)
			assert.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestTokenize(t *testing.T) {
	cmd, err := Tokenize(`echo 'a b' c`)
	assert.NoError(t, err)
	assert.Equal(t, Command{Program: "echo", Args: []string{"a b", "c"}}, cmd)

	cmd, err = Tokenize(`pwd`)
	assert.NoError(t, err)
	assert.Equal(t, "pwd", cmd.Program)
	assert.Empty(t, cmd.Args)

	_, err = Tokenize(`echo 'unterminated`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
}

// Package shell implements the interactive command interpreter: the
// line tokenizer, the search-path resolver, the builtin registry and
// the read-eval-print loop that ties them together.
package shell

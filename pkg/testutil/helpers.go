// Package testutil provides common utility functions for testing interactive
// flows with scripted input.
package testutil

import (
	"io"
	"strings"
)

// Script builds an input stream from prompt answers, one per line.
func Script(answers ...string) io.Reader {
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

// Confirmed interleaves each answer with a "Y" confirmation line, matching
// the prompt loop's confirm-every-value behavior.
func Confirmed(answers ...string) []string {
	out := make([]string, 0, len(answers)*2)
	for _, a := range answers {
		out = append(out, a, "Y")
	}
	return out
}

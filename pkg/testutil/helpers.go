// Package testutil provides common utility functions for testing.
package testutil

import (
	"strings"
	"testing"
)

// Script joins the answers of an interactive session into newline-terminated
// input, one answer per line.
func Script(answers ...string) string {
	if len(answers) == 0 {
		return ""
	}
	return strings.Join(answers, "\n") + "\n"
}

// RequireContains fails the test for every expected fragment missing from output.
func RequireContains(t testing.TB, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, output)
		}
	}
}

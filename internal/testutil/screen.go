// Package testutil holds helpers shared by the UI tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// Screen splits a rendered view into plain lines: escape sequences are
// stripped and trailing blanks trimmed.
func Screen(view string) []string {
	lines := strings.Split(ansi.Strip(view), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// AssertScreenContains fails unless every want appears somewhere in view.
func AssertScreenContains(t *testing.T, view string, want ...string) {
	t.Helper()
	plain := strings.Join(Screen(view), "\n")
	for _, w := range want {
		if !strings.Contains(plain, w) {
			t.Fatalf("expected %q on screen:\n%s", w, plain)
		}
	}
}

// AssertScreenLacks fails if any unwanted text appears in view.
func AssertScreenLacks(t *testing.T, view string, unwanted ...string) {
	t.Helper()
	plain := strings.Join(Screen(view), "\n")
	for _, u := range unwanted {
		if strings.Contains(plain, u) {
			t.Fatalf("did not expect %q on screen:\n%s", u, plain)
		}
	}
}

// LineWith returns the index of the first screen line containing text, or
// -1.
func LineWith(view, text string) int {
	for i, line := range Screen(view) {
		if strings.Contains(line, text) {
			return i
		}
	}
	return -1
}

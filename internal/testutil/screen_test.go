package testutil

import "testing"

func TestScreenStripsEscapes(t *testing.T) {
	lines := Screen("\x1b[1mheader\x1b[0m   \nrow  ")
	if len(lines) != 2 || lines[0] != "header" || lines[1] != "row" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestLineWith(t *testing.T) {
	view := "a\n\x1b[31mb\x1b[0m\nc"
	if got := LineWith(view, "b"); got != 1 {
		t.Fatalf("expected line 1, got %d", got)
	}
	if got := LineWith(view, "z"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

package state

import (
	"reflect"
	"testing"
)

func newTestChecklist(keys ...string) *Checklist {
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Label: k}
	}
	return NewChecklist("Columns", entries, keys)
}

func TestChecklistMoveCursorHomeEnd(t *testing.T) {
	c := newTestChecklist("a", "b", "c")
	c.Cursor = 2
	if !c.MoveCursorHome() || c.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", c.Cursor)
	}
	if !c.MoveCursorEnd() || c.Cursor != 2 {
		t.Fatalf("expected cursor at 2, got %d", c.Cursor)
	}

	empty := newTestChecklist()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestChecklistPaging(t *testing.T) {
	c := newTestChecklist("a", "b", "c", "d", "e")
	if !c.MoveCursorPageDown(2) || c.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page down, got %d", c.Cursor)
	}
	c.MoveCursorPageDown(2)
	c.MoveCursorPageDown(2)
	if c.Cursor != 4 {
		t.Fatalf("expected cursor clamped to 4, got %d", c.Cursor)
	}
	if !c.MoveCursorPageUp(10) || c.Cursor != 0 {
		t.Fatalf("expected cursor 0 after large page up, got %d", c.Cursor)
	}
}

func TestChecklistEnsureCursorVisible(t *testing.T) {
	c := newTestChecklist("a", "b", "c", "d", "e")
	c.Cursor = 4
	c.EnsureCursorVisible(2)
	if c.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", c.ViewportOffset)
	}
	if got := c.Visible(2); len(got) != 2 || got[1].Key != "e" {
		t.Fatalf("unexpected visible entries %+v", got)
	}
	c.Cursor = 0
	c.EnsureCursorVisible(2)
	if c.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", c.ViewportOffset)
	}
}

func TestChecklistToggleKeepsMinimum(t *testing.T) {
	c := newTestChecklist("a", "b")
	c.MinChecked = 1
	if !c.Toggle() {
		t.Fatalf("expected first toggle to clear a")
	}
	c.MoveCursor(1)
	if c.Toggle() {
		t.Fatalf("expected last checked entry to stay on")
	}
	if got := c.CheckedKeys(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected [b], got %v", got)
	}
	c.MoveCursorHome()
	c.Toggle()
	if got := c.CheckedKeys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected entry order [a b], got %v", got)
	}
}

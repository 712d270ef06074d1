package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/testutil"
)

func TestViewRendersGridAndStatus(t *testing.T) {
	h, _ := newTestHarness(t)
	view := h.View()
	testutil.AssertScreenContains(t, view, "Order ID", "Purchase Order PO-2024-001", "rows 1-5 of 5")
	if got := len(testutil.Screen(view)); got != 30 {
		t.Fatalf("expected 30 lines, got %d", got)
	}
}

func TestViewOverlaysPopup(t *testing.T) {
	h, _ := newTestHarness(t)
	m := h.Model()

	h.Send(press(tea.MouseButtonRight, rowPoint(t, m, 0)))
	view := h.View()
	testutil.AssertScreenContains(t, view, "Edit Row", "Delete Row", "Ctrl+E")
	origin := m.Popup().Origin()
	if line := testutil.LineWith(view, "Edit Row"); line != origin.Y+1 {
		t.Fatalf("expected first item on line %d, got %d", origin.Y+1, line)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	testutil.AssertScreenLacks(t, h.View(), "Edit Row")
}

func TestViewShowsFlyout(t *testing.T) {
	h, _ := newTestHarness(t)
	m := h.Model()

	h.Send(keyRunes("t"))
	items := m.Popup().Items()
	idx := -1
	for i, it := range items {
		if it.ID == "export-table" {
			idx = i
		}
	}
	r := m.Popup().ItemRect(idx)
	h.Send(tea.MouseMsg{X: r.Left + 1, Y: r.Top, Action: tea.MouseActionMotion})
	parent, _, _, ok := m.Popup().Flyout()
	if !ok || parent != "export-table" {
		t.Fatalf("expected export flyout, got %q %v", parent, ok)
	}
	testutil.AssertScreenContains(t, h.View(), "Export All as CSV", "Export All as PDF")
}

func TestViewShowsFormAndError(t *testing.T) {
	h, _ := newTestHarness(t)
	m := h.Model()

	h.Send(press(tea.MouseButtonRight, menu.Point{X: 20, Y: 0}))
	clickItem(t, h, "resize-column")
	testutil.AssertScreenContains(t, h.View(), "Width of Name", "31")

	typeText(h, "zero")
	testutil.AssertScreenContains(t, h.View(), "width must be a positive number of cells")
	if m.Mode() != ModeForm {
		t.Fatalf("invalid width must keep the form open")
	}

	typeText(h, "20")
	if m.Mode() != ModeGrid {
		t.Fatalf("expected grid mode after resize")
	}
	for _, c := range m.Grid().Columns() {
		if c.Key == "name" && c.Width != 20 {
			t.Fatalf("expected name width 20, got %d", c.Width)
		}
	}
}

func TestFooterShowsKeyHints(t *testing.T) {
	m := NewModel(Options{Width: 120, Height: 30, ShowFooter: true, Service: newFakeService()})
	h := NewHarness(m)
	h.processCmd(m.Init())
	testutil.AssertScreenContains(t, h.View(), "m row menu", "t table menu", "q quit")
}

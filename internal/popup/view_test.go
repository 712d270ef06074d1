package popup

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/theme"
)

type recorder struct {
	executed []any
	closed   int
}

func (r *recorder) Execute(action menu.Action, data any) {
	r.executed = append(r.executed, data)
	_ = action()
}

func (r *recorder) Close() { r.closed++ }

func sampleItems(calls *[]string) []menu.Item {
	act := func(id string) menu.Action {
		return func() error { *calls = append(*calls, id); return nil }
	}
	return []menu.Item{
		{ID: "refresh-table", Label: "Refresh Table", Action: act("refresh-table")},
		menu.Divider("divider-1"),
		{ID: "export-table", Label: "Export Table", Action: act("export-table"), Submenu: []menu.Item{
			{ID: "export-all-csv", Label: "Export All as CSV", Action: act("export-all-csv")},
			{ID: "export-all-pdf", Label: "Export All as PDF", Action: act("export-all-pdf")},
		}},
		{ID: "save-view", Label: "Save Current View", Action: act("save-view"), Submenu: []menu.Item{
			{ID: "save-a", Label: "Slot A", Action: act("save-a")},
		}},
		{ID: "delete-row", Label: "Delete Row", Disabled: true, Action: act("delete-row")},
	}
}

func TestPlaceFlipsHorizontally(t *testing.T) {
	m := DefaultMetrics()
	vp := Viewport{Width: 1000, Height: 800}

	got := Place(menu.Point{X: 900, Y: 100}, 3, vp, m)
	assert.Equal(t, 650, got.X)
	assert.Equal(t, 100, got.Y)

	got = Place(menu.Point{X: 750, Y: 100}, 3, vp, m)
	assert.Equal(t, 750, got.X, "exactly touching the edge stays put")
}

func TestPlaceFlipsVertically(t *testing.T) {
	m := DefaultMetrics()
	vp := Viewport{Width: 1000, Height: 800}

	got := Place(menu.Point{X: 10, Y: 700}, 6, vp, m)
	assert.Equal(t, 10, got.X)
	assert.Equal(t, 700-6*40, got.Y)

	got = Place(menu.Point{X: 10, Y: 500}, 6, vp, m)
	assert.Equal(t, 500, got.Y)
}

func TestFlyoutOrigin(t *testing.T) {
	m := DefaultMetrics()
	item := Rect{Left: 100, Top: 140, Width: 250, Height: 40}
	assert.Equal(t, menu.Point{X: 355, Y: 140}, FlyoutOrigin(item, m))
}

func TestShowPinsToViewport(t *testing.T) {
	v := New(CellMetrics())
	var calls []string
	v.Show(menu.Point{X: 10, Y: 2}, sampleItems(&calls), Viewport{Width: 30, Height: 40})

	assert.Equal(t, 0, v.Origin().X)
	assert.True(t, v.Visible())
}

func TestFramedPopupFlipsAboveBottomEdge(t *testing.T) {
	m := CellMetrics()
	assert.Equal(t, 6+2, m.EstimatedHeight(6))
	assert.Equal(t, 6*40, DefaultMetrics().EstimatedHeight(6))

	v := New(m)
	var calls []string
	items := append(sampleItems(&calls), menu.Item{ID: "extra", Label: "Extra", Action: func() error { return nil }})
	v.Show(menu.Point{X: 10, Y: 24}, items, Viewport{Width: 120, Height: 30})
	assert.Equal(t, menu.Point{X: 10, Y: 16}, v.Origin())
	assert.LessOrEqual(t, v.Bounds().Bottom(), 30)

	v.Show(menu.Point{X: 10, Y: 12}, items, Viewport{Width: 120, Height: 10})
	assert.Equal(t, 2, v.Origin().Y, "anchor past the edge is pinned inside it")
	assert.Equal(t, 10, v.Bounds().Bottom())
}

func TestHoverOpensSingleFlyout(t *testing.T) {
	v := New(DefaultMetrics())
	var calls []string
	v.Show(menu.Point{X: 10, Y: 10}, sampleItems(&calls), Viewport{Width: 1000, Height: 1000})

	v.Hover(2)
	parent, origin, items, ok := v.Flyout()
	require.True(t, ok)
	assert.Equal(t, "export-table", parent)
	assert.Len(t, items, 2)
	assert.Equal(t, menu.Point{X: 10 + 250 + 5, Y: 10 + 2*40}, origin)

	v.Hover(3)
	parent, _, _, ok = v.Flyout()
	require.True(t, ok)
	assert.Equal(t, "save-view", parent)

	v.Hover(0)
	_, _, _, ok = v.Flyout()
	assert.False(t, ok)
}

func TestActivateRunsThenClosesWholeTree(t *testing.T) {
	v := New(DefaultMetrics())
	var calls []string
	rec := &recorder{}
	v.Show(menu.Point{X: 10, Y: 10}, sampleItems(&calls), Viewport{Width: 1000, Height: 1000})
	v.Hover(2)

	_, origin, _, _ := v.Flyout()
	handled := v.PointerDown(menu.Point{X: origin.X + 1, Y: origin.Y + 41}, rec)

	require.True(t, handled)
	assert.Equal(t, []string{"export-all-pdf"}, calls)
	assert.Equal(t, []any{"export-all-pdf"}, rec.executed)
	assert.Equal(t, 1, rec.closed)
	assert.False(t, v.Visible())
	_, _, _, ok := v.Flyout()
	assert.False(t, ok)
}

func TestActivateIgnoresDisabledDividerAndSubmenu(t *testing.T) {
	v := New(DefaultMetrics())
	var calls []string
	rec := &recorder{}
	items := sampleItems(&calls)
	v.Show(menu.Point{X: 10, Y: 10}, items, Viewport{Width: 1000, Height: 1000})

	assert.False(t, v.Activate(items[4], rec))
	assert.False(t, v.Activate(items[1], rec))
	assert.False(t, v.Activate(items[2], rec))

	assert.Empty(t, calls)
	assert.Empty(t, rec.executed)
	assert.True(t, v.Visible())
}

func TestPointerDownOutsideIsNotHandled(t *testing.T) {
	v := New(DefaultMetrics())
	var calls []string
	v.Show(menu.Point{X: 10, Y: 10}, sampleItems(&calls), Viewport{Width: 1000, Height: 1000})

	assert.False(t, v.PointerDown(menu.Point{X: 900, Y: 900}, &recorder{}))
	assert.True(t, v.Contains(menu.Point{X: 11, Y: 11}))
	assert.False(t, v.Contains(menu.Point{X: 9, Y: 11}))
}

func TestKeyboardNavigationSkipsDividers(t *testing.T) {
	v := New(CellMetrics())
	var calls []string
	rec := &recorder{}
	keys := DefaultKeyMap()
	v.Show(menu.Point{X: 0, Y: 0}, sampleItems(&calls), Viewport{Width: 80, Height: 24})

	down := tea.KeyMsg{Type: tea.KeyDown}
	require.True(t, v.HandleKey(down, keys, rec))
	assert.Equal(t, 0, v.Active())
	v.HandleKey(down, keys, rec)
	assert.Equal(t, 2, v.Active())

	v.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, keys, rec)
	assert.Equal(t, LevelFlyout, v.Focus())
	assert.Equal(t, 0, v.FlyoutActive())

	v.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, keys, rec)
	assert.Equal(t, LevelRoot, v.Focus())
	_, _, _, ok := v.Flyout()
	assert.False(t, ok)

	v.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, keys, rec)
	v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, keys, rec)
	assert.Equal(t, []string{"refresh-table"}, calls)
	assert.False(t, v.Visible())
}

func TestRenderShowsLabelsAndDividers(t *testing.T) {
	v := New(CellMetrics())
	var calls []string
	v.Show(menu.Point{X: 0, Y: 0}, sampleItems(&calls), Viewport{Width: 80, Height: 24})

	root, sub := v.Render(theme.Default())
	plain := ansi.Strip(root)
	assert.Contains(t, plain, "Refresh Table")
	assert.Contains(t, plain, "─")
	assert.Contains(t, plain, submenuMarker)
	assert.Empty(t, sub)
	assert.Len(t, strings.Split(root, "\n"), 5+2)
}

func TestOverlayPlacesBox(t *testing.T) {
	bg := strings.Join([]string{"aaaaaaaa", "bbbbbbbb", "cccccccc"}, "\n")
	out := Overlay(bg, "XX\nYY", menu.Point{X: 3, Y: 1})
	assert.Equal(t, "aaaaaaaa\nbbbXXbbb\ncccYYccc", out)
}

package popup

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/menu"
)

// KeyMap binds popup navigation keys. Escape is not part of it: dismissal
// is routed through the menu's escape listener.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns the standard popup bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓", "down")),
		Expand:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "open submenu")),
		Collapse: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "close submenu")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "run")),
	}
}

// HandleKey applies a navigation key and reports whether it was consumed.
func (v *View) HandleKey(msg tea.KeyMsg, keys KeyMap, exec Executor) bool {
	if !v.visible {
		return false
	}
	switch {
	case key.Matches(msg, keys.Up):
		v.Move(-1)
	case key.Matches(msg, keys.Down):
		v.Move(1)
	case key.Matches(msg, keys.Expand):
		v.Expand()
	case key.Matches(msg, keys.Collapse):
		v.Collapse()
	case key.Matches(msg, keys.Activate):
		v.ActivateFocused(exec)
	default:
		return false
	}
	return true
}

// Move steps the focused level's cursor by delta, skipping dividers and
// wrapping at either end.
func (v *View) Move(delta int) {
	if v.focus == LevelFlyout && v.flyout != nil {
		v.flyout.active = step(v.flyout.items, v.flyout.active, delta)
		return
	}
	next := step(v.items, v.active, delta)
	if next >= 0 {
		v.Hover(next)
	}
}

// Expand moves focus into the flyout of the focused entry.
func (v *View) Expand() {
	if v.active < 0 {
		return
	}
	v.Hover(v.active)
	if v.flyout == nil {
		return
	}
	v.focus = LevelFlyout
	if v.flyout.active < 0 {
		v.flyout.active = step(v.flyout.items, -1, 1)
	}
}

// Collapse closes the flyout and returns focus to the root entry.
func (v *View) Collapse() {
	if v.flyout == nil {
		return
	}
	v.closeFlyout()
	v.focus = LevelRoot
}

// ActivateFocused activates the focused entry, expanding submenus instead.
func (v *View) ActivateFocused(exec Executor) bool {
	if v.focus == LevelFlyout && v.flyout != nil {
		if v.flyout.active < 0 {
			return false
		}
		return v.Activate(v.flyout.items[v.flyout.active], exec)
	}
	if v.active < 0 {
		return false
	}
	item := v.items[v.active]
	if item.HasSubmenu() {
		v.Expand()
		return false
	}
	return v.Activate(item, exec)
}

func step(items []menu.Item, from, delta int) int {
	n := len(items)
	if n == 0 {
		return -1
	}
	idx := from
	if idx < 0 && delta < 0 {
		idx = 0
	}
	for i := 0; i < n; i++ {
		idx = ((idx+delta)%n + n) % n
		if !items[idx].Divider {
			return idx
		}
	}
	return -1
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/menu"
)

// KeyMap binds the grid keys. Menu item shortcuts are matched separately
// against the hints the action trees carry.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Home           key.Binding
	End            key.Binding
	Select         key.Binding
	SelectAll      key.Binding
	ClearSelection key.Binding
	RowMenu        key.Binding
	CellMenu       key.Binding
	TableMenu      key.Binding
	NextPage       key.Binding
	PrevPage       key.Binding
	Undo           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the standard grid bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:         key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:       key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:           key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:            key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Select:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll:      key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		ClearSelection: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		RowMenu:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "row menu")),
		CellMenu:       key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "cell menu")),
		TableMenu:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "table menu")),
		NextPage:       key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		PrevPage:       key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
		Undo:           key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// footerBindings lists the keys shown in the footer.
func (k KeyMap) footerBindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.RowMenu, k.TableMenu, k.Undo, k.Quit}
}

// shortcutKey converts a menu shortcut hint such as "Ctrl+E" or "Del" into
// the key string Bubble Tea reports for it.
func shortcutKey(hint string) string {
	s := strings.ToLower(strings.TrimSpace(hint))
	switch s {
	case "del":
		return "delete"
	case "esc":
		return "esc"
	}
	return s
}

// matchShortcut finds the item in items, submenus included, whose shortcut
// hint matches msg.
func matchShortcut(items []menu.Item, msg tea.KeyMsg) (menu.Item, bool) {
	pressed := msg.String()
	for _, item := range items {
		if item.Shortcut != "" && shortcutKey(item.Shortcut) == pressed {
			return item, true
		}
		if found, ok := matchShortcut(item.Submenu, msg); ok {
			return found, true
		}
	}
	return menu.Item{}, false
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/orders"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.popup.Visible() {
		return m.handlePopupKey(keyMsg)
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.runShortcut(keyMsg) {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.grid.MoveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.grid.MoveCursor(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.grid.MoveCursor(-m.grid.PageSize())
	case key.Matches(keyMsg, m.keys.PageDown):
		m.grid.MoveCursor(m.grid.PageSize())
	case key.Matches(keyMsg, m.keys.Home):
		m.grid.SetCursor(0)
	case key.Matches(keyMsg, m.keys.End):
		m.grid.SetCursor(m.grid.Len() - 1)
	case key.Matches(keyMsg, m.keys.Select):
		if row, ok := m.grid.CursorRow(); ok {
			m.grid.ToggleSelect(row.Key())
		}
	case key.Matches(keyMsg, m.keys.SelectAll):
		m.grid.SelectAll()
	case key.Matches(keyMsg, m.keys.ClearSelection):
		m.grid.ClearSelection()
		m.errMsg = ""
	case key.Matches(keyMsg, m.keys.RowMenu):
		m.openCursorMenu(false)
	case key.Matches(keyMsg, m.keys.CellMenu):
		m.openCursorMenu(true)
	case key.Matches(keyMsg, m.keys.TableMenu):
		m.openTableMenu()
	case key.Matches(keyMsg, m.keys.NextPage):
		m.grid.NextPage()
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.grid.PrevPage()
	case key.Matches(keyMsg, m.keys.Undo):
		m.undo()
	}
	return nil
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		m.registry.Fire(menu.ListenEscape)
		events.Popup.Dismiss("escape")
		return nil
	}
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	m.popup.HandleKey(msg, m.popupKeys, m.executor())
	return nil
}

// openCursorMenu opens the row menu, or the cell menu for the first visible
// column, at the keyboard cursor.
func (m *Model) openCursorMenu(cell bool) {
	idx := m.grid.Cursor()
	if idx < 0 {
		m.grid.MoveCursor(0)
		idx = m.grid.Cursor()
	}
	at, ok := m.grid.RowPosition(idx)
	if !ok {
		return
	}
	ev := &grid.PointerEvent{Local: at, Screen: toScreen(at), Cell: cell}
	m.grid.ContextMenu(ev)
	m.showMenu(ev.Screen)
}

func (m *Model) openTableMenu() {
	at := toScreen(menu.Point{X: 0, Y: 0})
	m.grid.TableContextMenu(&grid.PointerEvent{Screen: at}, at)
	m.showMenu(at)
}

// runShortcut executes the row or table menu item whose shortcut matches
// msg. Disabled items never run.
func (m *Model) runShortcut(msg tea.KeyMsg) bool {
	cb := m.callbacks()
	var candidates []menu.Item
	if row, ok := m.grid.CursorRow(); ok {
		candidates = append(candidates, menu.Build(menu.ForRow(row, m.grid.SelectedRows(), menu.Point{}), cb)...)
	}
	candidates = append(candidates, menu.Build(menu.ForTable[orders.Order](m.grid.SelectedRows(), menu.Point{}), cb)...)
	item, ok := matchShortcut(candidates, msg)
	if !ok {
		return false
	}
	if !item.Activatable() {
		events.Popup.Blocked(item.ID, "shortcut on inactive item")
		return true
	}
	m.executor().Execute(item.Action, item.ID)
	return true
}

func (m *Model) undo() {
	last, ok := m.menu.LastAction()
	if !ok {
		m.setInfo("Nothing to undo")
		return
	}
	if !m.menu.Undo() {
		m.setInfo("Undo window for " + describe(last.Data) + " has expired")
		return
	}
	m.setInfo("Undo requested for " + describe(last.Data))
}

func describe(data any) string {
	if s, ok := data.(string); ok {
		return s
	}
	return "last action"
}

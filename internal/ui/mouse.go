package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/popup"
)

const wheelStep = 3

// The grid is drawn from the top-left corner of the terminal.
var gridOrigin = menu.Point{X: 0, Y: 0}

func toLocal(p menu.Point) menu.Point {
	return menu.Point{X: p.X - gridOrigin.X, Y: p.Y - gridOrigin.Y}
}

func toScreen(p menu.Point) menu.Point {
	return menu.Point{X: p.X + gridOrigin.X, Y: p.Y + gridOrigin.Y}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	p := menu.Point{X: mouse.X, Y: mouse.Y}

	switch mouse.Action {
	case tea.MouseActionMotion:
		if m.popup.Visible() {
			m.popup.PointerMove(p)
			return nil
		}
		m.grid.PointerMove(toLocal(p))
		return nil
	case tea.MouseActionPress:
	default:
		return nil
	}

	switch mouse.Button {
	case tea.MouseButtonRight:
		m.secondaryPress(p, mouse.Ctrl)
	case tea.MouseButtonLeft:
		m.primaryPress(p)
	case tea.MouseButtonWheelUp:
		if !m.popup.Visible() {
			m.grid.ScrollBy(-wheelStep)
		}
	case tea.MouseButtonWheelDown:
		if !m.popup.Visible() {
			m.grid.ScrollBy(wheelStep)
		}
	}
	return nil
}

// secondaryPress opens the context menu under p. A press inside an open
// popup is ignored; one outside dismisses it first and then opens the menu
// for the new target.
func (m *Model) secondaryPress(p menu.Point, cell bool) {
	if m.popup.Visible() {
		if m.popup.Contains(p) {
			return
		}
		m.dismissOutside()
	}
	ev := &grid.PointerEvent{Local: toLocal(p), Screen: p, Cell: cell}
	m.grid.ContextMenu(ev)
	m.showMenu(p)
}

// primaryPress activates popup items, or hands the press to the grid when
// no popup is showing. A press outside the popup only dismisses it.
func (m *Model) primaryPress(p menu.Point) {
	if m.popup.Visible() {
		if !m.popup.PointerDown(p, m.executor()) {
			m.dismissOutside()
		}
		return
	}
	m.grid.PrimaryPress(toLocal(p))
}

func (m *Model) dismissOutside() {
	m.registry.Fire(menu.ListenOutsidePointer)
	events.Popup.Dismiss("outside pointer")
	m.popup.Hide()
}

// showMenu mirrors the open menu state into the popup.
func (m *Model) showMenu(anchor menu.Point) {
	if !m.menu.IsOpen() {
		return
	}
	m.popup.Show(anchor, m.menu.Items(), popup.Viewport{Width: m.width, Height: m.height})
}

// menuExecutor runs popup selections through the menu state and surfaces
// failures on the message line.
type menuExecutor struct {
	m *Model
}

func (m *Model) executor() popup.Executor {
	return menuExecutor{m: m}
}

func (e menuExecutor) Execute(action menu.Action, data any) {
	e.m.menu.Execute(action, data)
	if last, ok := e.m.menu.LastAction(); ok && last.Err != nil {
		e.m.setError(last.Err)
	}
}

func (e menuExecutor) Close() {
	e.m.menu.Close()
}

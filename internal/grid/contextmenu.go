package grid

import "github.com/atomicstack/gridmenu/internal/menu"

// PointerEvent is a pointer press delivered to the grid. Local is relative
// to the grid's top-left corner; Screen is where a menu should anchor.
type PointerEvent struct {
	Local  menu.Point
	Screen menu.Point
	// Cell asks for the cell menu instead of the row menu.
	Cell bool

	defaultPrevented   bool
	propagationStopped bool
}

func (e *PointerEvent) PreventDefault()  { e.defaultPrevented = true }
func (e *PointerEvent) StopPropagation() { e.propagationStopped = true }

// DefaultPrevented reports whether a handler suppressed the default action.
func (e *PointerEvent) DefaultPrevented() bool { return e.defaultPrevented }

// PropagationStopped reports whether a handler consumed the event.
func (e *PointerEvent) PropagationStopped() bool { return e.propagationStopped }

// ContextMenu routes a secondary press to the row, column, cell or table
// handler and returns the opened action tree. Presses outside the grid open
// nothing.
func (g *Grid[R]) ContextMenu(ev *PointerEvent) []menu.Item {
	hit := g.HitTest(ev.Local)
	switch hit.Area {
	case AreaHeader:
		if hit.Column == "" {
			return g.TableContextMenu(ev, ev.Screen)
		}
		return g.ColumnContextMenu(ev, hit.Column, ev.Screen)
	case AreaRow, AreaCheckbox:
		g.hoverKey = hit.Row.Key()
		if ev.Cell && hit.Column != "" {
			return g.CellContextMenu(ev, hit.Row, hit.Column, ev.Screen)
		}
		return g.RowContextMenu(ev, hit.Row, ev.Screen)
	case AreaBackground:
		return g.TableContextMenu(ev, ev.Screen)
	default:
		return nil
	}
}

// RowContextMenu opens the row menu for row.
func (g *Grid[R]) RowContextMenu(ev menu.Event, row R, at menu.Point) []menu.Item {
	return g.open(ev, menu.ForRow(row, g.SelectedRows(), at))
}

// ColumnContextMenu opens the column menu for the header of column.
func (g *Grid[R]) ColumnContextMenu(ev menu.Event, column string, at menu.Point) []menu.Item {
	return g.open(ev, menu.ForColumn(column, g.SelectedRows(), at))
}

// TableContextMenu opens the background menu.
func (g *Grid[R]) TableContextMenu(ev menu.Event, at menu.Point) []menu.Item {
	return g.open(ev, menu.ForTable(g.SelectedRows(), at))
}

// CellContextMenu opens the cell menu for column of row.
func (g *Grid[R]) CellContextMenu(ev menu.Event, row R, column string, at menu.Point) []menu.Item {
	return g.open(ev, menu.ForCell(row, column, g.SelectedRows(), at))
}

// The tree is rebuilt on every event so predicates see live data.
func (g *Grid[R]) open(ev menu.Event, d menu.Descriptor[R]) []menu.Item {
	items := menu.Build(d, g.callbacks)
	if g.menu != nil {
		g.menu.Open(ev, d, items)
	} else if ev != nil {
		ev.PreventDefault()
		ev.StopPropagation()
	}
	return items
}

// PrimaryPress handles a primary press: a header click toggles the sort of a
// sortable column, a checkbox click toggles selection, and a row click moves
// the cursor. It reports whether the grid consumed the press.
func (g *Grid[R]) PrimaryPress(p menu.Point) bool {
	hit := g.HitTest(p)
	switch hit.Area {
	case AreaHeader:
		if hit.Column == "" {
			if g.cfg.Selectable && p.X < checkboxWidth {
				g.SelectAll()
				return true
			}
			return false
		}
		if col, err := g.column(hit.Column); err == nil && col.Sortable {
			_ = g.ToggleSort(hit.Column)
			return true
		}
		return false
	case AreaCheckbox:
		g.ToggleSelect(hit.Row.Key())
		g.SetCursor(hit.Index)
		return true
	case AreaRow:
		g.SetCursor(hit.Index)
		return true
	default:
		return false
	}
}

// PointerMove updates hover from a grid-local pointer position.
func (g *Grid[R]) PointerMove(p menu.Point) {
	hit := g.HitTest(p)
	if hit.Area == AreaRow || hit.Area == AreaCheckbox {
		g.hoverKey = hit.Row.Key()
		return
	}
	g.hoverKey = ""
}

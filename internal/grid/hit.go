package grid

import "github.com/atomicstack/gridmenu/internal/menu"

const (
	headerHeight  = 1
	checkboxWidth = 3
	columnGap     = 2
)

// Area is the part of the grid a point falls in.
type Area int

const (
	AreaNone Area = iota
	AreaHeader
	AreaCheckbox
	AreaRow
	AreaBackground
)

func (a Area) String() string {
	switch a {
	case AreaHeader:
		return "header"
	case AreaCheckbox:
		return "checkbox"
	case AreaRow:
		return "row"
	case AreaBackground:
		return "background"
	default:
		return "none"
	}
}

// Hit is the result of hit testing a point in grid-local coordinates.
type Hit[R menu.Row] struct {
	Area   Area
	Column string
	Index  int
	Row    R
}

// Span is the horizontal extent [Left, Right) of a drawn column.
type Span struct {
	Key   string
	Left  int
	Right int
}

// Layout returns the x extents of the visible columns.
func (g *Grid[R]) Layout() []Span {
	x := 0
	if g.cfg.Selectable {
		x = checkboxWidth + 1
	}
	cols := g.VisibleColumns()
	spans := make([]Span, 0, len(cols))
	for _, col := range cols {
		spans = append(spans, Span{Key: col.Key, Left: x, Right: x + col.Width})
		x += col.Width + columnGap
	}
	return spans
}

// Height is the number of lines the grid occupies: header plus viewport.
func (g *Grid[R]) Height() int {
	return headerHeight + g.cfg.ViewportHeight
}

func (g *Grid[R]) columnAt(x int) string {
	for _, span := range g.Layout() {
		if x >= span.Left && x < span.Right {
			return span.Key
		}
	}
	return ""
}

// HitTest resolves a grid-local point. Points below the last row but inside
// the viewport land on the background.
func (g *Grid[R]) HitTest(p menu.Point) Hit[R] {
	miss := Hit[R]{Area: AreaNone, Index: -1}
	if p.X < 0 || p.Y < 0 || p.Y >= g.Height() {
		return miss
	}
	if g.cfg.Width > 0 && p.X >= g.cfg.Width {
		return miss
	}
	if p.Y < headerHeight {
		return Hit[R]{Area: AreaHeader, Column: g.columnAt(p.X), Index: -1}
	}
	offset := g.scrollTop + (p.Y - headerHeight)
	idx := offset / g.cfg.RowHeight
	if idx >= len(g.view) {
		return Hit[R]{Area: AreaBackground, Index: -1}
	}
	hit := Hit[R]{Area: AreaRow, Column: g.columnAt(p.X), Index: idx, Row: g.view[idx]}
	if g.cfg.Selectable && p.X < checkboxWidth {
		hit.Area = AreaCheckbox
	}
	return hit
}

// RowPosition returns the grid-local point at the left edge of display row
// i, for opening menus from the keyboard.
func (g *Grid[R]) RowPosition(i int) (menu.Point, bool) {
	top := i*g.cfg.RowHeight - g.scrollTop
	if i < 0 || i >= len(g.view) || top < 0 || top >= g.cfg.ViewportHeight {
		return menu.Point{}, false
	}
	x := 0
	if g.cfg.Selectable {
		x = checkboxWidth + 1
	}
	return menu.Point{X: x, Y: headerHeight + top}, true
}

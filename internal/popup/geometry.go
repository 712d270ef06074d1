package popup

import "github.com/atomicstack/gridmenu/internal/menu"

// Metrics are the fixed sizes placement works with. Height estimates assume
// every entry is ItemHeight tall, dividers included, so placement is a
// best-effort heuristic rather than an exact layout.
type Metrics struct {
	MenuWidth   int
	ItemHeight  int
	FlyoutGap   int
	FlyoutWidth int
	// Inset is the frame thickness between a box edge and its first item.
	Inset int
}

// DefaultMetrics returns the pixel metrics of a pointer-driven popup.
func DefaultMetrics() Metrics {
	return Metrics{MenuWidth: 250, ItemHeight: 40, FlyoutGap: 5, FlyoutWidth: 200}
}

// CellMetrics returns metrics for a bordered terminal popup measured in cells.
func CellMetrics() Metrics {
	return Metrics{MenuWidth: 34, ItemHeight: 1, FlyoutGap: 1, FlyoutWidth: 26, Inset: 1}
}

// Viewport is the area a popup must fit into.
type Viewport struct {
	Width  int
	Height int
}

// Rect is an axis-aligned box. Right and Bottom are exclusive.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

func (r Rect) Right() int  { return r.Left + r.Width }
func (r Rect) Bottom() int { return r.Top + r.Height }

// Contains reports whether p lies inside the box.
func (r Rect) Contains(p menu.Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// EstimatedHeight is the uniform height guess used for vertical flipping.
// Framed popups add their top and bottom inset.
func (m Metrics) EstimatedHeight(itemCount int) int {
	h := itemCount * m.ItemHeight
	if m.Inset > 0 {
		h += 2 * m.Inset
	}
	return h
}

// Place returns the top-left corner of a root menu anchored at the pointer.
// A menu that would overflow the right edge flips to the left of the pointer;
// one that would overflow the bottom flips above it.
func Place(anchor menu.Point, itemCount int, vp Viewport, m Metrics) menu.Point {
	origin := anchor
	if anchor.X+m.MenuWidth > vp.Width {
		origin.X = anchor.X - m.MenuWidth
	}
	height := m.EstimatedHeight(itemCount)
	if anchor.Y+height > vp.Height {
		origin.Y = anchor.Y - height
	}
	return origin
}

// FlyoutOrigin anchors a submenu beside the item that opened it.
func FlyoutOrigin(item Rect, m Metrics) menu.Point {
	return menu.Point{X: item.Right() + m.FlyoutGap, Y: item.Top}
}

func boxRect(origin menu.Point, width, itemCount int, m Metrics) Rect {
	return Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Width:  width,
		Height: itemCount*m.ItemHeight + 2*m.Inset,
	}
}

func itemRect(origin menu.Point, width, index int, m Metrics) Rect {
	return Rect{
		Left:   origin.X,
		Top:    origin.Y + m.Inset + index*m.ItemHeight,
		Width:  width,
		Height: m.ItemHeight,
	}
}

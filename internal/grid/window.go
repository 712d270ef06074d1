package grid

// Window is the half-open range [Start, End) of view rows that get rendered.
type Window struct {
	Start int
	End   int
}

// Len returns the number of rows in the window.
func (w Window) Len() int {
	if w.End <= w.Start {
		return 0
	}
	return w.End - w.Start
}

// Contains reports whether row index i is rendered.
func (w Window) Contains(i int) bool {
	return i >= w.Start && i < w.End
}

// ComputeWindow returns the rows to render for a viewport of height
// viewport scrolled to scrollTop, padded by overscan rows on both sides and
// clamped to the collection. All lengths share one unit.
func ComputeWindow(scrollTop, viewport, rowHeight, overscan, total int) Window {
	if total <= 0 || rowHeight <= 0 {
		return Window{}
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	if overscan < 0 {
		overscan = 0
	}
	first := scrollTop / rowHeight
	// last is the row holding the viewport's bottom edge, so a partly
	// scrolled row at either end still counts as visible.
	last := (scrollTop + max(viewport, 1) - 1) / rowHeight

	start := first - overscan
	if start < 0 {
		start = 0
	}
	end := last + overscan + 1
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}
	return Window{Start: start, End: end}
}

// Extent is the total scrollable height: every row counts whether rendered
// or not.
func Extent(total, rowHeight int) int {
	if total <= 0 || rowHeight <= 0 {
		return 0
	}
	return total * rowHeight
}

// MaxScroll is the largest valid scroll offset.
func MaxScroll(total, rowHeight, viewport int) int {
	limit := Extent(total, rowHeight) - viewport
	if limit < 0 {
		return 0
	}
	return limit
}

// ScrollToRow returns the smallest change to scrollTop that brings row index
// fully into the viewport.
func ScrollToRow(scrollTop, index, rowHeight, viewport, total int) int {
	if index < 0 || index >= total || rowHeight <= 0 {
		return scrollTop
	}
	top := index * rowHeight
	bottom := top + rowHeight
	switch {
	case top < scrollTop:
		scrollTop = top
	case bottom > scrollTop+viewport:
		scrollTop = bottom - viewport
	}
	return clamp(scrollTop, 0, MaxScroll(total, rowHeight, viewport))
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

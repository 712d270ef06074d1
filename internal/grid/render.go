package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/gridmenu/internal/format/table"
	"github.com/atomicstack/gridmenu/internal/menu"
)

// RowState tells a renderer how a row should be drawn.
type RowState struct {
	Index    int
	Hovered  bool
	Cursor   bool
	Selected bool
	Locked   bool
}

// RenderFunc draws one row at the given columns. The result may span up to
// RowHeight lines.
type RenderFunc[R menu.Row] func(row R, columns []Column, state RowState) string

// View renders the header and the viewport.
func (g *Grid[R]) View() string {
	lines := make([]string, 0, g.Height())
	lines = append(lines, g.clip(g.header()))
	lines = append(lines, g.body()...)
	return strings.Join(lines, "\n")
}

func (g *Grid[R]) header() string {
	cols := g.VisibleColumns()
	cells := make([]string, 0, len(cols))
	widths := make([]int, 0, len(cols))
	aligns := make([]table.Alignment, 0, len(cols))
	for _, col := range cols {
		title := col.Title
		if title == "" {
			title = col.Key
		}
		if g.sort.Column == col.Key {
			if g.sort.Direction == menu.Descending {
				title += " ↓"
			} else {
				title += " ↑"
			}
		}
		if g.groupBy == col.Key {
			title = "▤ " + title
		}
		cells = append(cells, title)
		widths = append(widths, col.Width)
		aligns = append(aligns, col.Align)
	}
	line := table.Fixed(cells, widths, aligns)
	if g.cfg.Selectable {
		line = g.checkbox(g.allSelected()) + " " + line
	}
	return g.styles.Header.Render(line)
}

func (g *Grid[R]) allSelected() bool {
	if len(g.view) == 0 {
		return false
	}
	for _, row := range g.view {
		if !g.selection.Has(row.Key()) {
			return false
		}
	}
	return true
}

// body renders every row in the window and returns the lines that fall
// inside the viewport. Overscan rows are rendered but not displayed.
func (g *Grid[R]) body() []string {
	height := g.cfg.ViewportHeight
	out := make([]string, 0, height)
	if len(g.view) == 0 {
		if height > 0 {
			out = append(out, g.clip(g.styles.Empty.Render(g.cfg.EmptyMessage)))
		}
		return padLines(out, height)
	}
	w := g.Window()
	cols := g.VisibleColumns()
	cursor := g.Cursor()
	block := make([]string, 0, w.Len()*g.cfg.RowHeight)
	for i := w.Start; i < w.End; i++ {
		row := g.view[i]
		key := row.Key()
		state := RowState{
			Index:    i,
			Hovered:  key == g.hoverKey,
			Cursor:   i == cursor,
			Selected: g.selection.Has(key),
			Locked:   g.callbacks.IsRowLocked != nil && g.callbacks.IsRowLocked(row),
		}
		rendered := strings.Split(g.render(row, cols, state), "\n")
		block = append(block, padLines(rendered[:min(len(rendered), g.cfg.RowHeight)], g.cfg.RowHeight)...)
	}
	skip := g.scrollTop - w.Start*g.cfg.RowHeight
	for i := skip; i < len(block) && len(out) < height; i++ {
		if i < 0 {
			continue
		}
		out = append(out, g.clip(block[i]))
	}
	return padLines(out, height)
}

func (g *Grid[R]) defaultRender(row R, cols []Column, state RowState) string {
	cells := make([]string, 0, len(cols))
	widths := make([]int, 0, len(cols))
	aligns := make([]table.Alignment, 0, len(cols))
	for _, col := range cols {
		cells = append(cells, col.Text(row.Value(col.Key)))
		widths = append(widths, col.Width)
		aligns = append(aligns, col.Align)
	}
	line := table.Fixed(cells, widths, aligns)
	if g.cfg.Selectable {
		line = g.checkbox(state.Selected) + " " + line
	}
	if w := g.cfg.Width; w > 0 && lipgloss.Width(line) < w {
		line += strings.Repeat(" ", w-lipgloss.Width(line))
	}
	style := g.styles.Row
	switch {
	case state.Selected:
		style = g.styles.RowSelected
	case state.Cursor || state.Hovered:
		style = g.styles.RowHover
	case state.Locked:
		style = g.styles.RowLocked
	case state.Index%2 == 1:
		style = g.styles.RowAlt
	}
	return style.Render(line)
}

func (g *Grid[R]) checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func (g *Grid[R]) clip(line string) string {
	if g.cfg.Width <= 0 {
		return line
	}
	return table.Truncate(line, g.cfg.Width)
}

func padLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// FormatValue renders a cell value as text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "yes"
		}
		return "no"
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.DateOnly)
	case float32, float64:
		return fmt.Sprintf("%.2f", x)
	default:
		return cellText(v)
	}
}

// Status summarises position, paging, selection, sort and filter for a
// status line.
func (g *Grid[R]) Status() string {
	parts := make([]string, 0, 5)
	w := g.Window()
	first := g.scrollTop/g.cfg.RowHeight + 1
	last := first + g.PageSize() - 1
	if last > len(g.view) {
		last = len(g.view)
	}
	if len(g.view) == 0 {
		first = 0
	}
	parts = append(parts, fmt.Sprintf("rows %d-%d of %d (rendering %d)", first, last, len(g.view), w.Len()))
	if g.paginated {
		page, pages := g.Page()
		parts = append(parts, fmt.Sprintf("page %d/%d", page+1, pages))
	}
	if n := g.selection.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if g.sort.Column != "" {
		parts = append(parts, fmt.Sprintf("sorted by %s %s", g.sort.Column, g.sort.Direction))
	}
	if g.groupBy != "" {
		parts = append(parts, "grouped by "+g.groupBy)
	}
	if g.filter.Active() {
		parts = append(parts, fmt.Sprintf("%s ~ %q", g.filter.Column, g.filter.Query))
	}
	return strings.Join(parts, " · ")
}

package table

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const (
	separator = "  "
	ellipsis  = "…"
)

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = Fixed(row, widths, alignments)
	}
	return out
}

// Fixed lays out one row with each cell occupying exactly widths[c] columns.
// Overflowing cells are cut with an ellipsis; ANSI sequences are preserved.
func Fixed(cells []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c, cell := range cells {
		if c > 0 {
			b.WriteString(separator)
		}
		width := 0
		if c < len(widths) {
			width = widths[c]
		}
		cell = Truncate(cell, width)
		pad := width - cellWidth(cell)
		if c < len(alignments) && alignments[c] == AlignRight {
			writeSpaces(&b, pad)
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			writeSpaces(&b, pad)
		}
	}
	return b.String()
}

// Truncate shortens text to width display columns.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if cellWidth(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}

func cellWidth(text string) int {
	return ansi.PrintableRuneWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}

package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridmenu/internal/format/table"
	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/orders"
)

// pixelsPerCell converts the pixel widths menu actions carry into terminal
// columns.
const pixelsPerCell = 8

const progressBarWidth = 5

func orderColumns() []grid.Column {
	return []grid.Column{
		{Key: orders.ColID, Title: orders.Title(orders.ColID), Width: 12, Sortable: true},
		{Key: orders.ColName, Title: orders.Title(orders.ColName), Width: 250 / pixelsPerCell, Sortable: true},
		{Key: orders.ColStatus, Title: orders.Title(orders.ColStatus), Width: 120 / pixelsPerCell, Sortable: true},
		{Key: orders.ColPriority, Title: orders.Title(orders.ColPriority), Width: 100 / pixelsPerCell, Sortable: true},
		{Key: orders.ColAssignedTo, Title: orders.Title(orders.ColAssignedTo), Width: 150 / pixelsPerCell, Sortable: true},
		{Key: orders.ColDueDate, Title: orders.Title(orders.ColDueDate), Width: 120 / pixelsPerCell, Sortable: true},
		{Key: orders.ColProgress, Title: orders.Title(orders.ColProgress), Width: 120 / pixelsPerCell, Sortable: true, Align: table.AlignRight, Format: progressBar},
		{Key: orders.ColLocked, Title: orders.Title(orders.ColLocked), Width: 6, Format: lockMark},
	}
}

func pixelsToCells(px int) int {
	return max(px/pixelsPerCell, 1)
}

func progressBar(v any) string {
	n, ok := v.(int)
	if !ok {
		return grid.FormatValue(v)
	}
	n = min(max(n, 0), 100)
	filled := n * progressBarWidth / 100
	return fmt.Sprintf("%s%s %3d%%", strings.Repeat("█", filled), strings.Repeat("░", progressBarWidth-filled), n)
}

func lockMark(v any) string {
	if locked, _ := v.(bool); locked {
		return "locked"
	}
	return ""
}

// Package export writes grid rows to CSV, Excel and PDF files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
)

// Column is one exported column.
type Column struct {
	Key   string
	Title string
}

// Table is the rendered text of the rows being exported.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]string
}

// FromRows renders rows into a Table, formatting each cell with text.
func FromRows[R menu.Row](name string, columns []Column, rows []R, text func(any) string) Table {
	t := Table{Name: name, Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = text(row.Value(col.Key))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Extension returns the file extension used for format.
func Extension(format menu.ExportFormat) (string, error) {
	switch format {
	case menu.ExportCSV:
		return "csv", nil
	case menu.ExportExcel:
		return "xlsx", nil
	case menu.ExportPDF:
		return "pdf", nil
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
}

// Write exports t into dir and returns the file path. The file name is the
// table name followed by a timestamp taken from now.
func Write(dir string, format menu.ExportFormat, t Table, now time.Time) (string, error) {
	if len(t.Columns) == 0 {
		return "", errors.New("nothing to export: no visible columns")
	}
	ext, err := Extension(format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure export dir: %w", err)
	}
	name := strings.TrimSpace(t.Name)
	if name == "" {
		name = "export"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", name, now.Format("20060102-150405"), ext))

	switch format {
	case menu.ExportCSV:
		err = writeCSV(path, t)
	case menu.ExportExcel:
		err = writeExcel(path, t)
	case menu.ExportPDF:
		err = writePDF(path, t)
	}
	if err != nil {
		return "", err
	}
	events.Store.Export(string(format), path, len(t.Rows))
	return path, nil
}

func (t Table) header() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Title
		if out[i] == "" {
			out[i] = c.Key
		}
	}
	return out
}

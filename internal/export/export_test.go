package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/orders"
)

var stamp = time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC)

func sampleTable() Table {
	cols := []Column{{Key: orders.ColID, Title: "Order ID"}, {Key: orders.ColName, Title: "Name"}, {Key: orders.ColProgress}}
	return FromRows("orders", cols, orders.Seed()[:2], func(v any) string { return fmt.Sprint(v) })
}

func TestFromRows(t *testing.T) {
	tbl := sampleTable()
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"PO-2024-001", "Purchase Order PO-2024-001", "75"}, tbl.Rows[0])
	assert.Equal(t, []string{"Order ID", "Name", "progress"}, tbl.header())
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, menu.ExportCSV, sampleTable(), stamp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "orders-20240215-093000.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Order ID", records[0][0])
	assert.Equal(t, "30", records[2][2])
}

func TestWriteExcel(t *testing.T) {
	path, err := Write(t.TempDir(), menu.ExportExcel, sampleTable(), stamp)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".xlsx"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "SR-2024-005", rows[2][0])
}

func TestWritePDF(t *testing.T) {
	tbl := sampleTable()
	tbl.Rows = append(tbl.Rows, make([][]string, 60)...)
	for i := 2; i < len(tbl.Rows); i++ {
		tbl.Rows[i] = []string{fmt.Sprintf("GEN-%05d", i), strings.Repeat("long name ", 20), "1"}
	}
	path, err := Write(t.TempDir(), menu.ExportPDF, tbl, stamp)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestWriteRejectsBadInput(t *testing.T) {
	_, err := Write(t.TempDir(), menu.ExportFormat("docx"), sampleTable(), stamp)
	assert.Error(t, err)

	_, err = Write(t.TempDir(), menu.ExportCSV, Table{Name: "empty"}, stamp)
	assert.Error(t, err)
}

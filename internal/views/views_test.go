package views

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/orders"
)

func newGrid() *grid.Grid[orders.Order] {
	cols := make([]grid.Column, 0, len(orders.Columns()))
	for _, key := range orders.Columns() {
		cols = append(cols, grid.Column{Key: key, Title: orders.Title(key), Width: 12, Sortable: true})
	}
	g := grid.New[orders.Order](cols, grid.Config{ViewportHeight: 10})
	g.SetRows(orders.Seed())
	return g
}

func TestCaptureApplyRoundTrip(t *testing.T) {
	src := newGrid()
	require.NoError(t, src.Sort(orders.ColPriority, menu.Descending))
	require.NoError(t, src.HideColumn(orders.ColLocked))
	require.NoError(t, src.ResizeColumn(orders.ColName, 30))
	require.NoError(t, src.GroupBy(orders.ColStatus))
	_, err := src.SetFilter(orders.ColAssignedTo, "jo")
	require.NoError(t, err)
	src.TogglePagination()

	dir := t.TempDir()
	path, err := Save(dir, Capture("triage", src))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "triage.yaml"), path)

	loaded, err := Load(dir, "triage")
	require.NoError(t, err)

	dst := newGrid()
	require.NoError(t, Apply(loaded, dst))

	spec, ok := dst.SortSpec()
	require.True(t, ok)
	assert.Equal(t, grid.SortSpec{Column: orders.ColPriority, Direction: menu.Descending}, spec)
	assert.Equal(t, orders.ColStatus, dst.GroupedBy())
	assert.Equal(t, grid.ColumnFilter{Column: orders.ColAssignedTo, Query: "jo"}, dst.Filter())
	assert.True(t, dst.Paginated())
	assert.Len(t, dst.VisibleColumns(), len(orders.Columns())-1)
	assert.Equal(t, 30, dst.Columns()[1].Width)
	assert.Equal(t, keys(src.Rows()), keys(dst.Rows()))
}

func TestApplyReportsUnknownColumns(t *testing.T) {
	g := newGrid()
	err := Apply(View{Name: "bad", SortColumn: "nope", Hidden: []string{"ghost"}}, g)
	assert.Error(t, err)
	assert.Len(t, g.VisibleColumns(), len(orders.Columns()))
}

func TestListAndNames(t *testing.T) {
	dir := t.TempDir()
	names, err := List(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, n := range []string{"zeta", "alpha"} {
		_, err := Save(dir, View{Name: n})
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	names, err = List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	_, err = Save(dir, View{Name: "../escape"})
	assert.Error(t, err)
	_, err = Load(dir, "absent")
	assert.Error(t, err)
}

func keys(rows []orders.Order) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Key()
	}
	return out
}

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	key    string
	status string
	locked bool
}

func (r testRow) Key() string { return r.key }

func (r testRow) Value(column string) any {
	switch column {
	case "id":
		return r.key
	case "status":
		return r.status
	default:
		return nil
	}
}

func TestBuildRowMenu(t *testing.T) {
	row := testRow{key: "PO-1"}
	items := Build(ForRow(row, nil, Point{}), Callbacks[testRow]{})

	require.Equal(t, []string{
		"edit-row", "view-details", "duplicate-row", "add-note", "divider-1", "delete-row",
	}, IDs(items))
	require.NoError(t, Validate(items))

	for _, item := range items {
		assert.False(t, item.Disabled, "item %s should be enabled", item.ID)
	}
	del, ok := Find(items, "delete-row")
	require.True(t, ok)
	assert.Equal(t, "Del", del.Shortcut)
	assert.Equal(t, "trash-2", del.Icon)
}

func TestBuildRowMenuLockedRow(t *testing.T) {
	row := testRow{key: "SR-5", locked: true}
	cb := Callbacks[testRow]{
		IsRowLocked: func(r testRow) bool { return r.locked },
	}
	items := Build(ForRow(row, nil, Point{}), cb)

	edit, _ := Find(items, "edit-row")
	del, _ := Find(items, "delete-row")
	dup, _ := Find(items, "duplicate-row")
	view, _ := Find(items, "view-details")
	assert.True(t, edit.Disabled)
	assert.True(t, del.Disabled)
	assert.False(t, dup.Disabled)
	assert.False(t, view.Disabled)
}

func TestBuildRowMenuPermissionPredicates(t *testing.T) {
	row := testRow{key: "QC-2"}
	cb := Callbacks[testRow]{
		CanEdit:   func(testRow) bool { return false },
		CanDelete: func(testRow) bool { return false },
	}
	items := Build(ForRow(row, nil, Point{}), cb)

	for _, id := range []string{"edit-row", "duplicate-row", "delete-row"} {
		item, ok := Find(items, id)
		require.True(t, ok)
		assert.True(t, item.Disabled, "%s should be disabled", id)
	}
}

func TestBuildRowMenuBindsRow(t *testing.T) {
	var got []string
	cb := Callbacks[testRow]{
		Edit:   func(r testRow) error { got = append(got, "edit:"+r.key); return nil },
		Delete: func(r testRow) error { got = append(got, "delete:"+r.key); return nil },
	}
	items := Build(ForRow(testRow{key: "MO-3"}, nil, Point{}), cb)

	edit, _ := Find(items, "edit-row")
	del, _ := Find(items, "delete-row")
	require.NoError(t, edit.Action())
	require.NoError(t, del.Action())
	assert.Equal(t, []string{"edit:MO-3", "delete:MO-3"}, got)
}

func TestBuildColumnMenu(t *testing.T) {
	type call struct {
		column string
		dir    SortDirection
		width  int
		value  string
	}
	var calls []call
	cb := Callbacks[testRow]{
		Sort: func(column string, dir SortDirection) error {
			calls = append(calls, call{column: column, dir: dir})
			return nil
		},
		ResizeColumn: func(column string, width int) error {
			calls = append(calls, call{column: column, width: width})
			return nil
		},
		FilterByColumn: func(column, value string) error {
			calls = append(calls, call{column: column, value: value})
			return nil
		},
	}
	items := Build(ForColumn[testRow]("status", nil, Point{}), cb)

	require.Equal(t, []string{
		"sort-asc", "sort-desc", "divider-1", "filter-by-column", "group-by-column",
		"divider-2", "hide-column", "resize-column",
	}, IDs(items))
	require.NoError(t, Validate(items))

	for _, id := range []string{"sort-desc", "resize-column", "filter-by-column"} {
		item, _ := Find(items, id)
		require.NoError(t, item.Action())
	}
	assert.Equal(t, []call{
		{column: "status", dir: Descending},
		{column: "status", width: DefaultResizeWidth},
		{column: "status", value: DefaultFilterByColumn},
	}, calls)
}

func TestBuildTableMenuWithSelection(t *testing.T) {
	selection := []testRow{{key: "a"}, {key: "b"}}
	var statusRows []testRow
	var status string
	var exported []testRow
	var format ExportFormat
	cb := Callbacks[testRow]{
		ChangeStatus: func(rows []testRow, s string) error {
			statusRows, status = rows, s
			return nil
		},
		Export: func(f ExportFormat, rows []testRow) error {
			format, exported = f, rows
			return nil
		},
	}
	items := Build(ForTable(selection, Point{}), cb)

	require.Equal(t, []string{
		"refresh-table", "divider-1", "export-selected", "assign-user", "change-status",
		"bulk-update", "divider-2", "export-table", "toggle-pagination", "customize-columns", "save-view",
	}, IDs(items))
	require.NoError(t, Validate(items))

	exportSelected, _ := Find(items, "export-selected")
	require.True(t, exportSelected.HasSubmenu())
	assert.Equal(t, []string{"export-csv", "export-excel", "export-pdf"}, IDs(exportSelected.Submenu))

	change, _ := Find(items, "change-status")
	require.NoError(t, change.Action())
	assert.Equal(t, selection, statusRows)
	assert.Equal(t, DefaultStatus, status)

	pdf, _ := Find(items, "export-pdf")
	require.NoError(t, pdf.Action())
	assert.Equal(t, ExportPDF, format)
	assert.Equal(t, selection, exported)

	all, _ := Find(items, "export-all-excel")
	require.NoError(t, all.Action())
	assert.Equal(t, ExportExcel, format)
	assert.Nil(t, exported)
}

func TestBuildTableMenuWithoutSelection(t *testing.T) {
	items := Build(ForTable[testRow](nil, Point{}), Callbacks[testRow]{})

	require.Equal(t, []string{
		"refresh-table", "divider-1", "export-table", "toggle-pagination", "customize-columns", "save-view",
	}, IDs(items))
	for _, id := range []string{"export-selected", "assign-user", "change-status", "bulk-update"} {
		_, ok := Find(items, id)
		assert.False(t, ok, "%s should be absent", id)
	}
}

func TestBuildCapturesSelectionByValue(t *testing.T) {
	selection := []testRow{{key: "a"}, {key: "b"}}
	var got []testRow
	cb := Callbacks[testRow]{
		Assign: func(rows []testRow) error { got = rows; return nil },
	}
	items := Build(ForTable(selection, Point{}), cb)

	selection[0] = testRow{key: "changed"}
	assign, _ := Find(items, "assign-user")
	require.NoError(t, assign.Action())
	assert.Equal(t, []testRow{{key: "a"}, {key: "b"}}, got)
}

func TestBuildCellMenu(t *testing.T) {
	var copied any
	var edited string
	cb := Callbacks[testRow]{
		CopyCell: func(v any) error { copied = v; return nil },
		EditCell: func(r testRow, column string) error { edited = r.key + "." + column; return nil },
	}
	items := Build(ForCell(testRow{key: "PO-1", status: "Approved"}, "status", nil, Point{}), cb)

	require.Equal(t, []string{"copy-cell", "edit-cell"}, IDs(items))
	copyItem, _ := Find(items, "copy-cell")
	editItem, _ := Find(items, "edit-cell")
	require.NoError(t, copyItem.Action())
	require.NoError(t, editItem.Action())
	assert.Equal(t, "Approved", copied)
	assert.Equal(t, "PO-1.status", edited)
}

func TestBuildIsPure(t *testing.T) {
	calls := 0
	cb := Callbacks[testRow]{
		Refresh: func() error { calls++; return nil },
		Edit:    func(testRow) error { calls++; return nil },
	}
	d := ForRow(testRow{key: "x"}, nil, Point{X: 3, Y: 4})
	first := Build(d, cb)
	second := Build(d, cb)

	assert.Equal(t, IDs(first), IDs(second))
	assert.Zero(t, calls)
	assert.Nil(t, Build(Descriptor[testRow]{}, cb))
}

func TestValidateRejectsMalformedTrees(t *testing.T) {
	bad := []Item{
		{ID: "leaf", Label: "Leaf"},
		{ID: "div", Divider: true, Label: "oops"},
		{ID: "parent", Label: "Parent", Submenu: []Item{{ID: "child", Label: "Child"}}},
	}
	err := Validate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `leaf "leaf" has no action`)
	assert.Contains(t, err.Error(), `divider "div"`)
	assert.Contains(t, err.Error(), `submenu "parent"`)
}

func TestTargetKinds(t *testing.T) {
	assert.Equal(t, "row", ForRow(testRow{}, nil, Point{}).Kind().String())
	assert.Equal(t, "column", ForColumn[testRow]("id", nil, Point{}).Kind().String())
	assert.Equal(t, "table", ForTable[testRow](nil, Point{}).Kind().String())
	assert.Equal(t, "cell", ForCell(testRow{}, "id", nil, Point{}).Kind().String())
}

package menu

// Build returns the action tree for the descriptor's target. It is pure: the
// same descriptor and callbacks always produce the same tree, and nothing
// runs until an item's action is invoked. Rows, column keys and the selection
// are bound into the closures when the tree is built.
func Build[R Row](d Descriptor[R], cb Callbacks[R]) []Item {
	if d.Target == nil {
		return nil
	}
	return d.Target.Accept(builder[R]{cb: cb, selection: cloneRows(d.Selection)})
}

type builder[R Row] struct {
	cb        Callbacks[R]
	selection []R
}

func (b builder[R]) VisitRow(t RowTarget[R]) []Item {
	row := t.Row
	locked := b.cb.locked(row)
	editable := b.cb.editable(row)
	deletable := b.cb.deletable(row)
	return []Item{
		{
			ID:       "edit-row",
			Label:    "Edit Row",
			Icon:     "edit",
			Shortcut: "Ctrl+E",
			Disabled: !editable || locked,
			Action:   rowAction(b.cb.Edit, row),
		},
		{
			ID:       "view-details",
			Label:    "View Details",
			Icon:     "eye",
			Shortcut: "Ctrl+D",
			Action:   rowAction(b.cb.View, row),
		},
		{
			ID:       "duplicate-row",
			Label:    "Duplicate Row",
			Icon:     "copy",
			Shortcut: "Ctrl+Shift+D",
			Disabled: !editable,
			Action:   rowAction(b.cb.Duplicate, row),
		},
		{
			ID:       "add-note",
			Label:    "Add Note / Comment",
			Icon:     "message-square",
			Shortcut: "Ctrl+N",
			Action:   rowAction(b.cb.Note, row),
		},
		Divider("divider-1"),
		{
			ID:       "delete-row",
			Label:    "Delete Row",
			Icon:     "trash-2",
			Shortcut: "Del",
			Disabled: !deletable || locked,
			Action:   rowAction(b.cb.Delete, row),
		},
	}
}

func (b builder[R]) VisitColumn(t ColumnTarget[R]) []Item {
	column := t.Column
	sortAction := func(dir SortDirection) Action {
		if b.cb.Sort == nil {
			return noop
		}
		return func() error { return b.cb.Sort(column, dir) }
	}
	filterAction := Action(noop)
	if b.cb.FilterByColumn != nil {
		filterAction = func() error { return b.cb.FilterByColumn(column, DefaultFilterByColumn) }
	}
	resizeAction := Action(noop)
	if b.cb.ResizeColumn != nil {
		resizeAction = func() error { return b.cb.ResizeColumn(column, DefaultResizeWidth) }
	}
	return []Item{
		{ID: "sort-asc", Label: "Sort Ascending", Icon: "chevron-up", Shortcut: "Ctrl+Shift+↑", Action: sortAction(Ascending)},
		{ID: "sort-desc", Label: "Sort Descending", Icon: "chevron-down", Shortcut: "Ctrl+Shift+↓", Action: sortAction(Descending)},
		Divider("divider-1"),
		{ID: "filter-by-column", Label: "Filter by This Column", Icon: "filter", Shortcut: "Ctrl+F", Action: filterAction},
		{ID: "group-by-column", Label: "Group by This Column", Icon: "group", Shortcut: "Ctrl+G", Action: columnAction(b.cb.GroupByColumn, column)},
		Divider("divider-2"),
		{ID: "hide-column", Label: "Hide Column", Icon: "eye-off", Shortcut: "Ctrl+H", Action: columnAction(b.cb.HideColumn, column)},
		{ID: "resize-column", Label: "Resize Column", Icon: "move", Action: resizeAction},
	}
}

func (b builder[R]) VisitTable(TableTarget[R]) []Item {
	items := []Item{
		{ID: "refresh-table", Label: "Refresh Table", Icon: "refresh-cw", Shortcut: "F5", Action: plainAction(b.cb.Refresh)},
		Divider("divider-1"),
	}
	if len(b.selection) > 0 {
		selected := b.selection
		changeStatus := Action(noop)
		if b.cb.ChangeStatus != nil {
			changeStatus = func() error { return b.cb.ChangeStatus(selected, DefaultStatus) }
		}
		bulkUpdate := Action(noop)
		if b.cb.BulkUpdate != nil {
			bulkUpdate = func() error { return b.cb.BulkUpdate(selected, DefaultBulkField, DefaultBulkValue) }
		}
		items = append(items,
			Item{
				ID:      "export-selected",
				Label:   "Export Selected",
				Icon:    "download",
				Submenu: b.exportItems("export", "Export as", selected),
				Action:  noop,
			},
			Item{ID: "assign-user", Label: "Assign to User/Manager", Icon: "user", Action: rowsAction(b.cb.Assign, selected)},
			Item{ID: "change-status", Label: "Change Status", Icon: "move", Action: changeStatus},
			Item{ID: "bulk-update", Label: "Bulk Update Fields", Icon: "settings", Action: bulkUpdate},
			Divider("divider-2"),
		)
	}
	items = append(items,
		Item{
			ID:      "export-table",
			Label:   "Export Table",
			Icon:    "download",
			Submenu: b.exportItems("export-all", "Export All as", nil),
			Action:  noop,
		},
		Item{ID: "toggle-pagination", Label: "Toggle Pagination / Show All", Icon: "settings", Action: plainAction(b.cb.TogglePagination)},
		Item{ID: "customize-columns", Label: "Customize Columns", Icon: "settings", Action: plainAction(b.cb.CustomizeColumns)},
		Item{ID: "save-view", Label: "Save Current View", Icon: "save", Shortcut: "Ctrl+S", Action: plainAction(b.cb.SaveView)},
	)
	return items
}

func (b builder[R]) VisitCell(t CellTarget[R]) []Item {
	row, column := t.Row, t.Column
	value := t.Value()
	copyAction := Action(noop)
	if b.cb.CopyCell != nil {
		copyAction = func() error { return b.cb.CopyCell(value) }
	}
	editAction := Action(noop)
	if b.cb.EditCell != nil {
		editAction = func() error { return b.cb.EditCell(row, column) }
	}
	return []Item{
		{ID: "copy-cell", Label: "Copy Cell Value", Icon: "copy", Shortcut: "Ctrl+C", Action: copyAction},
		{ID: "edit-cell", Label: "Edit Cell", Icon: "edit", Shortcut: "F2", Action: editAction},
	}
}

func (b builder[R]) exportItems(prefix, labelPrefix string, rows []R) []Item {
	formats := []struct {
		format ExportFormat
		id     string
		label  string
		icon   string
	}{
		{ExportCSV, "csv", "CSV", "file-text"},
		{ExportExcel, "excel", "Excel", "file-spreadsheet"},
		{ExportPDF, "pdf", "PDF", "file"},
	}
	items := make([]Item, 0, len(formats))
	for _, f := range formats {
		format := f.format
		action := Action(noop)
		if b.cb.Export != nil {
			action = func() error { return b.cb.Export(format, rows) }
		}
		items = append(items, Item{
			ID:     prefix + "-" + f.id,
			Label:  labelPrefix + " " + f.label,
			Icon:   f.icon,
			Action: action,
		})
	}
	return items
}

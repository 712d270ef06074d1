package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/atomicstack/gridmenu/internal/export"
	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/orders"
	"github.com/atomicstack/gridmenu/internal/ui/command"
	uistate "github.com/atomicstack/gridmenu/internal/ui/state"
)

var errNoService = errors.New("no order service configured")

// Prompt action IDs. They match the menu item that asked for the value.
const (
	actionEditRow     = "edit-row"
	actionDeleteRow   = "delete-row"
	actionAddNote     = "add-note"
	actionAssign      = "assign-user"
	actionStatus      = "change-status"
	actionBulkUpdate  = "bulk-update"
	actionFilter      = "filter-by-column"
	actionResize      = "resize-column"
	actionSaveView    = "save-view"
	actionEditCell    = "edit-cell"
	exportTableName   = "orders"
	confirmDeleteHelp = "type y to confirm"
)

// callbacks binds the menu actions to the model.
func (m *Model) callbacks() menu.Callbacks[orders.Order] {
	return menu.Callbacks[orders.Order]{
		Edit:      m.editRow,
		Delete:    m.deleteRow,
		Duplicate: m.duplicateRow,
		View:      m.viewDetails,
		Note:      m.addNote,

		Export:       m.exportRows,
		Assign:       m.assignRows,
		ChangeStatus: m.changeStatus,
		BulkUpdate:   m.bulkUpdate,

		Sort:           m.grid.Sort,
		HideColumn:     m.hideColumn,
		FilterByColumn: m.filterByColumn,
		GroupByColumn:  m.groupByColumn,
		ResizeColumn:   m.resizeColumn,

		Refresh:          m.refresh,
		TogglePagination: m.togglePagination,
		CustomizeColumns: m.customizeColumns,
		SaveView:         m.saveView,

		CopyCell: m.copyCell,
		EditCell: m.editCell,

		IsRowLocked: func(o orders.Order) bool { return o.Locked },
		CanEdit:     func(o orders.Order) bool { return !o.Locked },
		CanDelete:   func(o orders.Order) bool { return !o.Locked && o.Status != orders.StatusCompleted },
	}
}

func (m *Model) editRow(o orders.Order) error {
	m.startForm(uistate.Prompt{
		ActionID: actionEditRow,
		Title:    "Rename " + o.ID,
		Initial:  o.Name,
		Targets:  []string{o.ID},
		Column:   orders.ColName,
	})
	return nil
}

func (m *Model) deleteRow(o orders.Order) error {
	m.startForm(uistate.Prompt{
		ActionID:    actionDeleteRow,
		Title:       fmt.Sprintf("Delete %s?", o.ID),
		Help:        confirmDeleteHelp,
		Placeholder: "y/N",
		CharLimit:   3,
		Targets:     []string{o.ID},
	})
	return nil
}

func (m *Model) duplicateRow(o orders.Order) error {
	if m.service == nil {
		return errNoService
	}
	dup := o.Copy(m.service.NewID(o))
	svc := m.service
	m.queue(command.Request{
		ID:    "duplicate-row",
		Label: "Duplicating " + o.ID,
		Run: func(ctx context.Context) (string, error) {
			if err := svc.Save(ctx, dup); err != nil {
				return "", err
			}
			return fmt.Sprintf("Duplicated %s as %s", o.ID, dup.ID), nil
		},
		Refresh: true,
	})
	return nil
}

func (m *Model) addNote(o orders.Order) error {
	if m.service == nil {
		return errNoService
	}
	m.startForm(uistate.Prompt{
		ActionID:    actionAddNote,
		Title:       "Note for " + o.ID,
		Placeholder: "comment",
		CharLimit:   500,
		Targets:     []string{o.ID},
	})
	return nil
}

// exportRows writes rows, or the whole filtered table when rows is nil, in
// the visible column order.
func (m *Model) exportRows(format menu.ExportFormat, rows []orders.Order) error {
	if m.service == nil {
		return errNoService
	}
	if rows == nil {
		rows = m.grid.Rows()
	}
	visible := m.grid.VisibleColumns()
	cols := make([]export.Column, 0, len(visible))
	for _, c := range visible {
		cols = append(cols, export.Column{Key: c.Key, Title: c.Title})
	}
	table := export.FromRows(exportTableName, cols, rows, grid.FormatValue)
	svc := m.service
	m.queue(command.Request{
		ID:    "export-" + string(format),
		Label: fmt.Sprintf("Exporting %d rows", len(rows)),
		Run: func(context.Context) (string, error) {
			path, err := svc.Export(format, table)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Exported %d rows to %s", len(table.Rows), path), nil
		},
	})
	return nil
}

func (m *Model) assignRows(rows []orders.Order) error {
	m.startForm(uistate.Prompt{
		ActionID:    actionAssign,
		Title:       fmt.Sprintf("Assign %s to", plural(len(rows), "order")),
		Placeholder: "user or manager",
		Targets:     keysOf(rows),
		Column:      orders.ColAssignedTo,
	})
	return nil
}

func (m *Model) changeStatus(rows []orders.Order, status string) error {
	m.startForm(uistate.Prompt{
		ActionID: actionStatus,
		Title:    fmt.Sprintf("New status for %s", plural(len(rows), "order")),
		Initial:  status,
		Targets:  keysOf(rows),
		Column:   orders.ColStatus,
		Validate: func(s string) error {
			_, err := orders.ParseStatus(s)
			return err
		},
	})
	return nil
}

func (m *Model) bulkUpdate(rows []orders.Order, field string, value any) error {
	m.startForm(uistate.Prompt{
		ActionID: actionBulkUpdate,
		Title:    fmt.Sprintf("Set %s on %s", orders.Title(field), plural(len(rows), "order")),
		Initial:  fmt.Sprint(value),
		Targets:  keysOf(rows),
		Column:   field,
	})
	return nil
}

func (m *Model) hideColumn(column string) error {
	if len(m.grid.VisibleColumns()) <= 1 {
		return errors.New("cannot hide the last visible column")
	}
	return m.grid.HideColumn(column)
}

func (m *Model) filterByColumn(column, value string) error {
	m.startForm(uistate.Prompt{
		ActionID:   actionFilter,
		Title:      "Filter " + orders.Title(column),
		Help:       "empty clears the filter",
		Initial:    value,
		Column:     column,
		AllowEmpty: true,
	})
	return nil
}

// groupByColumn toggles grouping on column.
func (m *Model) groupByColumn(column string) error {
	if m.grid.GroupedBy() == column {
		return m.grid.GroupBy("")
	}
	return m.grid.GroupBy(column)
}

func (m *Model) resizeColumn(column string, width int) error {
	m.startForm(uistate.Prompt{
		ActionID:  actionResize,
		Title:     "Width of " + orders.Title(column),
		Initial:   strconv.Itoa(pixelsToCells(width)),
		CharLimit: 3,
		Column:    column,
		Validate:  validateWidth,
	})
	return nil
}

func validateWidth(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return errors.New("width must be a positive number of cells")
	}
	return nil
}

func (m *Model) refresh() error {
	if m.backend == nil && m.service == nil {
		return errNoService
	}
	m.setInfo("Refreshing orders")
	if cmd := m.reload(); cmd != nil {
		m.queued = append(m.queued, cmd)
	}
	return nil
}

func (m *Model) togglePagination() error {
	if m.grid.TogglePagination() {
		page, pages := m.grid.Page()
		m.setInfo(fmt.Sprintf("Paginated: page %d of %d", page+1, pages))
		return nil
	}
	m.setInfo("Showing all rows")
	return nil
}

func (m *Model) customizeColumns() error {
	m.menu.Close()
	m.popup.Hide()
	m.openColumnChooser()
	return nil
}

func (m *Model) saveView() error {
	m.startForm(uistate.Prompt{
		ActionID:    actionSaveView,
		Title:       "Save view as",
		Placeholder: "name",
		CharLimit:   64,
	})
	return nil
}

func (m *Model) copyCell(value any) error {
	if m.service == nil {
		return errNoService
	}
	text := grid.FormatValue(value)
	svc := m.service
	m.queue(command.Request{
		ID:    "copy-cell",
		Label: "Copying cell",
		Run: func(context.Context) (string, error) {
			if err := svc.Copy(text); err != nil {
				return "", fmt.Errorf("copy to clipboard: %w", err)
			}
			return fmt.Sprintf("Copied %q", text), nil
		},
	})
	return nil
}

func (m *Model) editCell(o orders.Order, column string) error {
	if o.Locked {
		return fmt.Errorf("%s is locked", o.ID)
	}
	if column == orders.ColID {
		return fmt.Errorf("the id of %s cannot be changed", o.ID)
	}
	m.startForm(uistate.Prompt{
		ActionID:   actionEditCell,
		Title:      fmt.Sprintf("%s of %s", orders.Title(column), o.ID),
		Initial:    o.Text(column),
		Targets:    []string{o.ID},
		Column:     column,
		AllowEmpty: true,
	})
	return nil
}

func keysOf(rows []orders.Order) []string {
	keys := make([]string, len(rows))
	for i, o := range rows {
		keys[i] = o.ID
	}
	return keys
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

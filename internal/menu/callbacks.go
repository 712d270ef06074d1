package menu

// SortDirection orders a column ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ExportFormat names an export file format.
type ExportFormat string

const (
	ExportCSV   ExportFormat = "csv"
	ExportExcel ExportFormat = "excel"
	ExportPDF   ExportFormat = "pdf"
)

// Arguments bound by the fixed table and column actions.
const (
	DefaultStatus         = "pending"
	DefaultBulkField      = "status"
	DefaultBulkValue      = "updated"
	DefaultResizeWidth    = 150
	DefaultFilterByColumn = ""
)

// Callbacks is the table a host supplies to the builder. Every field is
// optional: missing callbacks act as no-ops and missing predicates allow.
type Callbacks[R Row] struct {
	Edit      func(R) error
	Delete    func(R) error
	Duplicate func(R) error
	View      func(R) error
	Note      func(R) error

	// Export receives nil rows when the whole table is exported.
	Export       func(format ExportFormat, rows []R) error
	Assign       func(rows []R) error
	ChangeStatus func(rows []R, status string) error
	BulkUpdate   func(rows []R, field string, value any) error

	Sort           func(column string, dir SortDirection) error
	HideColumn     func(column string) error
	FilterByColumn func(column string, value string) error
	GroupByColumn  func(column string) error
	ResizeColumn   func(column string, width int) error

	Refresh          func() error
	TogglePagination func() error
	CustomizeColumns func() error
	SaveView         func() error

	CopyCell func(value any) error
	EditCell func(row R, column string) error

	IsRowLocked func(R) bool
	CanEdit     func(R) bool
	CanDelete   func(R) bool
}

func (c Callbacks[R]) locked(row R) bool {
	if c.IsRowLocked == nil {
		return false
	}
	return c.IsRowLocked(row)
}

func (c Callbacks[R]) editable(row R) bool {
	if c.CanEdit == nil {
		return true
	}
	return c.CanEdit(row)
}

func (c Callbacks[R]) deletable(row R) bool {
	if c.CanDelete == nil {
		return true
	}
	return c.CanDelete(row)
}

func rowAction[R Row](fn func(R) error, row R) Action {
	if fn == nil {
		return noop
	}
	return func() error { return fn(row) }
}

func rowsAction[R Row](fn func([]R) error, rows []R) Action {
	if fn == nil {
		return noop
	}
	return func() error { return fn(rows) }
}

func columnAction(fn func(string) error, column string) Action {
	if fn == nil {
		return noop
	}
	return func() error { return fn(column) }
}

func plainAction(fn func() error) Action {
	if fn == nil {
		return noop
	}
	return fn
}

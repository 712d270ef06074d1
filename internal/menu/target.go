package menu

// Row is the contract a grid row satisfies: a stable identity that survives
// sorting and filtering, and value lookup by column key.
type Row interface {
	Key() string
	Value(column string) any
}

// TargetKind tags the variant of a right-click target.
type TargetKind int

const (
	TargetRow TargetKind = iota
	TargetColumn
	TargetTable
	TargetCell
)

func (k TargetKind) String() string {
	switch k {
	case TargetRow:
		return "row"
	case TargetColumn:
		return "column"
	case TargetTable:
		return "table"
	case TargetCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Visitor resolves a target variant into an action tree.
type Visitor[R Row] interface {
	VisitRow(RowTarget[R]) []Item
	VisitColumn(ColumnTarget[R]) []Item
	VisitTable(TableTarget[R]) []Item
	VisitCell(CellTarget[R]) []Item
}

// Target is the closed set of right-click targets. The unexported method
// keeps the union sealed to this package.
type Target[R Row] interface {
	Kind() TargetKind
	Accept(Visitor[R]) []Item
	sealed()
}

// RowTarget carries the row under the pointer.
type RowTarget[R Row] struct {
	Row R
}

func (RowTarget[R]) Kind() TargetKind             { return TargetRow }
func (t RowTarget[R]) Accept(v Visitor[R]) []Item { return v.VisitRow(t) }
func (RowTarget[R]) sealed()                      {}

// ColumnTarget carries the key of the header under the pointer.
type ColumnTarget[R Row] struct {
	Column string
}

func (ColumnTarget[R]) Kind() TargetKind             { return TargetColumn }
func (t ColumnTarget[R]) Accept(v Visitor[R]) []Item { return v.VisitColumn(t) }
func (ColumnTarget[R]) sealed()                      {}

// TableTarget is the grid background; it carries no payload.
type TableTarget[R Row] struct{}

func (TableTarget[R]) Kind() TargetKind             { return TargetTable }
func (t TableTarget[R]) Accept(v Visitor[R]) []Item { return v.VisitTable(t) }
func (TableTarget[R]) sealed()                      {}

// CellTarget carries a row together with the column of the cell.
type CellTarget[R Row] struct {
	Row    R
	Column string
}

func (CellTarget[R]) Kind() TargetKind             { return TargetCell }
func (t CellTarget[R]) Accept(v Visitor[R]) []Item { return v.VisitCell(t) }
func (CellTarget[R]) sealed()                      {}

// Value returns the cell's value.
func (t CellTarget[R]) Value() any {
	return t.Row.Value(t.Column)
}

// Descriptor is the right-click context handed from the grid to the builder.
type Descriptor[R Row] struct {
	Target    Target[R]
	Selection []R
	Position  Point
}

// Kind returns the variant of the descriptor's target.
func (d Descriptor[R]) Kind() TargetKind {
	if d.Target == nil {
		return TargetTable
	}
	return d.Target.Kind()
}

// ForRow builds a row descriptor. The selection slice is copied.
func ForRow[R Row](row R, selection []R, pos Point) Descriptor[R] {
	return Descriptor[R]{Target: RowTarget[R]{Row: row}, Selection: cloneRows(selection), Position: pos}
}

// ForColumn builds a column header descriptor.
func ForColumn[R Row](column string, selection []R, pos Point) Descriptor[R] {
	return Descriptor[R]{Target: ColumnTarget[R]{Column: column}, Selection: cloneRows(selection), Position: pos}
}

// ForTable builds a background descriptor.
func ForTable[R Row](selection []R, pos Point) Descriptor[R] {
	return Descriptor[R]{Target: TableTarget[R]{}, Selection: cloneRows(selection), Position: pos}
}

// ForCell builds a cell descriptor.
func ForCell[R Row](row R, column string, selection []R, pos Point) Descriptor[R] {
	return Descriptor[R]{Target: CellTarget[R]{Row: row, Column: column}, Selection: cloneRows(selection), Position: pos}
}

func cloneRows[R Row](rows []R) []R {
	if len(rows) == 0 {
		return nil
	}
	dup := make([]R, len(rows))
	copy(dup, rows)
	return dup
}

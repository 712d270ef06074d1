package grid

import (
	"fmt"
	"slices"

	"github.com/atomicstack/gridmenu/internal/format/table"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/theme"
)

const (
	DefaultRowHeight    = 1
	DefaultOverscan     = 10
	DefaultPageSize     = 25
	DefaultEmptyMessage = "No data available"
)

// Column describes one grid column.
type Column struct {
	Key      string
	Title    string
	Width    int
	Align    table.Alignment
	Hidden   bool
	Sortable bool
	// Format overrides FormatValue for this column's cells.
	Format func(any) string
}

// Text renders v the way the column displays it.
func (c Column) Text(v any) string {
	if c.Format != nil {
		return c.Format(v)
	}
	return FormatValue(v)
}

// Config holds the fixed layout inputs of a grid.
type Config struct {
	RowHeight      int
	ViewportHeight int
	Overscan       int
	PageSize       int
	Width          int
	EmptyMessage   string
	// Selectable adds the checkbox column.
	Selectable bool
}

func (c Config) withDefaults() Config {
	if c.RowHeight <= 0 {
		c.RowHeight = DefaultRowHeight
	}
	if c.Overscan < 0 {
		c.Overscan = 0
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.EmptyMessage == "" {
		c.EmptyMessage = DefaultEmptyMessage
	}
	return c
}

// Grid is a windowed view over a row collection. It owns sort, filter,
// grouping, pagination, hover and the identity-keyed selection, and wires
// pointer targets to the context menu.
type Grid[R menu.Row] struct {
	cfg     Config
	columns []Column
	source  []R
	view    []R

	sort      SortSpec
	filter    ColumnFilter
	groupBy   string
	paginated bool
	page      int

	scrollTop int
	cursorKey string
	hoverKey  string
	selection *Selection

	render    RenderFunc[R]
	styles    *theme.Styles
	callbacks menu.Callbacks[R]
	menu      *menu.State[R]
}

// New returns an empty grid.
func New[R menu.Row](columns []Column, cfg Config) *Grid[R] {
	g := &Grid[R]{
		cfg:       cfg.withDefaults(),
		columns:   slices.Clone(columns),
		selection: NewSelection(),
		styles:    theme.Default(),
	}
	g.render = g.defaultRender
	return g
}

// BindMenu attaches the menu state opened by pointer handlers and the
// callbacks the action trees are built from.
func (g *Grid[R]) BindMenu(state *menu.State[R], cb menu.Callbacks[R]) {
	g.menu = state
	g.callbacks = cb
}

// SetCallbacks replaces the callback table used for subsequent menus.
func (g *Grid[R]) SetCallbacks(cb menu.Callbacks[R]) {
	g.callbacks = cb
}

// SetRenderer overrides how a single row is drawn. A nil fn restores the
// default renderer.
func (g *Grid[R]) SetRenderer(fn RenderFunc[R]) {
	if fn == nil {
		fn = g.defaultRender
	}
	g.render = fn
}

// SetStyles overrides the style set.
func (g *Grid[R]) SetStyles(styles *theme.Styles) {
	if styles != nil {
		g.styles = styles
	}
}

// Config returns the effective layout configuration.
func (g *Grid[R]) Config() Config {
	return g.cfg
}

// SetRows replaces the collection. Selected keys whose rows disappeared are
// dropped; every other selection survives.
func (g *Grid[R]) SetRows(rows []R) {
	g.source = slices.Clone(rows)
	Prune(g.selection, g.source)
	g.refresh()
}

// Source returns the unfiltered collection.
func (g *Grid[R]) Source() []R {
	return g.source
}

// Rows returns the rows in display order after filter, sort, grouping and
// pagination.
func (g *Grid[R]) Rows() []R {
	return g.view
}

// Len returns the number of display rows.
func (g *Grid[R]) Len() int {
	return len(g.view)
}

// Find returns the row with key from the collection.
func (g *Grid[R]) Find(key string) (R, bool) {
	for _, row := range g.source {
		if row.Key() == key {
			return row, true
		}
	}
	var zero R
	return zero, false
}

// IndexOf returns the display index of key, or -1.
func (g *Grid[R]) IndexOf(key string) int {
	for i, row := range g.view {
		if row.Key() == key {
			return i
		}
	}
	return -1
}

func (g *Grid[R]) ordered() []R {
	rows := FilterRows(g.source, g.filter)
	rows = SortRows(rows, g.sort)
	return GroupRows(rows, g.groupBy)
}

func (g *Grid[R]) refresh() {
	rows := g.ordered()
	if g.paginated {
		pages := pageCount(len(rows), g.cfg.PageSize)
		g.page = clamp(g.page, 0, pages-1)
		start := g.page * g.cfg.PageSize
		end := start + g.cfg.PageSize
		if end > len(rows) {
			end = len(rows)
		}
		rows = rows[start:end]
	} else {
		g.page = 0
	}
	g.view = rows
	g.scrollTop = clamp(g.scrollTop, 0, g.maxScroll())
	if g.cursorKey != "" && g.IndexOf(g.cursorKey) < 0 {
		g.cursorKey = ""
	}
	if g.hoverKey != "" && g.IndexOf(g.hoverKey) < 0 {
		g.hoverKey = ""
	}
}

func pageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 1
	}
	return ceilDiv(total, size)
}

// Columns returns every column, hidden ones included.
func (g *Grid[R]) Columns() []Column {
	return g.columns
}

// VisibleColumns returns the columns currently drawn.
func (g *Grid[R]) VisibleColumns() []Column {
	out := make([]Column, 0, len(g.columns))
	for _, col := range g.columns {
		if !col.Hidden {
			out = append(out, col)
		}
	}
	return out
}

func (g *Grid[R]) column(key string) (*Column, error) {
	for i := range g.columns {
		if g.columns[i].Key == key {
			return &g.columns[i], nil
		}
	}
	return nil, fmt.Errorf("unknown column %q", key)
}

// HideColumn hides key. The last visible column cannot be hidden.
func (g *Grid[R]) HideColumn(key string) error {
	col, err := g.column(key)
	if err != nil {
		return err
	}
	if !col.Hidden && len(g.VisibleColumns()) == 1 {
		return fmt.Errorf("cannot hide %q: it is the last visible column", key)
	}
	col.Hidden = true
	events.Grid.Column("hide", key, col.Width)
	return nil
}

// ShowColumns unhides every column.
func (g *Grid[R]) ShowColumns() {
	for i := range g.columns {
		g.columns[i].Hidden = false
	}
	events.Grid.Column("show-all", "", 0)
}

// SetColumnVisible shows or hides key.
func (g *Grid[R]) SetColumnVisible(key string, visible bool) error {
	if !visible {
		return g.HideColumn(key)
	}
	col, err := g.column(key)
	if err != nil {
		return err
	}
	col.Hidden = false
	events.Grid.Column("show", key, col.Width)
	return nil
}

// ResizeColumn sets the width of key.
func (g *Grid[R]) ResizeColumn(key string, width int) error {
	if width < 1 {
		return fmt.Errorf("invalid width %d for column %q", width, key)
	}
	col, err := g.column(key)
	if err != nil {
		return err
	}
	col.Width = width
	events.Grid.Column("resize", key, width)
	return nil
}

// Sort orders the rows by column. Sorting keeps the viewport where it was.
func (g *Grid[R]) Sort(column string, dir menu.SortDirection) error {
	if _, err := g.column(column); err != nil {
		return err
	}
	g.sort = SortSpec{Column: column, Direction: dir}
	events.Grid.Sort(column, dir.String())
	g.refresh()
	return nil
}

// ToggleSort sorts ascending by column, or flips the direction when the grid
// is already sorted by it.
func (g *Grid[R]) ToggleSort(column string) error {
	dir := menu.Ascending
	if g.sort.Column == column && g.sort.Direction == menu.Ascending {
		dir = menu.Descending
	}
	return g.Sort(column, dir)
}

// ClearSort restores collection order.
func (g *Grid[R]) ClearSort() {
	g.sort = SortSpec{}
	events.Grid.Sort("", "")
	g.refresh()
}

// SortSpec returns the active sort and whether one is set.
func (g *Grid[R]) SortSpec() (SortSpec, bool) {
	return g.sort, g.sort.Column != ""
}

// SetFilter narrows the rows to those matching query in column and returns
// the match count. An empty query clears the filter.
func (g *Grid[R]) SetFilter(column, query string) (int, error) {
	if column != "" {
		if _, err := g.column(column); err != nil {
			return 0, err
		}
	}
	g.filter = ColumnFilter{Column: column, Query: query}
	if !g.filter.Active() {
		g.filter = ColumnFilter{}
	}
	g.page = 0
	g.refresh()
	events.Grid.Filter(column, query, len(g.view))
	return len(g.view), nil
}

// Filter returns the active column filter.
func (g *Grid[R]) Filter() ColumnFilter {
	return g.filter
}

// GroupBy makes column the primary ordering; the active sort orders rows
// within each group. An empty column clears grouping.
func (g *Grid[R]) GroupBy(column string) error {
	if column != "" {
		if _, err := g.column(column); err != nil {
			return err
		}
	}
	g.groupBy = column
	events.Grid.Group(column)
	g.refresh()
	return nil
}

// GroupedBy returns the grouping column.
func (g *Grid[R]) GroupedBy() string {
	return g.groupBy
}

// TogglePagination switches between paged and show-all modes and reports
// whether paging is now on.
func (g *Grid[R]) TogglePagination() bool {
	g.paginated = !g.paginated
	g.page = 0
	g.scrollTop = 0
	g.refresh()
	page, pages := g.Page()
	events.Grid.Page(page, pages, g.paginated)
	return g.paginated
}

// Paginated reports whether paging is on.
func (g *Grid[R]) Paginated() bool {
	return g.paginated
}

// Page returns the zero-based page and the page count.
func (g *Grid[R]) Page() (int, int) {
	if !g.paginated {
		return 0, 1
	}
	return g.page, pageCount(len(g.ordered()), g.cfg.PageSize)
}

// SetPage moves to page p, clamped to the valid range.
func (g *Grid[R]) SetPage(p int) {
	if !g.paginated {
		return
	}
	g.page = p
	g.scrollTop = 0
	g.refresh()
	page, pages := g.Page()
	events.Grid.Page(page, pages, true)
}

// NextPage and PrevPage step through pages.
func (g *Grid[R]) NextPage() { g.SetPage(g.page + 1) }
func (g *Grid[R]) PrevPage() { g.SetPage(g.page - 1) }

// Resize changes the viewport height and recomputes the window.
func (g *Grid[R]) Resize(viewportHeight int) {
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	g.cfg.ViewportHeight = viewportHeight
	g.scrollTop = clamp(g.scrollTop, 0, g.maxScroll())
}

// SetWidth changes the width lines are truncated to.
func (g *Grid[R]) SetWidth(width int) {
	g.cfg.Width = width
}

// ScrollTop returns the scroll offset.
func (g *Grid[R]) ScrollTop() int {
	return g.scrollTop
}

// ScrollTo moves the viewport to top, clamped to the scrollable extent.
func (g *Grid[R]) ScrollTo(top int) {
	top = clamp(top, 0, g.maxScroll())
	if top == g.scrollTop {
		return
	}
	g.scrollTop = top
	w := g.Window()
	events.Grid.Scroll(top, w.Start, w.End)
}

// ScrollBy moves the viewport by delta.
func (g *Grid[R]) ScrollBy(delta int) {
	g.ScrollTo(g.scrollTop + delta)
}

// Extent returns the total scrollable height.
func (g *Grid[R]) Extent() int {
	return Extent(len(g.view), g.cfg.RowHeight)
}

func (g *Grid[R]) maxScroll() int {
	return MaxScroll(len(g.view), g.cfg.RowHeight, g.cfg.ViewportHeight)
}

// Window returns the range of display rows rendered at the current scroll
// offset.
func (g *Grid[R]) Window() Window {
	return ComputeWindow(g.scrollTop, g.cfg.ViewportHeight, g.cfg.RowHeight, g.cfg.Overscan, len(g.view))
}

// Cursor returns the display index of the keyboard cursor, or -1.
func (g *Grid[R]) Cursor() int {
	return g.IndexOf(g.cursorKey)
}

// CursorRow returns the row under the keyboard cursor.
func (g *Grid[R]) CursorRow() (R, bool) {
	idx := g.Cursor()
	if idx < 0 {
		var zero R
		return zero, false
	}
	return g.view[idx], true
}

// SetCursor moves the cursor to display index i and scrolls it into view.
func (g *Grid[R]) SetCursor(i int) {
	if len(g.view) == 0 {
		g.cursorKey = ""
		return
	}
	i = clamp(i, 0, len(g.view)-1)
	g.cursorKey = g.view[i].Key()
	g.hoverKey = g.cursorKey
	g.ScrollTo(ScrollToRow(g.scrollTop, i, g.cfg.RowHeight, g.cfg.ViewportHeight, len(g.view)))
}

// MoveCursor steps the cursor by delta rows.
func (g *Grid[R]) MoveCursor(delta int) {
	idx := g.Cursor()
	if idx < 0 {
		idx = g.scrollTop / g.cfg.RowHeight
		if delta > 0 {
			delta--
		}
	}
	g.SetCursor(idx + delta)
}

// PageSize is the number of rows a page-up or page-down moves.
func (g *Grid[R]) PageSize() int {
	n := g.cfg.ViewportHeight / g.cfg.RowHeight
	if n < 1 {
		return 1
	}
	return n
}

// Hover marks the row with key as hovered. Hover is tracked by identity and
// is unaffected by the render window.
func (g *Grid[R]) Hover(key string) {
	g.hoverKey = key
}

// Hovered returns the hovered row key.
func (g *Grid[R]) Hovered() string {
	return g.hoverKey
}

// Selection exposes the selection set.
func (g *Grid[R]) Selection() *Selection {
	return g.selection
}

// ToggleSelect flips the selection of key.
func (g *Grid[R]) ToggleSelect(key string) bool {
	selected := g.selection.Toggle(key)
	events.Grid.Select(key, selected, g.selection.Len())
	return selected
}

// SelectAll selects every display row, or clears the selection when they
// are all selected already.
func (g *Grid[R]) SelectAll() {
	all := len(g.view) > 0
	for _, row := range g.view {
		if !g.selection.Has(row.Key()) {
			all = false
			break
		}
	}
	for _, row := range g.view {
		g.selection.Set(row.Key(), !all)
	}
	events.Grid.Select("*", !all, g.selection.Len())
}

// ClearSelection empties the selection.
func (g *Grid[R]) ClearSelection() {
	g.selection.Clear()
	events.Grid.Select("", false, 0)
}

// SelectedRows returns the selected rows in collection order, including
// rows currently hidden by a filter or another page.
func (g *Grid[R]) SelectedRows() []R {
	return Selected(g.selection, g.source)
}

package ui

import (
	"context"
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/data/dispatcher"
	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/logging"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/orders"
	"github.com/atomicstack/gridmenu/internal/popup"
	"github.com/atomicstack/gridmenu/internal/state"
	"github.com/atomicstack/gridmenu/internal/theme"
	"github.com/atomicstack/gridmenu/internal/ui/command"
	uistate "github.com/atomicstack/gridmenu/internal/ui/state"
	"github.com/atomicstack/gridmenu/internal/views"
)

type Mode int

const (
	ModeGrid Mode = iota
	ModeForm
	ModeColumns
	ModeDetails
)

const (
	defaultWidth  = 120
	defaultHeight = 30
	// status line + message line + help line
	bottomLines = 3
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	Overscan   int
	PageSize   int
	ShowFooter bool
	Verbose    bool
	Watcher    *backend.Watcher
	Service    Service
	// View is restored once the first snapshot arrives.
	View *views.View
	// Now overrides the clock used for the undo window and export names.
	Now func() time.Time
}

// Model implements the Bubble Tea model for the orders grid.
type Model struct {
	grid      *grid.Grid[orders.Order]
	popup     *popup.View
	menu      *menu.State[orders.Order]
	registry  *menu.Registry
	keys      KeyMap
	popupKeys popup.KeyMap

	mode    Mode
	form    *uistate.Form
	columns *uistate.Checklist
	details *detailsData

	orders      state.OrderStore
	dispatcher  *dispatcher.Dispatcher
	backend     *backend.Watcher
	backendErr  string
	service     Service
	bus         *command.Bus
	queued      []tea.Cmd
	pendingView *views.View

	loading      bool
	pendingID    string
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	now         func() time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with an empty grid.
func NewModel(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	store := state.NewOrderStore()
	registry := menu.NewRegistry()
	m := &Model{
		popup:       popup.New(popup.CellMetrics()),
		menu:        menu.NewState[orders.Order](registry, menu.WithClock(now)),
		registry:    registry,
		keys:        DefaultKeyMap(),
		popupKeys:   popup.DefaultKeyMap(),
		mode:        ModeGrid,
		orders:      store,
		dispatcher:  dispatcher.New(store),
		backend:     opts.Watcher,
		service:     opts.Service,
		bus:         command.New(0),
		pendingView: opts.View,
		width:       defaultWidth,
		height:      defaultHeight,
		showFooter:  opts.ShowFooter,
		verbose:     opts.Verbose,
		now:         now,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.grid = grid.New[orders.Order](orderColumns(), grid.Config{
		ViewportHeight: m.gridViewportHeight(),
		Overscan:       opts.Overscan,
		PageSize:       opts.PageSize,
		Width:          m.width,
		Selectable:     true,
	})
	m.grid.SetStyles(styles)
	m.grid.BindMenu(m.menu, m.callbacks())
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return m.loadOrdersCmd()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	handled, cmd := m.handleActiveModal(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled {
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveModal(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeForm:
		return m.handleForm(msg)
	case ModeColumns:
		return m.handleColumns(msg)
	case ModeDetails:
		return m.handleDetails(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(detailsLoadedMsg{}):  m.handleDetailsLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate keeps the popup in step with the menu state and flushes the
// commands queued by menu actions during this update.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if !m.menu.IsOpen() && m.popup.Visible() {
		m.popup.Hide()
	}
	if len(m.queued) > 0 {
		cmds = append(cmds, m.queued...)
		m.queued = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// queue schedules req on the command bus once the current update finishes.
func (m *Model) queue(req command.Request) {
	if cmd := m.bus.Execute(context.Background(), req); cmd != nil {
		m.loading = true
		m.pendingID = req.ID
		m.pendingLabel = req.Label
		m.queued = append(m.queued, cmd)
	}
}

// Grid exposes the hosted grid.
func (m *Model) Grid() *grid.Grid[orders.Order] {
	return m.grid
}

// Menu exposes the context menu state.
func (m *Model) Menu() *menu.State[orders.Order] {
	return m.menu
}

// Popup exposes the popup view.
func (m *Model) Popup() *popup.View {
	return m.popup
}

// Mode reports which modal, if any, has focus.
func (m *Model) Mode() Mode {
	return m.mode
}

// Close detaches every menu listener. The program calls it on exit.
func (m *Model) Close() {
	m.menu.Dispose()
	m.registry.Clear()
	if m.backend != nil {
		m.backend.Stop()
	}
}

func (m *Model) gridViewportHeight() int {
	used := 1 + bottomLines // grid header
	if m.showFooter {
		used++
	}
	return max(m.height-used, 1)
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	m.errMsg = err.Error()
	m.forceClearInfo()
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/logging"
	"github.com/atomicstack/gridmenu/internal/views"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt, watched: true}
	}
}

// backendEventMsg carries a snapshot. watched is false for one-off loads
// made without a watcher, which must not re-arm the event wait.
type backendEventMsg struct {
	event   backend.Event
	watched bool
}

type backendDoneMsg struct{}

// loadOrdersCmd lists the orders once through the service.
func (m *Model) loadOrdersCmd() tea.Cmd {
	if m.service == nil {
		return nil
	}
	svc := m.service
	return func() tea.Msg {
		rows, err := svc.List(context.Background())
		return backendEventMsg{event: backend.Event{Kind: backend.KindOrders, Data: rows, Err: err}}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if eventMsg.watched && m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendErr = res.Err.Error()
		logging.Error(fmt.Errorf("load orders: %w", res.Err))
		return
	}
	m.backendErr = ""
	if !res.OrdersUpdated {
		return
	}
	m.grid.SetRows(m.orders.Entries())
	if m.grid.Cursor() < 0 && m.grid.Len() > 0 {
		m.grid.SetCursor(0)
	}
	if m.details != nil {
		if o, ok := m.orders.Find(m.details.order.ID); ok {
			m.details.order = o
		}
	}
	m.applyPendingView()
}

// applyPendingView restores the startup view once rows are present, so that
// grouping and filter counts are computed against real data.
func (m *Model) applyPendingView() {
	if m.pendingView == nil {
		return
	}
	v := *m.pendingView
	m.pendingView = nil
	if err := views.Apply(v, m.grid); err != nil {
		m.setError(fmt.Errorf("restore view %s: %w", v.Name, err))
		return
	}
	m.setInfo("Restored view " + v.Name)
}

// reload asks for a fresh snapshot after a write.
func (m *Model) reload() tea.Cmd {
	if m.backend != nil {
		m.backend.Refresh()
		return nil
	}
	return m.loadOrdersCmd()
}

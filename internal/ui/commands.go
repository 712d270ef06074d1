package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/ui/command"
)

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.ID == m.pendingID {
		m.loading = false
		m.pendingID = ""
		m.pendingLabel = ""
	}
	if result.Err != nil {
		m.setError(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	if result.ID == actionAddNote && m.details != nil {
		m.details.seq++
		m.details.loading = true
		return m.loadDetailsCmd(m.details)
	}
	if result.Refresh {
		return m.reload()
	}
	return nil
}

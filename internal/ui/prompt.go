package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	uistate "github.com/atomicstack/gridmenu/internal/ui/state"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises what happens when a form is submitted: the modal
// is closed, the message line is reset, and action runs. The action's
// result decides the follow-up command and message.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.form = nil
	m.mode = ModeGrid
	if m.details != nil {
		m.mode = ModeDetails
	}
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.setError(result.Err)
		return nil
	}
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

// startForm opens a prompt, closing any popup first.
func (m *Model) startForm(p uistate.Prompt) {
	m.menu.Close()
	m.popup.Hide()
	m.form = uistate.NewForm(p)
	m.mode = ModeForm
}

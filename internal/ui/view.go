package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/popup"
)

var modalBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

const modalMinWidth = 40

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{m.grid.View()}
	lines = append(lines, m.clip(styles.Footer.Render(m.statusLine())))
	lines = append(lines, m.clip(m.messageLine()))
	lines = append(lines, m.clip(styles.Footer.Render(m.helpLine())))
	if m.showFooter {
		lines = append(lines, m.clip(styles.Footer.Render(m.keyHints())))
	}
	screen := strings.Join(lines, "\n")

	switch m.mode {
	case ModeForm:
		if m.form != nil {
			return m.overlayModal(screen, m.renderForm())
		}
	case ModeColumns:
		if m.columns != nil {
			return m.overlayModal(screen, m.renderColumns())
		}
	case ModeDetails:
		if m.details != nil {
			return m.overlayModal(screen, m.renderDetails(m.modalWidth()))
		}
	}
	if m.popup.Visible() {
		return m.popup.Compose(screen, styles)
	}
	return screen
}

func (m *Model) clip(line string) string {
	if m.width <= 0 {
		return line
	}
	return truncate.String(line, uint(m.width))
}

func (m *Model) statusLine() string {
	status := m.grid.Status()
	if m.verbose {
		if last, ok := m.menu.LastAction(); ok {
			undo := "expired"
			if m.menu.CanUndo() {
				undo = "undoable"
			}
			status += fmt.Sprintf(" · last %v (%s)", last.Data, undo)
		}
	}
	return status
}

// messageLine shows, in priority order, an error, a pending command, the
// backend state or an informational message.
func (m *Model) messageLine() string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render(m.errMsg)
	case m.loading && m.pendingLabel != "":
		return styles.Info.Render(m.pendingLabel + "...")
	case m.backendErr != "":
		return styles.Error.Render("backend: " + m.backendErr)
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(info)
	}
	return ""
}

func (m *Model) helpLine() string {
	switch m.mode {
	case ModeForm:
		return "enter submit · esc cancel · ctrl+u clear"
	case ModeColumns:
		return "space toggle · enter apply · esc cancel"
	case ModeDetails:
		return "n add note · esc close"
	}
	if m.popup.Visible() {
		return "↑/↓ move · → open · ← back · enter run · esc close"
	}
	return "right-click or m for row menu · t table menu · ctrl+right-click cell menu"
}

func (m *Model) keyHints() string {
	bindings := m.keys.footerBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, keyHint(b))
	}
	return strings.Join(parts, "  ")
}

func keyHint(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

func (m *Model) modalWidth() int {
	return max(min(m.width-4, 72), modalMinWidth)
}

// overlayModal centres body in a bordered box over screen.
func (m *Model) overlayModal(screen, body string) string {
	box := modalBorder.Width(m.modalWidth()).Render(body)
	w, h := lipgloss.Size(box)
	at := menu.Point{X: max((m.width-w)/2, 0), Y: max((m.height-h)/2, 0)}
	return popup.Overlay(screen, box, at)
}

func (m *Model) renderForm() string {
	f := m.form
	lines := []string{styles.PromptLabel.Render(f.Title())}
	if help := f.Help(); help != "" {
		lines = append(lines, styles.Footer.Render(help))
	}
	lines = append(lines, styles.Prompt.Render(f.InputView()))
	if err := f.Error(); err != "" {
		lines = append(lines, styles.Error.Render(err))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderColumns() string {
	c := m.columns
	rows := m.columnListHeight()
	lines := []string{styles.PromptLabel.Render(c.Title)}
	for i, entry := range c.Visible(rows) {
		idx := c.ViewportOffset + i
		mark := "[ ]"
		if c.IsChecked(entry.Key) {
			mark = "[x]"
		}
		line := mark + " " + entry.Label
		if idx == c.Cursor {
			line = styles.Cursor.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth && size.Width > 0 {
		m.width = size.Width
	}
	if !m.fixedHeight && size.Height > 0 {
		m.height = size.Height
	}
	m.grid.SetWidth(m.width)
	m.grid.Resize(m.gridViewportHeight())
	// Placement is only valid for the size it was computed against.
	m.menu.Close()
	return nil
}

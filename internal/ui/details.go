package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/gridmenu/internal/orders"
	"github.com/atomicstack/gridmenu/internal/store"
)

type detailsData struct {
	order   orders.Order
	notes   []store.Note
	err     string
	loading bool
	seq     int
}

type detailsLoadedMsg struct {
	id    string
	seq   int
	notes []store.Note
	err   error
}

func (m *Model) viewDetails(o orders.Order) error {
	m.menu.Close()
	m.popup.Hide()
	seq := 1
	if m.details != nil {
		seq = m.details.seq + 1
	}
	m.details = &detailsData{order: o, loading: m.service != nil, seq: seq}
	m.mode = ModeDetails
	if m.service != nil {
		m.queued = append(m.queued, m.loadDetailsCmd(m.details))
	}
	return nil
}

func (m *Model) loadDetailsCmd(d *detailsData) tea.Cmd {
	if m.service == nil || d == nil {
		return nil
	}
	svc := m.service
	id, seq := d.order.ID, d.seq
	return func() tea.Msg {
		notes, err := svc.Notes(context.Background(), id)
		return detailsLoadedMsg{id: id, seq: seq, notes: notes, err: err}
	}
}

func (m *Model) handleDetailsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(detailsLoadedMsg)
	if !ok {
		return nil
	}
	d := m.details
	// Stale responses for a panel that was closed or replaced are dropped.
	if d == nil || d.order.ID != loaded.id || d.seq != loaded.seq {
		return nil
	}
	d.loading = false
	if loaded.err != nil {
		d.err = loaded.err.Error()
		return nil
	}
	d.err = ""
	d.notes = loaded.notes
	return nil
}

func (m *Model) handleDetails(msg tea.Msg) (bool, tea.Cmd) {
	if m.details == nil {
		m.mode = ModeGrid
		return false, nil
	}
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return true, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			m.details = nil
			m.mode = ModeGrid
		case "n":
			if err := m.addNote(m.details.order); err != nil {
				m.setError(err)
			}
		case "ctrl+c":
			return true, tea.Quit
		}
		return true, nil
	}
	return false, nil
}

func (m *Model) renderDetails(width int) string {
	d := m.details
	if d == nil {
		return ""
	}
	o := d.order
	inner := max(width-4, 20)
	lines := []string{styles.Header.Render(o.Name)}
	for _, col := range orders.Columns() {
		text := o.Text(col)
		if col == orders.ColProgress {
			text = progressBar(o.Progress)
		}
		lines = append(lines, fmt.Sprintf("%-12s %s", orders.Title(col)+":", text))
	}
	lines = append(lines, "", styles.PromptLabel.Render("Notes"))
	switch {
	case d.loading:
		lines = append(lines, styles.Info.Render("loading..."))
	case d.err != "":
		lines = append(lines, styles.Error.Render(d.err))
	case len(d.notes) == 0:
		lines = append(lines, styles.Empty.Render("no notes yet"))
	default:
		for _, n := range d.notes {
			stamp := n.Created.Local().Format("2006-01-02 15:04")
			lines = append(lines, wordwrap.String(stamp+"  "+n.Text, inner))
		}
	}
	lines = append(lines, "", styles.Footer.Render("n add note · esc close"))
	return strings.Join(lines, "\n")
}

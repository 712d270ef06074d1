package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/orders"
	"github.com/atomicstack/gridmenu/internal/ui/command"
	uistate "github.com/atomicstack/gridmenu/internal/ui/state"
	"github.com/atomicstack/gridmenu/internal/views"
)

func (m *Model) handleForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeGrid
		return false, nil
	}
	switch msg.(type) {
	case tea.KeyMsg:
	case tea.MouseMsg:
		return true, nil
	default:
		// Cursor blinks and the like still reach the input.
		cmd, _, _ := m.form.Update(msg)
		return false, cmd
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		return true, m.withPrompt(nil)
	}
	if done {
		form := m.form
		return true, m.withPrompt(func() promptResult {
			return m.submitForm(form)
		})
	}
	return true, cmd
}

// submitForm applies a completed prompt according to the action that asked
// for it.
func (m *Model) submitForm(f *uistate.Form) promptResult {
	value := f.Value()
	switch f.ActionID() {
	case actionEditRow, actionAssign, actionEditCell, actionBulkUpdate:
		return m.saveField(f.Targets(), f.Column(), value)
	case actionStatus:
		status, err := orders.ParseStatus(value)
		if err != nil {
			return promptResult{Err: err}
		}
		return m.saveField(f.Targets(), orders.ColStatus, status)
	case actionDeleteRow:
		if !confirmed(value) {
			return promptResult{Info: "Delete cancelled"}
		}
		return m.deleteTargets(f.Targets())
	case actionAddNote:
		return m.saveNote(f.Targets(), value)
	case actionFilter:
		n, err := m.grid.SetFilter(f.Column(), value)
		if err != nil {
			return promptResult{Err: err}
		}
		if value == "" {
			return promptResult{Info: "Filter cleared"}
		}
		return promptResult{Info: fmt.Sprintf("%s match %q", plural(n, "row"), value)}
	case actionResize:
		width, err := strconv.Atoi(value)
		if err != nil {
			return promptResult{Err: fmt.Errorf("parse width %q: %w", value, err)}
		}
		return promptResult{Err: m.grid.ResizeColumn(f.Column(), width)}
	case actionSaveView:
		return m.storeView(value)
	default:
		return promptResult{Err: fmt.Errorf("unhandled prompt %q", f.ActionID())}
	}
}

func confirmed(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// lookup resolves keys against the latest snapshot.
func (m *Model) lookup(keys []string) ([]orders.Order, error) {
	rows := make([]orders.Order, 0, len(keys))
	for _, key := range keys {
		o, ok := m.orders.Find(key)
		if !ok {
			return nil, fmt.Errorf("order %s no longer exists", key)
		}
		rows = append(rows, o)
	}
	return rows, nil
}

// saveField sets column to value on every target and persists the result.
// Locked targets are skipped; nothing is written if any value fails to
// parse.
func (m *Model) saveField(keys []string, column, value string) promptResult {
	if m.service == nil {
		return promptResult{Err: errNoService}
	}
	rows, err := m.lookup(keys)
	if err != nil {
		return promptResult{Err: err}
	}
	updated := make([]orders.Order, 0, len(rows))
	var errs []error
	skipped := 0
	for _, o := range rows {
		if o.Locked {
			skipped++
			continue
		}
		if err := o.Set(column, value); err != nil {
			errs = append(errs, err)
			continue
		}
		updated = append(updated, o)
	}
	if err := errors.Join(errs...); err != nil {
		return promptResult{Err: err}
	}
	if len(updated) == 0 {
		return promptResult{Info: fmt.Sprintf("Nothing to update: %s locked", plural(skipped, "order"))}
	}
	info := fmt.Sprintf("Updated %s of %s", orders.Title(column), plural(len(updated), "order"))
	if skipped > 0 {
		info += fmt.Sprintf(", skipped %d locked", skipped)
	}
	svc := m.service
	m.queue(command.Request{
		ID:    "save-" + column,
		Label: "Saving " + plural(len(updated), "order"),
		Run: func(ctx context.Context) (string, error) {
			return info, svc.Save(ctx, updated...)
		},
		Refresh: true,
	})
	return promptResult{}
}

func (m *Model) deleteTargets(keys []string) promptResult {
	if m.service == nil {
		return promptResult{Err: errNoService}
	}
	svc := m.service
	m.queue(command.Request{
		ID:    actionDeleteRow,
		Label: "Deleting " + strings.Join(keys, ", "),
		Run: func(ctx context.Context) (string, error) {
			if err := svc.Delete(ctx, keys...); err != nil {
				return "", err
			}
			return "Deleted " + strings.Join(keys, ", "), nil
		},
		Refresh: true,
	})
	return promptResult{}
}

func (m *Model) saveNote(keys []string, text string) promptResult {
	if m.service == nil {
		return promptResult{Err: errNoService}
	}
	if len(keys) != 1 {
		return promptResult{Err: errors.New("a note needs exactly one order")}
	}
	id := keys[0]
	svc := m.service
	m.queue(command.Request{
		ID:    actionAddNote,
		Label: "Adding note to " + id,
		Run: func(ctx context.Context) (string, error) {
			if err := svc.AddNote(ctx, id, text); err != nil {
				return "", err
			}
			return "Added note to " + id, nil
		},
	})
	return promptResult{}
}

func (m *Model) storeView(name string) promptResult {
	if m.service == nil {
		return promptResult{Err: errNoService}
	}
	v := views.Capture(name, m.grid)
	svc := m.service
	m.queue(command.Request{
		ID:    actionSaveView,
		Label: "Saving view " + name,
		Run: func(context.Context) (string, error) {
			path, err := svc.SaveView(v)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Saved view %s to %s", name, path), nil
		},
	})
	return promptResult{}
}

func (m *Model) openColumnChooser() {
	cols := m.grid.Columns()
	entries := make([]uistate.Entry, 0, len(cols))
	var visible []string
	for _, c := range cols {
		entries = append(entries, uistate.Entry{Key: c.Key, Label: c.Title})
		if !c.Hidden {
			visible = append(visible, c.Key)
		}
	}
	m.columns = uistate.NewChecklist("Visible columns", entries, visible)
	m.columns.MinChecked = 1
	m.mode = ModeColumns
}

func (m *Model) columnListHeight() int {
	return max(m.height-4, 1)
}

func (m *Model) handleColumns(msg tea.Msg) (bool, tea.Cmd) {
	if m.columns == nil {
		m.mode = ModeGrid
		return false, nil
	}
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return true, nil
	case tea.KeyMsg:
		rows := m.columnListHeight()
		switch msg.String() {
		case "up", "k":
			m.columns.MoveCursor(-1)
		case "down", "j":
			m.columns.MoveCursor(1)
		case "home", "g":
			m.columns.MoveCursorHome()
		case "end", "G":
			m.columns.MoveCursorEnd()
		case "pgup":
			m.columns.MoveCursorPageUp(rows)
		case "pgdown":
			m.columns.MoveCursorPageDown(rows)
		case " ", "x":
			if !m.columns.Toggle() {
				m.setInfo("At least one column must stay visible")
			}
		case "enter":
			m.applyColumnChoice()
		case "esc", "q":
			m.columns = nil
			m.mode = ModeGrid
		}
		if m.columns != nil {
			m.columns.EnsureCursorVisible(rows)
		}
		return true, nil
	}
	return false, nil
}

// applyColumnChoice shows the checked columns before hiding the rest, so a
// choice that swaps the only visible column never passes through zero.
func (m *Model) applyColumnChoice() {
	var errs []error
	for _, visible := range []bool{true, false} {
		for _, entry := range m.columns.Entries {
			if m.columns.IsChecked(entry.Key) != visible {
				continue
			}
			if err := m.grid.SetColumnVisible(entry.Key, visible); err != nil {
				errs = append(errs, err)
			}
		}
	}
	m.columns = nil
	m.mode = ModeGrid
	if err := errors.Join(errs...); err != nil {
		m.setError(err)
		return
	}
	m.setInfo(plural(len(m.grid.VisibleColumns()), "column") + " visible")
}

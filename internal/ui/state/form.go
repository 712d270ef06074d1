package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompt describes a single-line question asked of the user.
type Prompt struct {
	// ActionID is the menu item that asked for the value.
	ActionID    string
	Title       string
	Help        string
	Placeholder string
	Initial     string
	CharLimit   int
	// Targets lists the row keys the answer applies to.
	Targets []string
	Column  string
	// AllowEmpty lets an empty answer submit instead of cancelling.
	AllowEmpty bool
	Validate   func(string) error
}

// Form is the text input state behind a Prompt.
type Form struct {
	prompt Prompt
	input  textinput.Model
	err    string
}

// NewForm returns a focused form seeded with the prompt's initial value.
func NewForm(p Prompt) *Form {
	ti := textinput.New()
	ti.Placeholder = p.Placeholder
	ti.CharLimit = 128
	if p.CharLimit > 0 {
		ti.CharLimit = p.CharLimit
	}
	ti.Focus()
	if p.Initial != "" {
		ti.SetValue(p.Initial)
		ti.CursorEnd()
	}
	if p.Help == "" {
		p.Help = "Press Enter to apply. Esc to cancel."
	}
	return &Form{prompt: p, input: ti}
}

func (f *Form) Prompt() Prompt    { return f.prompt }
func (f *Form) ActionID() string  { return f.prompt.ActionID }
func (f *Form) Title() string     { return f.prompt.Title }
func (f *Form) Help() string      { return f.prompt.Help }
func (f *Form) Targets() []string { return f.prompt.Targets }
func (f *Form) Column() string    { return f.prompt.Column }
func (f *Form) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *Form) InputView() string { return f.input.View() }
func (f *Form) Error() string     { return f.err }

// Update feeds msg to the input. done reports a valid submission, cancel
// an escape or an empty submission on a prompt that needs a value.
func (f *Form) Update(msg tea.Msg) (cmd tea.Cmd, done, cancel bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = ""
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" && !f.prompt.AllowEmpty {
				return nil, false, true
			}
			if f.prompt.Validate != nil {
				if err := f.prompt.Validate(value); err != nil {
					f.err = err.Error()
					return nil, false, false
				}
			}
			f.err = ""
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

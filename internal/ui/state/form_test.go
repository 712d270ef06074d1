package state

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(f *Form, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFormSubmitsTrimmedValue(t *testing.T) {
	f := NewForm(Prompt{ActionID: "add-note", Title: "Add note"})
	typeInto(f, " needs review ")
	_, done, cancel := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done || cancel {
		t.Fatalf("expected submission, got done=%v cancel=%v", done, cancel)
	}
	if f.Value() != "needs review" {
		t.Fatalf("expected trimmed value, got %q", f.Value())
	}
}

func TestFormEscapeCancels(t *testing.T) {
	f := NewForm(Prompt{Initial: "x"})
	if _, done, cancel := f.Update(tea.KeyMsg{Type: tea.KeyEsc}); done || !cancel {
		t.Fatalf("expected escape to cancel")
	}
}

func TestFormEmptySubmission(t *testing.T) {
	f := NewForm(Prompt{})
	if _, _, cancel := f.Update(tea.KeyMsg{Type: tea.KeyEnter}); !cancel {
		t.Fatalf("expected empty submission to cancel")
	}
	f = NewForm(Prompt{AllowEmpty: true})
	if _, done, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter}); !done {
		t.Fatalf("expected empty submission to be accepted")
	}
}

func TestFormValidation(t *testing.T) {
	f := NewForm(Prompt{Initial: "abc", Validate: func(s string) error {
		if s == "abc" {
			return errors.New("pick another")
		}
		return nil
	}})
	if _, done, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter}); done {
		t.Fatalf("expected validation to block submission")
	}
	if f.Error() != "pick another" {
		t.Fatalf("expected validation error, got %q", f.Error())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if f.Value() != "" || f.Error() != "" {
		t.Fatalf("expected ctrl+u to clear value and error")
	}
	typeInto(f, "xyz")
	if _, done, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter}); !done {
		t.Fatalf("expected valid submission")
	}
}

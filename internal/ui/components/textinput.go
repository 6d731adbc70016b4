package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for free-form answers. After Submit
// it appends a pass/fail mark next to the frozen value.
type TextInput struct {
	Model textinput.Model

	submitted bool
	correct   bool
}

// NewTextInput creates a focused input with the given placeholder.
// maxLen caps the entry length; zero means unlimited.
func NewTextInput(placeholder string, maxLen int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = maxLen
	ti.Focus()
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	if !t.correct {
		mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view + " " + mark
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit freezes the input and records whether the answer was correct.
func (t *TextInput) Submit(correct bool) {
	t.submitted = true
	t.correct = correct
}

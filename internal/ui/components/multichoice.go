package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice presents a question with selectable options. Options can
// be picked with the cursor, or directly by letter or 1-based number.
// After submission the component locks and recolors to show the correct
// option against the chosen one.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if i := m.optionFor(key); i >= 0 {
			m.Selected = i
			m.Submitted = true
			m.ChosenIndex = i
		}
	}

	return m, nil
}

// optionFor maps a key press to an option index: "a".."f" or "1".."9",
// -1 when the key selects nothing.
func (m MultiChoice) optionFor(key string) int {
	if len(key) != 1 {
		return -1
	}
	c := key[0]
	var i int
	switch {
	case c >= 'a' && c <= 'f':
		i = int(c - 'a')
	case c >= '1' && c <= '9':
		i = int(c - '1')
	default:
		return -1
	}
	if i >= len(m.Options) {
		return -1
	}
	return i
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Selected && !m.Submitted {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", cursor, choiceLabels[i%len(choiceLabels)], opt)
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if !m.Submitted {
		if i == m.Selected {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
	switch i {
	case m.CorrectIndex:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case m.ChosenIndex:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

// ChosenOption returns the text of the submitted choice, or "".
func (m MultiChoice) ChosenOption() string {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

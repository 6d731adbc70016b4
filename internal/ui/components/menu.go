package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/ui/theme"
)

// MenuItem is one entry in a Menu. Disabled items render dimmed and are
// skipped by cursor movement.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu driven by up/down/enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// move returns the cursor position after stepping in dir, skipping
// disabled items. The cursor stays put when nothing enabled remains in
// that direction.
func (m Menu) move(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.move(-1)
	case "down", "j":
		m.Selected = m.move(1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		var style lipgloss.Style
		line := "    " + item.Label
		switch {
		case item.Disabled:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line = "  ▸ " + item.Label
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

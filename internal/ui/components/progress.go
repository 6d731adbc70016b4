package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/ui/theme"
)

// ProgressBar renders quiz progress as a single line: optional label,
// the bar itself, optional percentage.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6 // room for "  100%"
	}
	barWidth := p.Width - reserved
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*p.Percent + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("░", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}

package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/ui/theme"
)

// Below these dimensions the frame degrades into overlap, so the app
// shows a resize prompt instead.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func chrome(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the top bar: brand on the left, the screen title
// centered, session status on the right.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Learnloop")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	// Center the title against the full inner width, then pad the
	// sides out around it.
	pad := func(n int) string {
		if n < 1 {
			n = 1
		}
		return strings.Repeat(" ", n)
	}
	leftGap := (inner-lipgloss.Width(center))/2 - lipgloss.Width(brand)
	rightGap := inner - lipgloss.Width(brand) - max(leftGap, 1) -
		lipgloss.Width(center) - lipgloss.Width(right)

	return chrome(width).Render(brand + pad(leftGap) + center + pad(rightGap) + right)
}

// RenderFooter draws the bottom bar of key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return chrome(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content stretched to the leftover height,
// and footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

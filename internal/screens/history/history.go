package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/router"
	"github.com/abhisek/learnloop/internal/screen"
	"github.com/abhisek/learnloop/internal/store"
	"github.com/abhisek/learnloop/internal/ui/layout"
	"github.com/abhisek/learnloop/internal/ui/theme"
)

const maxEntries = 50

type loadedMsg struct {
	entries []store.SessionSummary
	err     error
}

// HistoryScreen lists past sessions reconstructed from the journal,
// newest first.
type HistoryScreen struct {
	repo    store.EventRepo
	entries []store.SessionSummary
	cursor  int
	loaded  bool
	loadErr string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(repo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.repo.SessionSummaries(context.Background(), maxEntries)
		return loadedMsg{entries: entries, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.loadErr = msg.err.Error()
			return s, nil
		}
		s.entries = msg.entries
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.entries)-1 {
				s.cursor++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if notice := s.notice(); notice != "" {
		style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
		if s.loadErr != "" {
			style = style.Foreground(theme.Error)
		} else {
			style = style.Foreground(theme.TextDim).Italic(true)
		}
		return style.Render("\n\n" + notice)
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, e := range s.entries {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(s.entryLine(i, e))))
		b.WriteString("\n")
	}
	return b.String()
}

// notice returns the full-screen message to show instead of the list,
// or "" when there are entries to render.
func (s *HistoryScreen) notice() string {
	switch {
	case s.loadErr != "":
		return "Error: " + s.loadErr
	case !s.loaded:
		return "  Loading history..."
	case len(s.entries) == 0:
		return "  No sessions yet. Start learning!"
	}
	return ""
}

func (s *HistoryScreen) entryLine(i int, e store.SessionSummary) string {
	prefix := "  "
	if i == s.cursor {
		prefix = "> "
	}

	when := e.StartedAt.Format("Jan 02, 2006")
	dur := fmt.Sprintf("%d:%02d", e.DurationSecs/60, e.DurationSecs%60)

	// Lessons have no questions to score.
	if e.Kind == "lesson" {
		return fmt.Sprintf("%s%s  %s  lesson: %s / %s  %s",
			prefix, when, dur, e.Subject, e.Topic, statusLabel(e.LastAction))
	}
	return fmt.Sprintf("%s%s  %s  %s: %s / %s  %d questions  %.0f%% accuracy  %s",
		prefix, when, dur, e.Kind, e.Subject, e.Topic,
		e.QuestionsAttempted, e.AccuracyRate(), statusLabel(e.LastAction))
}

// statusLabel maps the journal's last lifecycle action to the state the
// session was left in.
func statusLabel(action string) string {
	switch action {
	case "end":
		return "completed"
	case "pause":
		return "paused"
	default:
		return "active"
	}
}

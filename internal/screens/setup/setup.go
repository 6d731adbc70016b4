package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/router"
	"github.com/abhisek/learnloop/internal/screen"
	sessionscreen "github.com/abhisek/learnloop/internal/screens/session"
	"github.com/abhisek/learnloop/internal/session"
	"github.com/abhisek/learnloop/internal/ui/components"
	"github.com/abhisek/learnloop/internal/ui/layout"
	"github.com/abhisek/learnloop/internal/ui/theme"
)

// Wizard steps, in order.
const (
	stepKind = iota
	stepSubject
	stepTopic
	stepDifficulty
	stepGenerating
)

var difficultyChoices = []struct {
	label string
	score float64
}{
	{"Beginner", 0.2},
	{"Intermediate", 0.5},
	{"Advanced", 0.8},
}

// createdMsg is delivered when session creation finishes.
type createdMsg struct {
	session   *session.LearningSession
	integrity *content.DataIntegrityError
	err       error
}

// SetupScreen walks the learner through configuring a new session.
type SetupScreen struct {
	ctrl *session.Controller

	step       int
	kindMenu   components.Menu
	diffMenu   components.Menu
	subject    components.TextInput
	topic      components.TextInput
	kind       session.Kind
	difficulty float64
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(ctrl *session.Controller) *SetupScreen {
	s := &SetupScreen{ctrl: ctrl}

	s.kindMenu = components.NewMenu([]components.MenuItem{
		{Label: "Quiz", Action: s.pickKind(session.KindQuiz)},
		{Label: "Lesson", Action: s.pickKind(session.KindLesson)},
		{Label: "Practice", Action: s.pickKind(session.KindPractice)},
	})

	diffItems := make([]components.MenuItem, len(difficultyChoices))
	for i, dc := range difficultyChoices {
		score := dc.score
		diffItems[i] = components.MenuItem{Label: dc.label, Action: func() tea.Cmd {
			return s.pickDifficulty(score)
		}}
	}
	s.diffMenu = components.NewMenu(diffItems)

	s.subject = components.NewTextInput("e.g. mathematics", 60)
	s.topic = components.NewTextInput("e.g. fractions", 60)

	return s
}

func (s *SetupScreen) pickKind(k session.Kind) func() tea.Cmd {
	return func() tea.Cmd {
		s.kind = k
		s.step = stepSubject
		return s.subject.Init()
	}
}

func (s *SetupScreen) pickDifficulty(score float64) tea.Cmd {
	s.difficulty = score
	s.step = stepGenerating
	s.errMsg = ""
	return s.generate()
}

func (s *SetupScreen) generate() tea.Cmd {
	params := session.CreateParams{
		Kind:       s.kind,
		Subject:    strings.TrimSpace(s.subject.Value()),
		Topic:      strings.TrimSpace(s.topic.Value()),
		Difficulty: s.difficulty,
	}
	ctrl := s.ctrl
	return func() tea.Msg {
		sess, integrity, err := ctrl.CreateSession(context.Background(), params)
		return createdMsg{session: sess, integrity: integrity, err: err}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case createdMsg:
		if msg.err != nil {
			// Generation failed: no session was created. Back to the
			// difficulty step so the learner can retry.
			s.step = stepDifficulty
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: sessionscreen.New(s.ctrl, msg.integrity),
			}
		}

	case tea.KeyMsg:
		switch s.step {
		case stepKind:
			var cmd tea.Cmd
			s.kindMenu, cmd = s.kindMenu.Update(msg)
			return s, cmd

		case stepSubject:
			if msg.String() == "enter" {
				if strings.TrimSpace(s.subject.Value()) == "" {
					return s, nil
				}
				s.step = stepTopic
				return s, s.topic.Init()
			}
			var cmd tea.Cmd
			s.subject, cmd = s.subject.Update(msg)
			return s, cmd

		case stepTopic:
			if msg.String() == "enter" {
				if strings.TrimSpace(s.topic.Value()) == "" {
					return s, nil
				}
				s.step = stepDifficulty
				return s, nil
			}
			var cmd tea.Cmd
			s.topic, cmd = s.topic.Update(msg)
			return s, cmd

		case stepDifficulty:
			var cmd tea.Cmd
			s.diffMenu, cmd = s.diffMenu.Update(msg)
			return s, cmd
		}
	}

	return s, nil
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	prompt := theme.Body.Bold(true)

	switch s.step {
	case stepKind:
		b.WriteString(prompt.Render("What kind of session?"))
		b.WriteString("\n\n")
		b.WriteString(s.kindMenu.View())

	case stepSubject:
		b.WriteString(prompt.Render("What subject?"))
		b.WriteString("\n\n")
		b.WriteString(s.subject.View())

	case stepTopic:
		b.WriteString(prompt.Render(fmt.Sprintf("Which topic in %s?", strings.TrimSpace(s.subject.Value()))))
		b.WriteString("\n\n")
		b.WriteString(s.topic.View())

	case stepDifficulty:
		b.WriteString(prompt.Render("How hard should it be?"))
		b.WriteString("\n\n")
		b.WriteString(s.diffMenu.View())
		if s.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(theme.Incorrect.Render("Could not generate content: " + s.errMsg))
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Pick a difficulty to try again."))
		}

	case stepGenerating:
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
			"Preparing your %s on %s...", s.kind, strings.TrimSpace(s.topic.Value()))))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepSubject, stepTopic:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case stepGenerating:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

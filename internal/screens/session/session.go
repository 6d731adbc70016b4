package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/router"
	"github.com/abhisek/learnloop/internal/screen"
	"github.com/abhisek/learnloop/internal/screens/summary"
	"github.com/abhisek/learnloop/internal/session"
	"github.com/abhisek/learnloop/internal/ui/components"
	"github.com/abhisek/learnloop/internal/ui/layout"
	"github.com/abhisek/learnloop/internal/ui/theme"
)

// resumedMsg is delivered when a paused session has been reactivated.
type resumedMsg struct {
	err error
}

// SessionScreen drives a session: question loop for quizzes and
// practice, reader for lessons.
type SessionScreen struct {
	ctrl *session.Controller

	// resumeID is set when this screen should reactivate a paused
	// session on Init instead of using the already-active one.
	resumeID string

	integrity *content.DataIntegrityError

	input       components.TextInput
	choice      components.MultiChoice
	questionAt  time.Time
	result      *session.AnswerResult
	lessonPage  int
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscHandler = (*SessionScreen)(nil)

// New creates a screen for the controller's active session.
func New(ctrl *session.Controller, integrity *content.DataIntegrityError) *SessionScreen {
	return &SessionScreen{ctrl: ctrl, integrity: integrity}
}

// Resume creates a screen that reactivates the given paused session.
func Resume(ctrl *session.Controller, id string) *SessionScreen {
	return &SessionScreen{ctrl: ctrl, resumeID: id}
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.resumeID != "" {
		ctrl, id := s.ctrl, s.resumeID
		return func() tea.Msg {
			_, err := ctrl.Resume(context.Background(), id)
			return resumedMsg{err: err}
		}
	}
	s.prepareQuestion()
	return nil
}

// prepareQuestion resets the input widgets for the current question
// and starts the latency clock.
func (s *SessionScreen) prepareQuestion() {
	sess := s.ctrl.Active()
	if sess == nil || !sess.HasQuestions() {
		return
	}
	q := sess.CurrentQuestion()
	if q == nil {
		return
	}

	s.result = nil
	s.questionAt = time.Now()
	if q.IsMultipleChoice() {
		s.choice = components.NewMultiChoice(q.Prompt, q.Options, correctIndex(*q))
	} else {
		s.input = components.NewTextInput("your answer", 80)
	}
}

func correctIndex(q content.Question) int {
	for i, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(q.CorrectAnswer)) {
			return i
		}
	}
	return -1
}

// HandleEsc pauses an in-progress session before leaving the screen.
func (s *SessionScreen) HandleEsc() tea.Cmd {
	sess := s.ctrl.Active()
	if sess != nil && sess.Status == session.StatusActive {
		if err := s.ctrl.Pause(context.Background()); err != nil {
			s.errMsg = err.Error()
		}
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.resumeID = ""
		s.prepareQuestion()
		return s, nil

	case tea.KeyMsg:
		sess := s.ctrl.Active()
		if sess == nil {
			return s, nil
		}
		if sess.Kind == session.KindLesson {
			return s.updateLesson(msg, sess)
		}
		return s.updateQuiz(msg, sess)
	}

	return s, nil
}

func (s *SessionScreen) updateQuiz(msg tea.KeyMsg, sess *session.LearningSession) (screen.Screen, tea.Cmd) {
	// Showing feedback: enter advances.
	if s.result != nil {
		if msg.String() == "enter" {
			if err := s.ctrl.Advance(context.Background()); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			if sess.Status == session.StatusCompleted {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: summary.New(sess)}
				}
			}
			s.prepareQuestion()
		}
		return s, nil
	}

	q := sess.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	if q.IsMultipleChoice() {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			s.submit(s.choice.ChosenOption())
		}
		return s, cmd
	}

	if msg.String() == "enter" {
		answer := strings.TrimSpace(s.input.Value())
		if answer == "" {
			return s, nil
		}
		s.submit(answer)
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submit(answer string) {
	latency := time.Since(s.questionAt)
	result, err := s.ctrl.SubmitAnswer(context.Background(), answer, latency)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.result = result
	s.input.Submit(result.Correct)
}

func (s *SessionScreen) updateLesson(msg tea.KeyMsg, sess *session.LearningSession) (screen.Screen, tea.Cmd) {
	pages := lessonPages(sess.Lesson)

	switch msg.String() {
	case "enter", "right", "l":
		if s.lessonPage+1 < len(pages) {
			s.lessonPage++
			return s, nil
		}
		// Last page: finish the lesson.
		if err := s.ctrl.CompleteLesson(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sess)}
		}
	case "left", "h":
		if s.lessonPage > 0 {
			s.lessonPage--
		}
	}
	return s, nil
}

func (s *SessionScreen) View(width, height int) string {
	sess := s.ctrl.Active()
	if sess == nil {
		if s.resumeID != "" {
			return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
				theme.Subtitle.Render("Resuming session..."))
		}
		return ""
	}

	if sess.Kind == session.KindLesson {
		return s.viewLesson(sess, width, height)
	}
	return s.viewQuiz(sess, width, height)
}

func (s *SessionScreen) viewQuiz(sess *session.LearningSession, width, height int) string {
	var b strings.Builder

	// Progress line.
	total := len(sess.Questions)
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", sess.CurrentIndex+1, total),
		float64(sess.QuestionsAttempted)/float64(total),
		false,
		min(width-8, 60),
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if s.integrity != nil {
		b.WriteString(theme.Hint.Render(fmt.Sprintf(
			"Note: %d generated question(s) were unusable and skipped.", s.integrity.Dropped)))
		b.WriteString("\n\n")
	}

	q := sess.CurrentQuestion()
	if q == nil {
		return b.String()
	}

	if q.IsMultipleChoice() {
		b.WriteString(s.choice.View())
	} else {
		b.WriteString(theme.Body.Bold(true).Render(q.Prompt))
		b.WriteString("\n\n")
		b.WriteString(s.input.View())
	}

	if s.result != nil {
		b.WriteString("\n\n")
		if s.result.Correct {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
			b.WriteString("\n")
			b.WriteString(theme.Body.Render("Answer: " + s.result.CorrectAnswer))
		}
		if s.result.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render(s.result.Explanation))
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// lessonPages splits a lesson into screen-sized pages: intro, one per
// concept, examples, summary.
func lessonPages(l *content.Lesson) []string {
	if l == nil {
		return nil
	}

	pages := []string{
		theme.Title.Render(l.Title) + "\n\n" + theme.Body.Render(l.Introduction),
	}
	for _, c := range l.KeyConcepts {
		pages = append(pages,
			theme.Body.Bold(true).Render(c.Name)+"\n\n"+theme.Body.Render(c.Explanation))
	}
	if len(l.Examples) > 0 {
		var b strings.Builder
		b.WriteString(theme.Body.Bold(true).Render("Examples"))
		for _, ex := range l.Examples {
			b.WriteString("\n\n")
			b.WriteString(theme.Body.Render("  " + ex))
		}
		pages = append(pages, b.String())
	}
	if l.Summary != "" {
		pages = append(pages, theme.Body.Bold(true).Render("Summary")+"\n\n"+theme.Body.Render(l.Summary))
	}
	return pages
}

func (s *SessionScreen) viewLesson(sess *session.LearningSession, width, height int) string {
	pages := lessonPages(sess.Lesson)
	if len(pages) == 0 {
		return ""
	}
	if s.lessonPage >= len(pages) {
		s.lessonPage = len(pages) - 1
	}

	var b strings.Builder
	b.WriteString(pages[s.lessonPage])
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Page %d of %d (about %d min)",
		s.lessonPage+1, len(pages), sess.Lesson.EstimatedMinutes)))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	content := lipgloss.NewStyle().Width(min(width-8, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SessionScreen) Title() string {
	sess := s.ctrl.Active()
	if sess == nil {
		return "Session"
	}
	kind := string(sess.Kind)
	if kind != "" {
		kind = strings.ToUpper(kind[:1]) + kind[1:]
	}
	return fmt.Sprintf("%s: %s", kind, sess.Topic)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	sess := s.ctrl.Active()
	if sess != nil && sess.Kind == session.KindLesson {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next page"},
			{Key: "←", Description: "Previous"},
			{Key: "Esc", Description: "Pause"},
		}
	}
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Pause"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Pause"},
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/router"
	"github.com/abhisek/learnloop/internal/screen"
	"github.com/abhisek/learnloop/internal/screens/home"
	"github.com/abhisek/learnloop/internal/session"
	"github.com/abhisek/learnloop/internal/store"
	"github.com/abhisek/learnloop/internal/ui/layout"
)

// Options carries the app's dependencies from cmd wiring.
type Options struct {
	Controller *session.Controller
	EventRepo  store.EventRepo
}

// Model is the root Bubble Tea model: a screen router framed by the
// shared header and footer chrome.
type Model struct {
	nav    *router.Router
	ctrl   *session.Controller
	width  int
	height int
}

func newModel(opts Options) Model {
	return Model{
		nav:  router.New(home.New(opts.Controller, opts.EventRepo)),
		ctrl: opts.Controller,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.globalKey(msg); handled {
			return m, cmd
		}
	}

	return m, m.nav.Update(msg)
}

// globalKey handles keys the app owns regardless of the active screen.
func (m Model) globalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "esc":
		if m.nav.Depth() <= 1 {
			return true, nil
		}
		// Screens with cleanup (e.g. pausing a running session)
		// intercept the pop.
		if h, ok := m.nav.Active().(screen.EscHandler); ok {
			return true, h.HandleEsc()
		}
		return true, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return false, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.nav.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.nav.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// footerHints asks the active screen for its hints, falling back to
// stack-depth defaults.
func (m Model) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.nav.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// headerStatus summarizes the active session for the header bar.
func (m Model) headerStatus() string {
	s := m.ctrl.Active()
	if s == nil || !s.HasQuestions() {
		return ""
	}
	return fmt.Sprintf("%d/%d correct", s.QuestionsCorrect, s.QuestionsAttempted)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newModel(opts)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	// Let in-flight sync pushes finish before the process exits.
	opts.Controller.Shutdown()
	return nil
}

package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnloop/internal/router"
	"github.com/abhisek/learnloop/internal/screen"
	"github.com/abhisek/learnloop/internal/screens/history"
	sessionscreen "github.com/abhisek/learnloop/internal/screens/session"
	"github.com/abhisek/learnloop/internal/screens/setup"
	"github.com/abhisek/learnloop/internal/session"
	"github.com/abhisek/learnloop/internal/store"
	"github.com/abhisek/learnloop/internal/ui/components"
	"github.com/abhisek/learnloop/internal/ui/theme"
)

const banner = `
 _                           _
| | ___  __ _ _ __ _ __  ___| | ___   ___  _ __
| |/ _ \/ _' | '__| '_ \/ __| |/ _ \ / _ \| '_ \
| |  __/ (_| | |  | | | \__ \ | (_) | (_) | |_) |
|_|\___|\__,_|_|  |_| |_|___/_|\___/ \___/| .__/
                                          |_|    `

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	ctrl   *session.Controller
	events store.EventRepo
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(ctrl *session.Controller, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{ctrl: ctrl, events: events}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	paused := h.pausedSession()

	items := []components.MenuItem{
		{Label: "New Session", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(h.ctrl)}
			}
		}},
		{Label: "Resume Session", Disabled: paused == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.Resume(h.ctrl, paused.ID)}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.events)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return items
}

// pausedSession returns the most recent paused session, or nil.
func (h *HomeScreen) pausedSession() *session.LearningSession {
	for _, s := range h.ctrl.Sessions() {
		if s.Status == session.StatusPaused {
			return s
		}
	}
	return nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Rebuild the menu on every keypress so the Resume entry tracks
	// pause state as the learner moves between screens.
	if _, ok := msg.(tea.KeyMsg); ok {
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.buildItems())
		h.menu.Selected = selected
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(banner))

	sections = append(sections, theme.Subtitle.Render("Your terminal study companion"))

	if paused := h.pausedSession(); paused != nil {
		note := fmt.Sprintf("Paused: %s / %s (%d of %d answered)",
			paused.Subject, paused.Topic, paused.QuestionsAttempted, len(paused.Questions))
		sections = append(sections, theme.Hint.Render(note))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

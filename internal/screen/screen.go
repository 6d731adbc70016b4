package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnloop/internal/ui/layout"
)

// Screen is one view in the router stack. Screens render only their
// content area; the app model draws the surrounding header and footer.
type Screen interface {
	// Init runs when the screen enters the stack.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the
	// stack, which may be the receiver or a replacement.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area at the given size.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer
// instead of the stack-depth defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscHandler lets a screen take over the esc key, typically to run
// cleanup such as pausing a live session before leaving. The returned
// command replaces the default pop.
type EscHandler interface {
	HandleEsc() tea.Cmd
}

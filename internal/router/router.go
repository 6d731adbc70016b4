package router

import (
	"github.com/abhisek/learnloop/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// Navigation messages. Screens emit these instead of touching the
// router directly, so any screen can navigate from inside a tea.Cmd.
type (
	// PushScreenMsg stacks a new screen on top.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg removes the top screen.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the top screen without growing the stack,
	// e.g. a finished session handing off to its summary.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router owns the screen stack. The bottom screen never pops.
type Router struct {
	stack []screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Active returns the screen on top, nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Push stacks s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen, keeping at least one on the stack.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Update routes navigation messages to the stack and everything else
// to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}

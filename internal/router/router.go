package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/study"
)

// PushScreenMsg requests the router to push an overlay screen.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the top overlay.
type PopScreenMsg struct{}

// Router holds one screen per tab plus a stack of overlays (help) drawn
// over whichever tab is selected. Tab screens live for the whole run, so
// switching tabs never resets them.
type Router struct {
	tabs     map[study.Tab]screen.Screen
	overlays []screen.Screen
}

// New creates a Router with the given tab screens.
func New(tabs map[study.Tab]screen.Screen) *Router {
	return &Router{tabs: tabs}
}

// Init initializes every tab screen.
func (r *Router) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.tabs))
	for _, s := range r.tabs {
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

// Push adds an overlay on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.overlays = append(r.overlays, s)
	return s.Init()
}

// Pop removes the top overlay. No-op when there is none.
func (r *Router) Pop() tea.Cmd {
	if len(r.overlays) == 0 {
		return nil
	}
	r.overlays = r.overlays[:len(r.overlays)-1]
	return nil
}

// Depth returns the number of overlays.
func (r *Router) Depth() int {
	return len(r.overlays)
}

// Active returns the top overlay, or the screen for tab.
func (r *Router) Active(tab study.Tab) screen.Screen {
	if n := len(r.overlays); n > 0 {
		return r.overlays[n-1]
	}
	return r.tabs[tab]
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(tab study.Tab, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	if n := len(r.overlays); n > 0 {
		updated, cmd := r.overlays[n-1].Update(msg)
		r.overlays[n-1] = updated
		return cmd
	}

	active, ok := r.tabs[tab]
	if !ok {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.tabs[tab] = updated
	return cmd
}

// Broadcast sends msg to every tab screen, e.g. window resizes.
func (r *Router) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for tab, s := range r.tabs {
		updated, cmd := s.Update(msg)
		r.tabs[tab] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the active screen.
func (r *Router) View(tab study.Tab, width, height int) string {
	active := r.Active(tab)
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

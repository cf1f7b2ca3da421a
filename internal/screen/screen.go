package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnkit/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header, tabs and footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// LayoutMsg gives tab screens the size of the content area and the active
// theme. The shell broadcasts it on every resize and theme change.
type LayoutMsg struct {
	Width  int
	Height int
	Dark   bool
}

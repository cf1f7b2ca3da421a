package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnkit/internal/study"
)

// Screens never mutate study state. They return one of these messages as
// a command and the shell applies it.

type (
	StartTimerMsg struct{}
	StopTimerMsg  struct{}
	ResetTimerMsg struct{}

	NextCardMsg     struct{}
	PreviousCardMsg struct{}
	FlipCardMsg     struct{}
	GoToCardMsg     struct{ Index int }

	SwitchTabMsg   struct{ Tab study.Tab }
	ToggleThemeMsg struct{}
)

// Send wraps msg in a command.
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

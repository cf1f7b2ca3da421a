// Package keys defines the key bindings shared by the shell and screens.
package keys

import "charm.land/bubbles/v2/key"

// KeyMap holds every binding the UI reacts to.
type KeyMap struct {
	Quit          key.Binding
	Help          key.Binding
	Back          key.Binding
	NextTab       key.Binding
	PomodoroTab   key.Binding
	FlashcardsTab key.Binding
	Theme         key.Binding

	Start key.Binding
	Stop  key.Binding
	Reset key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	Flip     key.Binding
	Previous key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
}

// Default returns the standard bindings.
func Default() KeyMap {
	return KeyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NextTab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		PomodoroTab:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "pomodoro")),
		FlashcardsTab: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "flashcards")),
		Theme:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "theme")),

		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Stop:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "stop")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),

		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Flip:     key.NewBinding(key.WithKeys("space", "enter", "f"), key.WithHelp("space", "flip")),
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	}
}

// Global returns the bindings handled by the shell on every tab.
func (k KeyMap) Global() []key.Binding {
	return []key.Binding{k.NextTab, k.Theme, k.Help, k.Quit}
}

// All returns every binding, for the help screen.
func (k KeyMap) All() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PomodoroTab, k.FlashcardsTab, k.Theme, k.Help, k.Back, k.Quit},
		{k.Start, k.Stop, k.Reset, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.Flip, k.Previous, k.Next, k.First, k.Last},
	}
}

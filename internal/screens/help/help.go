// Package help is the key reference overlay.
package help

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/router"
	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/study"
	"github.com/abhisek/learnkit/internal/ui/keys"
	"github.com/abhisek/learnkit/internal/ui/layout"
	"github.com/abhisek/learnkit/internal/ui/theme"
)

var sectionTitles = []string{"General", "Pomodoro", "Flashcards"}

// HelpScreen lists every key binding grouped by tab.
type HelpScreen struct {
	state study.Reader
	keys  keys.KeyMap
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New(state study.Reader, km keys.KeyMap) *HelpScreen {
	return &HelpScreen{state: state, keys: km}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(h.keys.Back)
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}
	if key.Matches(kmsg, h.keys.Back, h.keys.Help) {
		return h, screen.Send(router.PopScreenMsg{})
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	p := theme.For(h.state.Display().Dark)
	keyStyle := lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Width(12)

	var b strings.Builder
	b.WriteString(p.Title().Render("Keys"))
	for i, group := range h.keys.All() {
		b.WriteString("\n\n")
		if i < len(sectionTitles) {
			b.WriteString(p.Subtitle().Render(sectionTitles[i]))
		}
		for _, binding := range group {
			help := binding.Help()
			b.WriteString("\n")
			b.WriteString(keyStyle.Render(help.Key) + p.Body().Render(help.Desc))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		p.Card().Render(b.String()))
}

// Package flashcards is the flashcard tab: one question at a time, flipped
// to reveal its answer.
package flashcards

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/markdown"
	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/study"
	"github.com/abhisek/learnkit/internal/ui/components"
	"github.com/abhisek/learnkit/internal/ui/keys"
	"github.com/abhisek/learnkit/internal/ui/layout"
	"github.com/abhisek/learnkit/internal/ui/theme"
)

const maxCardWidth = 72

// FlashcardsScreen implements screen.Screen for the flashcards tab.
type FlashcardsScreen struct {
	state study.Reader
	keys  keys.KeyMap
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New creates a FlashcardsScreen reading from state.
func New(state study.Reader, km keys.KeyMap) *FlashcardsScreen {
	return &FlashcardsScreen{state: state, keys: km}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	prev, next := s.navBindings()
	return layout.HintsFor(s.keys.Flip, prev, next)
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	card := s.state.Card()
	if card.Count == 0 {
		return s, nil
	}

	prev, next := s.navBindings()
	switch {
	case key.Matches(kmsg, s.keys.Flip):
		return s, screen.Send(screen.FlipCardMsg{})
	case key.Matches(kmsg, prev):
		return s, screen.Send(screen.PreviousCardMsg{})
	case key.Matches(kmsg, next):
		return s, screen.Send(screen.NextCardMsg{})
	case key.Matches(kmsg, s.keys.First):
		if card.Index != 0 {
			return s, screen.Send(screen.GoToCardMsg{Index: 0})
		}
	case key.Matches(kmsg, s.keys.Last):
		if card.Index != card.Count-1 {
			return s, screen.Send(screen.GoToCardMsg{Index: card.Count - 1})
		}
	}
	return s, nil
}

// navBindings returns Previous and Next, each disabled at its end of the
// deck.
func (s *FlashcardsScreen) navBindings() (prev, next key.Binding) {
	card := s.state.Card()
	prev, next = s.keys.Previous, s.keys.Next
	prev.SetEnabled(card.CanPrevious)
	next.SetEnabled(card.CanNext)
	return prev, next
}

func (s *FlashcardsScreen) View(width, height int) string {
	p := theme.For(s.state.Display().Dark)
	card := s.state.Card()

	if card.Count == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			p.Hint().Render("This topic has no flashcards."))
	}

	cardWidth := width - 4
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}

	counter := p.Subtitle().Render("Card " + card.Position)

	face := components.Card{Heading: "Question", Body: card.Question.Question}
	if card.Flipped {
		face = components.Card{
			Heading: "Answer",
			Body:    answerBody(card),
			Flipped: true,
		}
	}

	prev, next := s.navBindings()
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewButton("Previous", prev).View(p), "  ",
		components.NewButton(flipLabel(card.Flipped), s.keys.Flip).View(p), "  ",
		components.NewButton("Next", next).View(p),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		counter,
		"",
		face.View(p, cardWidth),
		"",
		controls,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// answerBody highlights the answer when the question names a language the
// highlighter knows.
func answerBody(card study.Card) string {
	answer := strings.TrimRight(card.Question.Answer, "\n")
	if !markdown.KnownLanguage(card.Question.AnswerLanguage) {
		return answer
	}
	return markdown.Highlight(answer, card.Question.AnswerLanguage)
}

func flipLabel(flipped bool) string {
	if flipped {
		return "Show question"
	}
	return "Show answer"
}

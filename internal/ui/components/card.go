package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/ui/theme"
)

// Card is a bordered two-part block: a bold heading over a body. Flashcard
// faces use it; a flipped card gets the accent border.
type Card struct {
	Heading string
	Body    string
	Flipped bool
}

// View renders the card at the given outer width.
func (c Card) View(p theme.Palette, width int) string {
	style := p.Card()
	if c.Flipped {
		style = p.CardFlipped()
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Render(c.Heading)
	body := p.Body().Render(c.Body)
	return style.Width(width).Render(heading + "\n\n" + body)
}

// Package flashcard holds the position and flip state of a flashcard deck.
package flashcard

import "fmt"

// Navigator walks a fixed-length deck. It only tracks the index and which
// face is showing; the cards themselves live with the caller.
type Navigator struct {
	count   int
	index   int
	flipped bool
}

// New creates a Navigator over count cards, positioned on the first card
// with the front face showing.
func New(count int) *Navigator {
	if count < 0 {
		count = 0
	}
	return &Navigator{count: count}
}

// Next moves to the following card if there is one. The card is always
// turned back to its front face, even when already on the last card.
func (n *Navigator) Next() {
	if n.index < n.count-1 {
		n.index++
	}
	n.flipped = false
}

// Previous moves to the preceding card if there is one and turns the card
// to its front face.
func (n *Navigator) Previous() {
	if n.index > 0 {
		n.index--
	}
	n.flipped = false
}

// GoTo jumps to card i, clamped into the deck, front face showing.
func (n *Navigator) GoTo(i int) {
	switch {
	case n.count == 0 || i < 0:
		i = 0
	case i > n.count-1:
		i = n.count - 1
	}
	n.index = i
	n.flipped = false
}

// Flip turns the current card over.
func (n *Navigator) Flip() {
	n.flipped = !n.flipped
}

// CanPrevious reports whether Previous would move.
func (n *Navigator) CanPrevious() bool { return n.index > 0 }

// CanNext reports whether Next would move.
func (n *Navigator) CanNext() bool { return n.index < n.count-1 }

// Index returns the zero-based position.
func (n *Navigator) Index() int { return n.index }

// Flipped reports whether the back face is showing.
func (n *Navigator) Flipped() bool { return n.flipped }

// Count returns the deck size.
func (n *Navigator) Count() int { return n.count }

// Position renders the one-based position, e.g. "2 / 5".
func (n *Navigator) Position() string {
	if n.count == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", n.index+1, n.count)
}

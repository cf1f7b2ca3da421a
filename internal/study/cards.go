package study

// NextCard moves to the next flashcard, front face up.
func (s *Session) NextCard() { s.cards.Next() }

// PreviousCard moves to the previous flashcard, front face up.
func (s *Session) PreviousCard() { s.cards.Previous() }

// GoToCard jumps to card i, clamped into the deck.
func (s *Session) GoToCard(i int) { s.cards.GoTo(i) }

// FlipCard turns the current card over.
func (s *Session) FlipCard() { s.cards.Flip() }

// SetTab shows tab. Timer and cards are untouched.
func (s *Session) SetTab(t Tab) {
	if t != TabPomodoro && t != TabFlashcards {
		return
	}
	s.display.Tab = t
}

// ToggleDark flips the light/dark flag.
func (s *Session) ToggleDark() {
	s.display.Dark = !s.display.Dark
}

// Package study holds the state of one study run: the topic, the pomodoro
// timer, the flashcard position and the display flags. The view shell is
// its only writer; screens read it through Reader.
package study

import (
	"github.com/abhisek/learnkit/internal/flashcard"
	"github.com/abhisek/learnkit/internal/pomodoro"
	"github.com/abhisek/learnkit/internal/topic"
)

// Tab selects the visible view.
type Tab int

const (
	TabPomodoro Tab = iota
	TabFlashcards
)

func (t Tab) String() string {
	if t == TabFlashcards {
		return "flashcards"
	}
	return "pomodoro"
}

// Next returns the other tab.
func (t Tab) Next() Tab {
	if t == TabPomodoro {
		return TabFlashcards
	}
	return TabPomodoro
}

// Display holds the UI flags. They have no effect on timer or cards.
type Display struct {
	Tab  Tab
	Dark bool
}

// Card is what the flashcard view needs to draw the current card.
type Card struct {
	Question    topic.Question
	Index       int
	Count       int
	Position    string
	Flipped     bool
	CanPrevious bool
	CanNext     bool
}

// Reader is the read-only view of a Session handed to screens.
type Reader interface {
	Topic() topic.Topic
	Timer() pomodoro.Snapshot
	Card() Card
	Display() Display
}

// Session is the single state holder for a run.
type Session struct {
	topic    topic.Topic
	timer    *pomodoro.Timer
	cards    *flashcard.Navigator
	schedule pomodoro.Schedule
	display  Display
}

var _ Reader = (*Session)(nil)

// New creates a session on the pomodoro tab with a stopped timer and the
// first card showing its question.
func New(t topic.Topic, dark bool) *Session {
	return &Session{
		topic:   t,
		timer:   pomodoro.New(t.DurationSeconds()),
		cards:   flashcard.New(len(t.Questions)),
		display: Display{Tab: TabPomodoro, Dark: dark},
	}
}

func (s *Session) Topic() topic.Topic { return s.topic }

func (s *Session) Timer() pomodoro.Snapshot { return s.timer.Snapshot() }

func (s *Session) Display() Display { return s.display }

func (s *Session) Card() Card {
	q, _ := s.topic.QuestionAt(s.cards.Index())
	return Card{
		Question:    q,
		Index:       s.cards.Index(),
		Count:       s.cards.Count(),
		Position:    s.cards.Position(),
		Flipped:     s.cards.Flipped(),
		CanPrevious: s.cards.CanPrevious(),
		CanNext:     s.cards.CanNext(),
	}
}

// Subscribe forwards timer events to l.
func (s *Session) Subscribe(l pomodoro.Listener) {
	s.timer.Subscribe(l)
}

// Package lesson is the pomodoro tab: the topic's lesson beside the
// countdown timer.
package lesson

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/markdown"
	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/study"
	"github.com/abhisek/learnkit/internal/ui/keys"
	"github.com/abhisek/learnkit/internal/ui/layout"
	"github.com/abhisek/learnkit/internal/ui/theme"
)

const (
	timerPaneWidth = 42
	paneGap        = 2
)

// LessonScreen implements screen.Screen for the pomodoro tab.
type LessonScreen struct {
	state    study.Reader
	renderer *markdown.Renderer
	keys     keys.KeyMap
	viewport viewport.Model

	// content is rendered for this width and theme.
	contentWidth int
	contentDark  bool
	ready        bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen reading from state.
func New(state study.Reader, renderer *markdown.Renderer, km keys.KeyMap) *LessonScreen {
	return &LessonScreen{
		state:    state,
		renderer: renderer,
		keys:     km,
		viewport: viewport.New(),
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return "Pomodoro"
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	start, stop, reset := s.timerBindings()
	return layout.HintsFor(start, stop, reset, s.keys.ScrollDown)
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if lm, ok := msg.(screen.LayoutMsg); ok {
		s.resize(lm)
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	start, stop, reset := s.timerBindings()
	switch {
	case key.Matches(kmsg, start):
		return s, screen.Send(screen.StartTimerMsg{})
	case key.Matches(kmsg, stop):
		return s, screen.Send(screen.StopTimerMsg{})
	case key.Matches(kmsg, reset):
		return s, screen.Send(screen.ResetTimerMsg{})
	case key.Matches(kmsg, s.keys.ScrollUp):
		s.viewport.ScrollUp(1)
	case key.Matches(kmsg, s.keys.ScrollDown):
		s.viewport.ScrollDown(1)
	case key.Matches(kmsg, s.keys.PageUp):
		s.viewport.PageUp()
	case key.Matches(kmsg, s.keys.PageDown):
		s.viewport.PageDown()
	}
	return s, nil
}

// timerBindings returns Start, Stop and Reset with Start disabled while
// running and Stop disabled while stopped.
func (s *LessonScreen) timerBindings() (start, stop, reset key.Binding) {
	running := s.state.Timer().Running
	start, stop, reset = s.keys.Start, s.keys.Stop, s.keys.Reset
	start.SetEnabled(!running)
	stop.SetEnabled(running)
	return start, stop, reset
}

func (s *LessonScreen) View(width, height int) string {
	p := theme.For(s.state.Display().Dark)

	if layout.IsCompactWidth(width) {
		return lipgloss.JoinVertical(lipgloss.Left, s.renderTimer(p, width), "", s.renderLesson(p))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.renderLesson(p),
		lipgloss.NewStyle().Width(paneGap).Render(""),
		s.renderTimer(p, timerPaneWidth),
	)
}

// resize fits the lesson pane into the content area: beside the timer box
// on wide terminals, below it on compact ones.
func (s *LessonScreen) resize(msg screen.LayoutMsg) {
	width, height := msg.Width, msg.Height
	if layout.IsCompactWidth(width) {
		height -= lipgloss.Height(s.renderTimer(theme.For(msg.Dark), width)) + 1
	} else {
		width -= timerPaneWidth + paneGap
	}
	s.sync(width, height, msg.Dark)
}

// sync sizes the viewport and re-renders the lesson when the width or
// theme changed since the last layout.
func (s *LessonScreen) sync(width, height int, dark bool) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height)

	if s.ready && width == s.contentWidth && dark == s.contentDark {
		return
	}
	s.renderer.SetWidth(width)
	s.renderer.SetDark(dark)
	s.viewport.SetContent(s.content(theme.For(dark)))
	s.contentWidth = width
	s.contentDark = dark
	s.ready = true
}

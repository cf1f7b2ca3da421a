package lesson

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnkit/internal/markdown"
	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/study"
	"github.com/abhisek/learnkit/internal/topic"
	"github.com/abhisek/learnkit/internal/ui/keys"
	"github.com/abhisek/learnkit/internal/ui/theme"
)

func newTestScreen(t *testing.T) (*LessonScreen, *study.Session) {
	t.Helper()
	sess := study.New(topic.Default(), true)
	return New(sess, markdown.NewRenderer(80, true), keys.Default()), sess
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func emitted(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestStartKeyEmitsIntentWhenStopped(t *testing.T) {
	s, _ := newTestScreen(t)

	_, cmd := s.Update(press('s'))
	require.NotNil(t, cmd)
	assert.IsType(t, screen.StartTimerMsg{}, emitted(t, cmd))
}

func TestStartKeyDisabledWhileRunning(t *testing.T) {
	s, sess := newTestScreen(t)
	_, ok := sess.StartTimer()
	require.True(t, ok)

	_, cmd := s.Update(press('s'))
	assert.Nil(t, cmd)

	_, cmd = s.Update(press('p'))
	assert.IsType(t, screen.StopTimerMsg{}, emitted(t, cmd))
}

func TestStopKeyDisabledWhileStopped(t *testing.T) {
	s, _ := newTestScreen(t)

	_, cmd := s.Update(press('p'))
	assert.Nil(t, cmd)
}

func TestResetKeyAlwaysEmitsIntent(t *testing.T) {
	s, sess := newTestScreen(t)

	_, cmd := s.Update(press('r'))
	assert.IsType(t, screen.ResetTimerMsg{}, emitted(t, cmd))

	sess.StartTimer()
	_, cmd = s.Update(press('r'))
	assert.IsType(t, screen.ResetTimerMsg{}, emitted(t, cmd))
}

func TestUpdateNeverMutatesTimer(t *testing.T) {
	s, sess := newTestScreen(t)
	before := sess.Timer()

	for _, r := range "sprjk" {
		s.Update(press(r))
	}
	assert.Equal(t, before, sess.Timer())
}

func TestKeyHintsFollowTimerState(t *testing.T) {
	s, sess := newTestScreen(t)

	descs := func() []string {
		var out []string
		for _, h := range s.KeyHints() {
			out = append(out, h.Description)
		}
		return out
	}

	assert.Contains(t, descs(), "start")
	assert.NotContains(t, descs(), "stop")

	sess.StartTimer()
	assert.NotContains(t, descs(), "start")
	assert.Contains(t, descs(), "stop")
}

func TestViewShowsTimerBox(t *testing.T) {
	s, _ := newTestScreen(t)

	view := ansi.Strip(s.View(120, 30))
	assert.Contains(t, view, "Focus timer")
	assert.Contains(t, view, "20:00")
	assert.Contains(t, view, "ready")
	assert.Contains(t, view, "Completed sessions: 0")
	assert.Contains(t, view, "[s] Start")
}

func TestViewShowsPausedAfterStop(t *testing.T) {
	s, sess := newTestScreen(t)
	h, _ := sess.StartTimer()
	sess.Tick(h)
	sess.StopTimer()

	view := ansi.Strip(s.View(120, 30))
	assert.Contains(t, view, "19:59")
	assert.Contains(t, view, "paused")
}

func TestViewCompactStacksPanes(t *testing.T) {
	s, _ := newTestScreen(t)
	s.Update(screen.LayoutMsg{Width: 70, Height: 40, Dark: true})

	view := ansi.Strip(s.View(70, 40))
	timerAt := strings.Index(view, "Focus timer")
	lessonAt := strings.Index(view, "useState")
	require.GreaterOrEqual(t, timerAt, 0)
	require.GreaterOrEqual(t, lessonAt, 0)
	assert.Less(t, timerAt, lessonAt)
}

func TestContentIncludesKeyPoints(t *testing.T) {
	s, _ := newTestScreen(t)

	content := ansi.Strip(s.content(theme.Dark))
	assert.Contains(t, content, "Key points")
	for _, kp := range topic.Default().LearningContent.KeyPoints {
		assert.Contains(t, content, kp)
	}
}

func TestThemeChangeRerendersLesson(t *testing.T) {
	s, sess := newTestScreen(t)

	s.Update(screen.LayoutMsg{Width: 120, Height: 30, Dark: true})
	assert.True(t, s.contentDark)
	assert.Equal(t, 120-timerPaneWidth-paneGap, s.contentWidth)

	sess.ToggleDark()
	s.Update(screen.LayoutMsg{Width: 120, Height: 30, Dark: false})
	assert.False(t, s.contentDark)
}

func TestCompactLayoutUsesFullWidth(t *testing.T) {
	s, _ := newTestScreen(t)

	s.Update(screen.LayoutMsg{Width: 70, Height: 40, Dark: true})
	assert.Equal(t, 70, s.contentWidth)
	assert.Less(t, s.viewport.Height(), 40)
}

func TestViewLeavesLayoutAlone(t *testing.T) {
	s, _ := newTestScreen(t)

	s.View(120, 30)
	assert.False(t, s.ready)
	assert.Zero(t, s.contentWidth)

	s.Update(screen.LayoutMsg{Width: 120, Height: 30, Dark: true})
	width := s.contentWidth
	s.View(70, 40)
	assert.Equal(t, width, s.contentWidth)
}

func TestLayoutMsgEmitsNoCommand(t *testing.T) {
	s, _ := newTestScreen(t)

	_, cmd := s.Update(screen.LayoutMsg{Width: 120, Height: 30})
	assert.Nil(t, cmd)
}

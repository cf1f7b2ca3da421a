package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnkit/internal/pomodoro"
	"github.com/abhisek/learnkit/internal/ui/components"
	"github.com/abhisek/learnkit/internal/ui/theme"
)

// content is the scrollable lesson body: rendered markdown followed by the
// key points.
func (s *LessonScreen) content(p theme.Palette) string {
	lc := s.state.Topic().LearningContent
	body := strings.TrimRight(s.renderer.Render(lc.Markdown), "\n")
	if len(lc.KeyPoints) == 0 {
		return body
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString("  " + p.Title().Render("Key points"))
	for _, kp := range lc.KeyPoints {
		b.WriteString("\n")
		b.WriteString("  " + lipgloss.NewStyle().Foreground(p.Secondary).Render("•") + " " + p.Body().Render(kp))
	}
	return b.String()
}

func (s *LessonScreen) renderLesson(p theme.Palette) string {
	view := s.viewport.View()
	if s.viewport.TotalLineCount() <= s.viewport.Height() {
		return view
	}
	pct := fmt.Sprintf(" %3.0f%% ", s.viewport.ScrollPercent()*100)
	indicator := p.Hint().Render(pct)
	// Overwrite the last line with the scroll position.
	lines := strings.Split(view, "\n")
	lines[len(lines)-1] = indicator
	return strings.Join(lines, "\n")
}

// renderTimer draws the timer box at the given outer width.
func (s *LessonScreen) renderTimer(p theme.Palette, width int) string {
	snap := s.state.Timer()
	inner := width - 6 // border + padding
	if inner < 10 {
		inner = 10
	}

	clock := p.Clock()
	if snap.Running {
		clock = p.ClockRunning()
	}

	start, stop, reset := s.timerBindings()
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewButton("Start", start).View(p), " ",
		components.NewButton("Stop", stop).View(p), " ",
		components.NewButton("Reset", reset).View(p),
	)

	lines := []string{
		p.Title().Render("Focus timer"),
		"",
		clock.Render(pomodoro.FormatTime(snap.Remaining)) + "  " + p.Hint().Render(status(snap)),
		"",
		components.NewProgressBar("", snap.Progress, false, inner).View(p),
		"",
		buttons,
		"",
		p.Body().Render("Completed sessions: ") + lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(fmt.Sprint(snap.Sessions)),
	}

	return p.Card().Width(width).Render(strings.Join(lines, "\n"))
}

func status(snap pomodoro.Snapshot) string {
	switch {
	case snap.Running:
		return "running"
	case snap.Remaining < snap.Duration:
		return "paused"
	default:
		return "ready"
	}
}

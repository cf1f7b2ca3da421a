package app

import (
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/learnkit/internal/markdown"
	"github.com/abhisek/learnkit/internal/pomodoro"
	"github.com/abhisek/learnkit/internal/router"
	"github.com/abhisek/learnkit/internal/screen"
	"github.com/abhisek/learnkit/internal/screens/flashcards"
	"github.com/abhisek/learnkit/internal/screens/help"
	"github.com/abhisek/learnkit/internal/screens/lesson"
	"github.com/abhisek/learnkit/internal/study"
	"github.com/abhisek/learnkit/internal/topic"
	"github.com/abhisek/learnkit/internal/ui/keys"
	"github.com/abhisek/learnkit/internal/ui/layout"
	"github.com/abhisek/learnkit/internal/ui/theme"
)

// Options configures the application.
type Options struct {
	Topic        topic.Topic
	Dark         bool
	TickInterval time.Duration
	Logger       *zap.Logger
}

// tickMsg is one countdown tick for the schedule identified by handle.
type tickMsg struct {
	handle pomodoro.Handle
}

// AppModel is the root Bubble Tea model. It is the only writer of the
// study session; screens send intent messages that land here.
type AppModel struct {
	session  *study.Session
	router   *router.Router
	keys     keys.KeyMap
	interval time.Duration
	log      *zap.Logger
	width    int
	height   int
}

// newAppModel creates an AppModel on the pomodoro tab.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}

	sess := study.New(opts.Topic, opts.Dark)
	sess.Subscribe(func(ev pomodoro.Event, snap pomodoro.Snapshot) {
		fields := []zap.Field{
			zap.Stringer("event", ev),
			zap.Int("remaining", snap.Remaining),
			zap.Int("sessions", snap.Sessions),
		}
		if ev == pomodoro.EventTick {
			log.Debug("timer tick", fields...)
			return
		}
		log.Info("timer", fields...)
	})

	km := keys.Default()
	renderer := markdown.NewRenderer(markdown.DefaultWidth, opts.Dark)

	return AppModel{
		session: sess,
		router: router.New(map[study.Tab]screen.Screen{
			study.TabPomodoro:   lesson.New(sess, renderer, km),
			study.TabFlashcards: flashcards.New(sess, km),
		}),
		keys:     km,
		interval: interval,
		log:      log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Broadcast(m.layoutMsg())

	case tickMsg:
		if _, again := m.session.Tick(msg.handle); again {
			return m, m.tickCmd(msg.handle)
		}
		return m, nil

	case tea.KeyPressMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}

	case screen.StartTimerMsg:
		if h, ok := m.session.StartTimer(); ok {
			return m, m.tickCmd(h)
		}
		return m, nil

	case screen.StopTimerMsg:
		m.session.StopTimer()
		return m, nil

	case screen.ResetTimerMsg:
		m.session.ResetTimer()
		return m, nil

	case screen.NextCardMsg:
		m.session.NextCard()
		return m, nil

	case screen.PreviousCardMsg:
		m.session.PreviousCard()
		return m, nil

	case screen.FlipCardMsg:
		m.session.FlipCard()
		return m, nil

	case screen.GoToCardMsg:
		m.session.GoToCard(msg.Index)
		return m, nil

	case screen.SwitchTabMsg:
		m.session.SetTab(msg.Tab)
		m.log.Debug("tab switched", zap.Stringer("tab", m.session.Display().Tab))
		return m, nil

	case screen.ToggleThemeMsg:
		m.session.ToggleDark()
		m.log.Debug("theme toggled", zap.Bool("dark", m.session.Display().Dark))
		return m, m.router.Broadcast(m.layoutMsg())
	}

	cmd := m.router.Update(m.session.Display().Tab, msg)
	return m, cmd
}

// handleGlobalKey handles the keys that work on every tab. Only quit is
// active while an overlay is open.
func (m AppModel) handleGlobalKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keys.Quit) {
		m.session.Close()
		m.log.Info("quit", zap.Int("sessions", m.session.Timer().Sessions))
		return tea.Quit, true
	}
	if m.router.Depth() > 0 {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		return screen.Send(router.PushScreenMsg{Screen: help.New(m.session, m.keys)}), true
	case key.Matches(msg, m.keys.NextTab):
		return screen.Send(screen.SwitchTabMsg{Tab: m.session.Display().Tab.Next()}), true
	case key.Matches(msg, m.keys.PomodoroTab):
		return screen.Send(screen.SwitchTabMsg{Tab: study.TabPomodoro}), true
	case key.Matches(msg, m.keys.FlashcardsTab):
		return screen.Send(screen.SwitchTabMsg{Tab: study.TabFlashcards}), true
	case key.Matches(msg, m.keys.Theme):
		return screen.Send(screen.ToggleThemeMsg{}), true
	}
	return nil, false
}

// tickCmd schedules the next tick for h.
func (m AppModel) tickCmd(h pomodoro.Handle) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{handle: h}
	})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	display := m.session.Display()
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(theme.For(display.Dark), m.width, m.height)
	}

	header, tabs, footer := m.chrome()
	content := m.router.View(display.Tab, m.width, m.contentHeight(header, tabs, footer))
	return layout.RenderFrame(header, tabs, content, footer, m.width, m.height)
}

// chrome renders the header, tab bar and footer around the content area.
func (m AppModel) chrome() (header, tabs, footer string) {
	display := m.session.Display()
	p := theme.For(display.Dark)

	header = layout.RenderHeader(p, m.session.Topic().Title, themeLabel(display.Dark), m.width)
	tabs = layout.RenderTabs(p, []layout.Tab{
		{Key: "1", Label: "Pomodoro", Active: display.Tab == study.TabPomodoro},
		{Key: "2", Label: "Flashcards", Active: display.Tab == study.TabFlashcards},
	}, m.width)
	footer = layout.RenderFooter(p, m.footerHints(), m.width)
	return header, tabs, footer
}

func (m AppModel) contentHeight(header, tabs, footer string) int {
	h := m.height - lipgloss.Height(header) - lipgloss.Height(tabs) - lipgloss.Height(footer)
	if h < 0 {
		return 0
	}
	return h
}

// layoutMsg describes the content area for the tab screens.
func (m AppModel) layoutMsg() screen.LayoutMsg {
	header, tabs, footer := m.chrome()
	return screen.LayoutMsg{
		Width:  m.width,
		Height: m.contentHeight(header, tabs, footer),
		Dark:   m.session.Display().Dark,
	}
}

// footerHints lists the active screen's hints followed by the global ones.
func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if hp, ok := m.router.Active(m.session.Display().Tab).(screen.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}
	if m.router.Depth() > 0 {
		return append(hints, layout.HintsFor(m.keys.Quit)...)
	}
	return append(hints, layout.HintsFor(m.keys.Global()...)...)
}

// themeLabel names the mode the theme key switches to.
func themeLabel(dark bool) string {
	if dark {
		return "☀ Light mode"
	}
	return "☾ Dark mode"
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.log.Info("starting",
		zap.String("topic", opts.Topic.ID),
		zap.Int("duration", opts.Topic.DurationSeconds()),
		zap.Bool("dark", opts.Dark),
	)
	defer m.session.Close()

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

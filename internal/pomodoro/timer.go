// Package pomodoro implements the countdown timer state machine.
//
// The Timer does not schedule anything itself. A driver delivers one Tick
// per elapsed second while the timer is running and stops delivering when
// Running reports false.
package pomodoro

import "fmt"

// State is the timer's run state.
type State int

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Event describes what a timer operation did.
type Event int

const (
	EventNone Event = iota
	EventStarted
	EventStopped
	EventReset
	EventTick
	EventCompleted
)

var eventNames = map[Event]string{
	EventNone:      "none",
	EventStarted:   "started",
	EventStopped:   "stopped",
	EventReset:     "reset",
	EventTick:      "tick",
	EventCompleted: "completed",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Snapshot is a read-only copy of the timer state.
type Snapshot struct {
	Remaining int
	Duration  int
	Running   bool
	Sessions  int

	// Progress is the elapsed fraction of the current cycle in [0, 1].
	Progress float64
}

// Listener is notified after every state change.
type Listener func(Event, Snapshot)

// Timer is a single pomodoro countdown with a completed-session counter.
type Timer struct {
	duration  int
	remaining int
	state     State
	sessions  int
	listeners []Listener
}

// New creates a stopped timer counting down from durationSeconds.
// Negative durations are treated as zero.
func New(durationSeconds int) *Timer {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return &Timer{
		duration:  durationSeconds,
		remaining: durationSeconds,
	}
}

// Subscribe registers l to be called after every state change.
func (t *Timer) Subscribe(l Listener) {
	if l == nil {
		return
	}
	t.listeners = append(t.listeners, l)
}

// Start moves the timer to Running. It returns false if it already was.
// Starting with zero seconds left is allowed; the next Tick completes the
// cycle.
func (t *Timer) Start() bool {
	if t.state == StateRunning {
		return false
	}
	t.state = StateRunning
	t.notify(EventStarted)
	return true
}

// Stop pauses the timer, keeping the remaining time. It returns false if
// the timer was not running.
func (t *Timer) Stop() bool {
	if t.state != StateRunning {
		return false
	}
	t.state = StateStopped
	t.notify(EventStopped)
	return true
}

// Reset stops the timer and restores the full duration. The session count
// is kept.
func (t *Timer) Reset() {
	t.state = StateStopped
	t.remaining = t.duration
	t.notify(EventReset)
}

// Tick advances a running timer by one second. Reaching zero stops the
// timer, counts a session and restores the full duration in one step.
// Ticks delivered while stopped are ignored.
func (t *Timer) Tick() Event {
	if t.state != StateRunning {
		return EventNone
	}
	if t.remaining <= 1 {
		t.state = StateStopped
		t.sessions++
		t.remaining = t.duration
		t.notify(EventCompleted)
		return EventCompleted
	}
	t.remaining--
	t.notify(EventTick)
	return EventTick
}

// Running reports whether the timer is counting down.
func (t *Timer) Running() bool { return t.state == StateRunning }

// Progress returns the elapsed fraction of the current cycle in [0, 1].
func (t *Timer) Progress() float64 {
	if t.duration == 0 {
		return 0
	}
	p := float64(t.duration-t.remaining) / float64(t.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Snapshot returns a copy of the current state.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		Remaining: t.remaining,
		Duration:  t.duration,
		Running:   t.state == StateRunning,
		Sessions:  t.sessions,
		Progress:  t.Progress(),
	}
}

func (t *Timer) notify(e Event) {
	if len(t.listeners) == 0 {
		return
	}
	snap := t.Snapshot()
	for _, l := range t.listeners {
		l(e, snap)
	}
}

package study

import "github.com/abhisek/learnkit/internal/pomodoro"

// StartTimer starts the countdown and opens a new tick schedule. It returns
// false, and no handle, when the timer was already running.
func (s *Session) StartTimer() (pomodoro.Handle, bool) {
	if !s.timer.Start() {
		return 0, false
	}
	return s.schedule.Begin(), true
}

// StopTimer pauses the countdown and cancels the pending tick.
func (s *Session) StopTimer() bool {
	s.schedule.Cancel()
	return s.timer.Stop()
}

// ResetTimer stops the countdown, cancels the pending tick and restores
// the full duration.
func (s *Session) ResetTimer() {
	s.schedule.Cancel()
	s.timer.Reset()
}

// Tick delivers one tick scheduled under h. Ticks from a cancelled or
// superseded schedule are dropped. The returned bool reports whether the
// driver should schedule another tick under h.
func (s *Session) Tick(h pomodoro.Handle) (pomodoro.Event, bool) {
	if !s.schedule.Live(h) {
		return pomodoro.EventNone, false
	}
	ev := s.timer.Tick()
	if !s.timer.Running() {
		s.schedule.Cancel()
		return ev, false
	}
	return ev, true
}

// TickLive reports whether h is the current tick schedule.
func (s *Session) TickLive(h pomodoro.Handle) bool {
	return s.schedule.Live(h)
}

// Close cancels any pending tick. The session must not be ticked after.
func (s *Session) Close() {
	s.schedule.Cancel()
	s.timer.Stop()
}

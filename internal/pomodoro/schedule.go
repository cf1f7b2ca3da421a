package pomodoro

// Handle identifies one periodic tick schedule.
type Handle uint64

// Schedule tracks the single live tick schedule for a Timer. A driver
// calls Begin when the timer starts running and attaches the returned
// Handle to every tick it delivers. Cancel invalidates the live handle,
// so ticks already in flight are recognized as stale and dropped.
type Schedule struct {
	current Handle
	active  bool
}

// Begin cancels any live schedule and returns a fresh handle.
func (s *Schedule) Begin() Handle {
	s.current++
	s.active = true
	return s.current
}

// Cancel invalidates the live handle. It is safe to call repeatedly.
func (s *Schedule) Cancel() {
	if !s.active {
		return
	}
	s.active = false
	s.current++
}

// Live reports whether h is the current, uncancelled handle.
func (s *Schedule) Live(h Handle) bool {
	return s.active && h == s.current
}

package pomodoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tm := New(20 * 60)
	assert.Equal(t, 1200, tm.Snapshot().Remaining)
	assert.Equal(t, 1200, tm.Snapshot().Duration)
	assert.False(t, tm.Running())
	assert.Equal(t, 0, tm.Snapshot().Sessions)

	assert.Equal(t, 0, New(-5).Snapshot().Remaining)
}

func TestStartStop(t *testing.T) {
	tm := New(60)
	assert.True(t, tm.Start())
	assert.False(t, tm.Start(), "second start is a no-op")
	assert.True(t, tm.Running())

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop(), "second stop is a no-op")
	assert.False(t, tm.Running())
}

func TestTick_IgnoredWhileStopped(t *testing.T) {
	tm := New(60)
	assert.Equal(t, EventNone, tm.Tick())
	assert.Equal(t, 60, tm.Snapshot().Remaining)
}

func TestFullCycle(t *testing.T) {
	tm := New(20 * 60)
	require.True(t, tm.Start())

	for i := 0; i < 1199; i++ {
		require.Equal(t, EventTick, tm.Tick())
	}
	assert.Equal(t, 1, tm.Snapshot().Remaining)
	assert.True(t, tm.Running())

	assert.Equal(t, EventCompleted, tm.Tick())
	assert.False(t, tm.Running())
	assert.Equal(t, 1, tm.Snapshot().Sessions)
	assert.Equal(t, 1200, tm.Snapshot().Remaining)

	// No further tick is processed until Start is called again.
	assert.Equal(t, EventNone, tm.Tick())
	assert.Equal(t, 1200, tm.Snapshot().Remaining)
	assert.Equal(t, 1, tm.Snapshot().Sessions)
}

func TestPauseResume(t *testing.T) {
	tm := New(1200)
	tm.Start()
	for tm.Snapshot().Remaining > 700 {
		tm.Tick()
	}
	require.Equal(t, 700, tm.Snapshot().Remaining)

	tm.Stop()
	tm.Tick()
	assert.Equal(t, 700, tm.Snapshot().Remaining)

	tm.Start()
	tm.Tick()
	assert.Equal(t, 699, tm.Snapshot().Remaining)
}

func TestReset(t *testing.T) {
	tm := New(120)
	tm.Start()
	tm.Tick()
	tm.Tick()
	tm.Tick()

	tm.Reset()
	assert.Equal(t, 120, tm.Snapshot().Remaining)
	assert.False(t, tm.Running())
	assert.Equal(t, 0, tm.Snapshot().Sessions)
}

func TestReset_KeepsSessions(t *testing.T) {
	tm := New(2)
	tm.Start()
	tm.Tick()
	tm.Tick()
	require.Equal(t, 1, tm.Snapshot().Sessions)

	tm.Start()
	tm.Tick()
	tm.Reset()
	assert.Equal(t, 1, tm.Snapshot().Sessions)
	assert.Equal(t, 2, tm.Snapshot().Remaining)
}

func TestStartAtZero(t *testing.T) {
	tm := New(0)
	assert.True(t, tm.Start())
	assert.Equal(t, EventCompleted, tm.Tick())
	assert.Equal(t, 1, tm.Snapshot().Sessions)
	assert.False(t, tm.Running())
	assert.Equal(t, 0, tm.Snapshot().Remaining)
}

func TestProgress(t *testing.T) {
	tm := New(4)
	assert.Equal(t, 0.0, tm.Progress())
	tm.Start()
	tm.Tick()
	assert.InDelta(t, 0.25, tm.Progress(), 1e-9)
	tm.Tick()
	assert.InDelta(t, 0.5, tm.Progress(), 1e-9)
	assert.InDelta(t, 0.5, tm.Snapshot().Progress, 1e-9)

	assert.Equal(t, 0.0, New(0).Progress())
}

func TestSubscribe(t *testing.T) {
	tm := New(2)
	var events []Event
	var last Snapshot
	tm.Subscribe(func(e Event, s Snapshot) {
		events = append(events, e)
		last = s
	})
	tm.Subscribe(nil)

	tm.Start()
	tm.Tick()
	tm.Tick()
	tm.Reset()

	assert.Equal(t, []Event{EventStarted, EventTick, EventCompleted, EventReset}, events)
	assert.Equal(t, Snapshot{Remaining: 2, Duration: 2, Running: false, Sessions: 1}, last)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "completed", EventCompleted.String())
	assert.Equal(t, "event(42)", Event(42).String())
	assert.Equal(t, "running", StateRunning.String())
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{65, "1:05"},
		{5, "0:05"},
		{0, "0:00"},
		{1200, "20:00"},
		{3599, "59:59"},
		{6000, "100:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds), "FormatTime(%d)", tt.seconds)
	}
}

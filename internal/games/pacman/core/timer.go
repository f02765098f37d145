package core

import "time"

// Clock is the monotonic time source timers are anchored to.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// TickClock is a simulated clock advanced explicitly by the frame driver.
// The game advances it once per simulation tick so timer-driven behavior
// replays identically for the same inputs.
type TickClock struct {
	now time.Time
}

// NewTickClock creates a clock starting at the given instant.
func NewTickClock(start time.Time) *TickClock {
	return &TickClock{now: start}
}

// Now returns the simulated time.
func (c *TickClock) Now() time.Time { return c.now }

// Advance moves the clock forward. Negative durations are ignored.
func (c *TickClock) Advance(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}

// Timer is a countdown anchored to a Clock with pause/resume support.
// Timers are sampled, never awaited.
type Timer struct {
	clock    Clock
	duration time.Duration
	start    time.Time
	pausedAt time.Time
	paused   bool
}

// NewTimer starts a timer of the given duration now.
func NewTimer(clock Clock, d time.Duration) *Timer {
	return &Timer{
		clock:    clock,
		duration: d,
		start:    clock.Now(),
	}
}

// Duration returns the configured countdown length.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Pause freezes the elapsed time. Pausing a paused timer does nothing.
func (t *Timer) Pause() {
	if t.paused {
		return
	}
	t.paused = true
	t.pausedAt = t.clock.Now()
}

// Resume continues a paused timer, shifting its start by the paused span.
// Resuming a running timer does nothing.
func (t *Timer) Resume() {
	if !t.paused {
		return
	}
	if span := t.clock.Now().Sub(t.pausedAt); span > 0 {
		t.start = t.start.Add(span)
	}
	t.paused = false
}

// Paused reports whether the timer is currently paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Elapsed returns the running time, excluding paused spans. Never negative.
func (t *Timer) Elapsed() time.Duration {
	now := t.clock.Now()
	if t.paused {
		now = t.pausedAt
	}
	if e := now.Sub(t.start); e > 0 {
		return e
	}
	return 0
}

// IsElapsed reports whether the full duration has passed.
func (t *Timer) IsElapsed() bool {
	return t.IsElapsedAfter(t.duration)
}

// IsElapsedAfter reports whether more than d has passed.
func (t *Timer) IsElapsedAfter(d time.Duration) bool {
	return t.Elapsed() > d
}

// Remaining returns the time left before the timer elapses.
func (t *Timer) Remaining() time.Duration {
	if r := t.duration - t.Elapsed(); r > 0 {
		return r
	}
	return 0
}

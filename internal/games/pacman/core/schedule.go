package core

import "time"

// Phase is one step of the scatter/chase schedule. A zero Duration lasts
// forever.
type Phase struct {
	Mode     Mode
	Duration time.Duration
}

// ClassicPhases is the arcade level-one scatter/chase alternation.
var ClassicPhases = []Phase{
	{Mode: ModeScatter, Duration: 7 * time.Second},
	{Mode: ModeChase, Duration: 20 * time.Second},
	{Mode: ModeScatter, Duration: 7 * time.Second},
	{Mode: ModeChase, Duration: 20 * time.Second},
	{Mode: ModeScatter, Duration: 5 * time.Second},
	{Mode: ModeChase, Duration: 20 * time.Second},
	{Mode: ModeScatter, Duration: 5 * time.Second},
	{Mode: ModeChase},
}

// Schedule drives the global scatter/chase mode broadcast to ghosts.
type Schedule struct {
	clock  Clock
	phases []Phase
	index  int
	timer  *Timer
}

// NewSchedule creates a schedule. Empty phases mean chase forever.
func NewSchedule(clock Clock, phases []Phase) *Schedule {
	if len(phases) == 0 {
		phases = []Phase{{Mode: ModeChase}}
	}
	s := &Schedule{clock: clock, phases: append([]Phase(nil), phases...)}
	s.Reset()
	return s
}

// Reset restarts at the first phase.
func (s *Schedule) Reset() {
	s.index = 0
	s.start()
}

func (s *Schedule) start() {
	s.timer = nil
	if d := s.phases[s.index].Duration; d > 0 {
		s.timer = NewTimer(s.clock, d)
	}
}

// Mode returns the current global mode.
func (s *Schedule) Mode() Mode {
	return s.phases[s.index].Mode
}

// Phase returns the index of the current phase.
func (s *Schedule) Phase() int {
	return s.index
}

// Update moves to the next phase once the current one has run out.
// Returns true when the mode changed.
func (s *Schedule) Update() bool {
	if s.timer == nil || !s.timer.IsElapsed() || s.index == len(s.phases)-1 {
		return false
	}
	prev := s.Mode()
	s.index++
	s.start()
	return s.Mode() != prev
}

// Pause freezes the current phase.
func (s *Schedule) Pause() {
	if s.timer != nil {
		s.timer.Pause()
	}
}

// Resume continues the current phase.
func (s *Schedule) Resume() {
	if s.timer != nil {
		s.timer.Resume()
	}
}

// Paused reports whether the current phase is frozen.
func (s *Schedule) Paused() bool {
	return s.timer != nil && s.timer.Paused()
}

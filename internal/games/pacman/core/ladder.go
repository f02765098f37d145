package core

// DefaultLadder is the classic ghost score progression.
var DefaultLadder = []int{200, 400, 800, 1600}

// ScoreLadder is the per-episode ghost score progression shared by all
// ghosts of a world. It is reset by a power pickup and advanced each time a
// ghost is eaten; the last rung repeats.
type ScoreLadder struct {
	rungs []int
	index int
}

// NewScoreLadder creates a ladder. Empty rungs fall back to DefaultLadder.
func NewScoreLadder(rungs []int) *ScoreLadder {
	if len(rungs) == 0 {
		rungs = DefaultLadder
	}
	return &ScoreLadder{rungs: append([]int(nil), rungs...)}
}

// Current returns the points for the next ghost eaten.
func (l *ScoreLadder) Current() int {
	return l.rungs[l.index]
}

// Advance moves to the next rung.
func (l *ScoreLadder) Advance() {
	if l.index < len(l.rungs)-1 {
		l.index++
	}
}

// Reset returns to the first rung.
func (l *ScoreLadder) Reset() {
	l.index = 0
}

// Index returns the current rung index.
func (l *ScoreLadder) Index() int {
	return l.index
}

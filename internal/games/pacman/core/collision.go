package core

import "time"

// Outcome classifies a ghost/player contact.
type Outcome int

const (
	OutcomeNone        Outcome = iota
	OutcomeGhostEaten          // The player eats a frightened ghost
	OutcomePlayerEaten         // A live ghost catches the player
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeGhostEaten:
		return "ghost_eaten"
	case OutcomePlayerEaten:
		return "player_eaten"
	default:
		return "none"
	}
}

// Contact is what collision resolution needs to know about an agent.
type Contact struct {
	Cell *Cell
	Dir  Dir
}

// Collides reports whether two agents touch: they share a cell, or they sit
// in adjacent cells heading into each other and would swap cells this tick.
// The predicate is symmetric.
func Collides(a, b Contact) bool {
	if a.Cell == nil || b.Cell == nil {
		return false
	}
	if a.Cell == b.Cell {
		return true
	}
	if a.Dir == DirNone || b.Dir != a.Dir.Opposite() {
		return false
	}
	return a.Cell.Neighbor(a.Dir) == b.Cell || b.Cell.Neighbor(b.Dir) == a.Cell
}

// Classify resolves a contact given the ghost's mode. It never fails: every
// input yields an outcome, OutcomeNone included.
func Classify(ghost, player Contact, mode Mode) Outcome {
	if !Collides(ghost, player) {
		return OutcomeNone
	}
	switch mode {
	case ModeFrightened:
		return OutcomeGhostEaten
	case ModeDead:
		return OutcomeNone
	default:
		return OutcomePlayerEaten
	}
}

// CollisionRecord is an immutable diagnostic entry for a resolved contact.
type CollisionRecord struct {
	Outcome    Outcome
	GhostMode  Mode
	PlayerCell Coord
	GhostCell  Coord
	At         time.Time
}

// CollisionLog is an append-only diagnostic log. It is never read back to
// drive gameplay.
type CollisionLog struct {
	clock   Clock
	records []CollisionRecord
}

// NewCollisionLog creates an empty log stamped by clock.
func NewCollisionLog(clock Clock) *CollisionLog {
	return &CollisionLog{clock: clock}
}

// Record appends a resolution. OutcomeNone is not recorded.
func (l *CollisionLog) Record(o Outcome, mode Mode, player, ghost Coord) {
	if o == OutcomeNone {
		return
	}
	l.records = append(l.records, CollisionRecord{
		Outcome:    o,
		GhostMode:  mode,
		PlayerCell: player,
		GhostCell:  ghost,
		At:         l.clock.Now(),
	})
}

// History returns a copy of the records.
func (l *CollisionLog) History() []CollisionRecord {
	return append([]CollisionRecord(nil), l.records...)
}

// Clear drops all records.
func (l *CollisionLog) Clear() {
	l.records = nil
}

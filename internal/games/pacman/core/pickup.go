package core

import "time"

// Effect is the outcome of consuming a pickup.
type Effect struct {
	Kind    PickupKind
	Points  int
	Command Command // CommandFrightenAll for power pickups
}

// EffectRecord is a diagnostic entry for a dispatched pickup.
type EffectRecord struct {
	Kind       PickupKind
	Points     int
	PlayerPos  Vec
	GhostCount int
	At         time.Time
}

// Dispatcher turns consumed pickups into score and ghost commands. It is the
// only writer of the shared score ladder.
type Dispatcher struct {
	clock       Clock
	ladder      *ScoreLadder
	history     []EffectRecord
	activePower int
}

// NewDispatcher creates a dispatcher owning the given ladder.
func NewDispatcher(clock Clock, ladder *ScoreLadder) *Dispatcher {
	return &Dispatcher{clock: clock, ladder: ladder}
}

// Ladder returns the shared score ladder for reading.
func (d *Dispatcher) Ladder() *ScoreLadder {
	return d.ladder
}

// Consume detaches the cell's pickup and returns its effect. The pickup is
// cleared in the same call, so a cell dispatches at most once no matter how
// often it is polled. Returns false when the cell holds no pickup.
func (d *Dispatcher) Consume(cell *Cell, playerPos Vec, ghostCount int) (Effect, bool) {
	if cell == nil {
		return Effect{}, false
	}
	p := cell.TakePickup()
	if p == nil {
		return Effect{}, false
	}

	eff := Effect{Kind: p.Kind, Points: p.Points}
	if p.Kind == PickupPower {
		d.activePower++
		d.ladder.Reset()
		eff.Command = Command{Kind: CommandFrightenAll}
	}

	d.history = append(d.history, EffectRecord{
		Kind:       p.Kind,
		Points:     p.Points,
		PlayerPos:  playerPos,
		GhostCount: ghostCount,
		At:         d.clock.Now(),
	})
	return eff, true
}

// GhostEaten advances the ladder after a ghost has been scored.
func (d *Dispatcher) GhostEaten() {
	d.ladder.Advance()
}

// ActivePowerPellets returns the number of power pickups dispatched.
func (d *Dispatcher) ActivePowerPellets() int {
	return d.activePower
}

// History returns a copy of the effect records.
func (d *Dispatcher) History() []EffectRecord {
	return append([]EffectRecord(nil), d.history...)
}

// ClearHistory drops the effect records.
func (d *Dispatcher) ClearHistory() {
	d.history = nil
}

// Reset clears history and counters for a new game.
func (d *Dispatcher) Reset() {
	d.activePower = 0
	d.history = nil
	d.ladder.Reset()
}

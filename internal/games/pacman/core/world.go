package core

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Ghost names in spawn order.
const (
	Blinky = "blinky"
	Pinky  = "pinky"
	Inky   = "inky"
	Clyde  = "clyde"
)

// DefaultGhostTuning returns the classic ghost speeds and timings.
func DefaultGhostTuning() GhostTuning {
	return GhostTuning{
		Speed:           7.5,
		FrightenedSpeed: 4.5,
		TunnelSpeed:     4.0,
		DeadSpeed:       13.0,
		HouseSpeed:      7.0,
		FrightenedTime:  5 * time.Second,
		BlinkAt:         0.75,
		ScoreTicks:      15,
	}
}

// DefaultPacmanTuning returns the classic player speeds and death spin.
func DefaultPacmanTuning() PacmanTuning {
	return PacmanTuning{
		Speed:              8.0,
		DotSpeed:           7.1,
		FrightenedSpeed:    9.0,
		FrightenedDotSpeed: 7.9,
		DeathTurns:         9,
		DeathTurnTicks:     5,
		DeathSlowTicks:     25,
	}
}

// DefaultGhostSpecs builds the four classic ghosts for the maze spawns.
// Ghosts whose spawn glyph is absent are skipped. House ghosts leave one
// after another, wait apart.
func DefaultGhostSpecs(m *Maze, wait time.Duration) []GhostSpec {
	w, h := m.Width(), m.Height()
	all := []GhostSpec{
		{Name: Blinky, InitialMode: ModeScatter, InitialDir: DirLeft, Scatter: C(w-3, -3), Chase: ChaseDirect},
		{Name: Pinky, InitialMode: ModeHouse, InitialDir: DirDown, Scatter: C(2, -3), Chase: ChaseAhead(4)},
		{Name: Inky, InitialMode: ModeHouse, InitialDir: DirUp, Scatter: C(w-1, h), Chase: ChaseFlank, Wait: wait},
		{Name: Clyde, InitialMode: ModeHouse, InitialDir: DirUp, Scatter: C(0, h), Chase: ChaseShy(8), Wait: 2 * wait},
	}

	var out []GhostSpec
	for i, s := range all {
		spawn, ok := m.GhostSpawn(i)
		if !ok {
			continue
		}
		s.Spawn = spawn
		if !m.InHouse(spawn) && s.InitialMode == ModeHouse {
			s.InitialMode = ModeScatter
		}
		out = append(out, s)
	}
	return out
}

// WorldConfig configures a World.
type WorldConfig struct {
	TickRate int // Ticks per second
	Seed     int64
	Ghost    GhostTuning
	Pacman   PacmanTuning
	Specs    []GhostSpec // nil uses DefaultGhostSpecs
	Wait     time.Duration
	Ladder   []int
	Phases   []Phase
}

// DefaultWorldConfig returns the classic settings at 60 ticks per second.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		TickRate: 60,
		Seed:     1,
		Ghost:    DefaultGhostTuning(),
		Pacman:   DefaultPacmanTuning(),
		Wait:     4 * time.Second,
		Ladder:   DefaultLadder,
		Phases:   ClassicPhases,
	}
}

// GhostSnapshot is the observable state of one ghost.
type GhostSnapshot struct {
	Name    string
	Cell    Coord
	Dir     Dir
	Mode    Mode
	Latched bool
}

// WorldSnapshot is the observable state of the world after a tick.
type WorldSnapshot struct {
	Tick        uint64
	PlayerCell  Coord
	PlayerDir   Dir
	Dying       bool
	GlobalMode  Mode
	LadderIndex int
	PickupsLeft int
	Ghosts      []GhostSnapshot
}

// World owns every agent and runs the fixed-order tick: the player first,
// then each ghost in spawn order. Events are drained after every agent so
// later agents observe their effects within the same tick.
type World struct {
	cfg   WorldConfig
	maze  *Maze
	clock Clock
	inv   *Invariants
	rng   *rand.Rand
	dt    float64

	pacman     *Pacman
	ghosts     []*Ghost
	ladder     *ScoreLadder
	dispatcher *Dispatcher
	schedule   *Schedule

	events  Emitter
	out     []Event
	tick    uint64
	paused  bool
	held    bool // Schedule frozen while ghosts are frightened
	cleared bool
}

// NewWorld assembles a world on the maze. A *TickClock is advanced by one
// tick interval per Tick; any other clock is only read.
func NewWorld(m *Maze, cfg WorldConfig, clock Clock, inv *Invariants) (*World, error) {
	if m == nil {
		return nil, errors.New("world: nil maze")
	}
	if cfg.TickRate <= 0 {
		return nil, fmt.Errorf("world: tick rate must be positive, got %d", cfg.TickRate)
	}
	if clock == nil {
		clock = SystemClock{}
	}

	w := &World{
		cfg:   cfg,
		maze:  m,
		clock: clock,
		inv:   inv,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		dt:    1 / float64(cfg.TickRate),
	}
	w.ladder = NewScoreLadder(cfg.Ladder)
	w.dispatcher = NewDispatcher(clock, w.ladder)
	w.schedule = NewSchedule(clock, cfg.Phases)
	w.pacman = NewPacman(m, w.dispatcher, cfg.Pacman, clock, inv)

	specs := cfg.Specs
	if specs == nil {
		specs = DefaultGhostSpecs(m, cfg.Wait)
	}
	for _, s := range specs {
		if c := m.Cell(s.Spawn); c == nil || c.IsWall() {
			return nil, fmt.Errorf("world: ghost %q spawn %v is not walkable", s.Name, s.Spawn)
		}
		w.ghosts = append(w.ghosts, NewGhost(m, s, cfg.Ghost, clock, inv, w.rng))
	}
	w.ResetRound()
	return w, nil
}

// Maze returns the maze.
func (w *World) Maze() *Maze { return w.maze }

// Pacman returns the player.
func (w *World) Pacman() *Pacman { return w.pacman }

// Ghosts returns the ghosts in spawn order.
func (w *World) Ghosts() []*Ghost { return w.ghosts }

// Ladder returns the shared score ladder.
func (w *World) Ladder() *ScoreLadder { return w.ladder }

// Dispatcher returns the pickup dispatcher.
func (w *World) Dispatcher() *Dispatcher { return w.dispatcher }

// GlobalMode returns the scatter/chase mode currently broadcast.
func (w *World) GlobalMode() Mode { return w.schedule.Mode() }

// TickCount returns the number of simulated ticks.
func (w *World) TickCount() uint64 { return w.tick }

// Paused reports whether the world is paused.
func (w *World) Paused() bool { return w.paused }

// Cleared reports whether every pickup has been consumed.
func (w *World) Cleared() bool { return w.cleared }

// Drain returns the events of the ticks since the last call.
func (w *World) Drain() []Event {
	out := w.out
	w.out = nil
	return out
}

// ResetRound puts every agent back at its spawn, after a lost life or at the
// start of a level. Pickups and the schedule are kept.
func (w *World) ResetRound() {
	w.pacman.Reset()
	for _, g := range w.ghosts {
		g.Reset(w.schedule.Mode())
	}
	w.events.Take()
	if w.held {
		w.schedule.Resume()
		w.held = false
	}
	w.paused = false
}

// ResetLevel restocks the maze and restarts the schedule and the ladder.
func (w *World) ResetLevel() {
	w.maze.Restock()
	w.dispatcher.Reset()
	w.schedule.Reset()
	w.held = false
	w.cleared = false
	w.ResetRound()
}

// Pause freezes every running timer. Pausing twice is a no-op.
func (w *World) Pause() {
	if w.paused {
		return
	}
	w.paused = true
	for _, g := range w.ghosts {
		g.Pause()
	}
	w.schedule.Pause()
}

// Resume continues timers frozen by Pause. Agents stay frozen while the
// player's death spin runs.
func (w *World) Resume() {
	if !w.paused {
		return
	}
	w.paused = false
	if w.pacman.Dying() {
		return
	}
	w.resumeAgents()
}

func (w *World) playerContext() *PlayerContext {
	return &PlayerContext{DT: w.dt, Events: &w.events, GhostCount: len(w.ghosts)}
}

func (w *World) ghostContext() *TickContext {
	ctx := &TickContext{
		DT:         w.dt,
		GlobalMode: w.schedule.Mode(),
		Player:     w.pacman.View(),
		HasPlayer:  !w.pacman.Dying(),
		Ladder:     w.ladder,
		Events:     &w.events,
	}
	if len(w.ghosts) > 0 {
		ctx.Leader = w.ghosts[0].Coord()
		ctx.HasLeader = true
	}
	return ctx
}

// Tick advances the simulation by one fixed step with the player steering
// toward want.
func (w *World) Tick(want Dir) {
	if w.paused || w.cleared {
		return
	}
	if tc, ok := w.clock.(*TickClock); ok {
		tc.Advance(time.Duration(w.dt * float64(time.Second)))
	}
	w.tick++

	if w.pacman.Dying() {
		if w.pacman.TickDying(w.playerContext()) {
			w.drain(nil)
			w.resumeAgents()
			w.ResetRound()
			return
		}
		w.drain(nil)
		return
	}

	w.pacman.Move(want, w.playerContext())
	w.drain(w.ghostContext())

	w.holdSchedule()
	w.schedule.Update()

	for _, g := range w.ghosts {
		if w.pacman.Dying() {
			break
		}
		g.Move(w.ghostContext())
		w.drain(w.ghostContext())
	}
	w.holdSchedule()

	if !w.cleared && w.maze.PickupsLeft() == 0 {
		w.cleared = true
		w.out = append(w.out, Event{Kind: EventLevelCleared, Cell: w.pacman.Coord(), At: w.clock.Now()})
	}
}

// holdSchedule freezes the scatter/chase timer while any ghost is frightened.
func (w *World) holdSchedule() {
	frightened := false
	for _, g := range w.ghosts {
		if g.IsFrightened() {
			frightened = true
			break
		}
	}
	switch {
	case frightened && !w.held:
		w.schedule.Pause()
		w.held = true
	case !frightened && w.held:
		w.schedule.Resume()
		w.held = false
	}
}

// drain applies queued events and commands until none remain, then hands
// them to the caller through Drain.
func (w *World) drain(ctx *TickContext) {
	for w.events.Len() > 0 {
		for _, ev := range w.events.Take() {
			switch ev.Kind {
			case EventFrightenedEntered, EventFrightenedExited:
				w.pacman.Observe(ev)
			case EventGhostEaten:
				w.pacman.Observe(ev)
				w.dispatcher.GhostEaten()
			case EventPlayerEaten:
				w.pacman.StartDying(w.playerContext())
				w.pauseAgents()
			}
			w.out = append(w.out, ev)
		}

		for _, cmd := range w.pacman.TakeCommands() {
			if ctx == nil {
				ctx = w.ghostContext()
			}
			for _, g := range w.ghosts {
				g.Handle(cmd, ctx)
			}
		}
	}
}

// pauseAgents freezes ghost timers during the death spin.
func (w *World) pauseAgents() {
	for _, g := range w.ghosts {
		g.Pause()
	}
	w.schedule.Pause()
}

func (w *World) resumeAgents() {
	for _, g := range w.ghosts {
		g.Resume()
	}
	if !w.held {
		w.schedule.Resume()
	}
}

// CollisionHistory returns every ghost's resolved contacts in spawn order.
func (w *World) CollisionHistory() []CollisionRecord {
	var out []CollisionRecord
	for _, g := range w.ghosts {
		out = append(out, g.CollisionHistory()...)
	}
	return out
}

// Snapshot captures the observable world state.
func (w *World) Snapshot() WorldSnapshot {
	s := WorldSnapshot{
		Tick:        w.tick,
		PlayerCell:  w.pacman.Coord(),
		PlayerDir:   w.pacman.Dir(),
		Dying:       w.pacman.Dying(),
		GlobalMode:  w.schedule.Mode(),
		LadderIndex: w.ladder.Index(),
		PickupsLeft: w.maze.PickupsLeft(),
	}
	for _, g := range w.ghosts {
		s.Ghosts = append(s.Ghosts, GhostSnapshot{
			Name:    g.Name(),
			Cell:    g.Coord(),
			Dir:     g.Dir(),
			Mode:    g.Mode(),
			Latched: g.Latched(),
		})
	}
	return s
}

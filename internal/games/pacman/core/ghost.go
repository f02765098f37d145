package core

import (
	"math"
	"math/rand"
	"time"
)

// Mode is a ghost behavior mode. Exactly one is active at a time.
type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeHouse
	ModeDead
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeHouse:
		return "house"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	for m := ModeScatter; m <= ModeDead; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return ModeScatter, false
}

// modeState is the active mode together with the state only that mode needs.
type modeState interface {
	mode() Mode
}

type scatterState struct{}

type chaseState struct{}

type frightenedState struct {
	timer *Timer
}

type houseState struct {
	timer       *Timer
	prepareExit bool
}

type deadState struct {
	prepareEnter bool
}

func (scatterState) mode() Mode     { return ModeScatter }
func (chaseState) mode() Mode       { return ModeChase }
func (*frightenedState) mode() Mode { return ModeFrightened }
func (*houseState) mode() Mode      { return ModeHouse }
func (*deadState) mode() Mode       { return ModeDead }

// PlayerView is the snapshot of the player ghosts target and collide with.
type PlayerView struct {
	Cell Coord
	Dir  Dir
	Pos  Vec
}

// TickContext is the shared per-tick state passed to every ghost. Values set
// by the world earlier in a tick are visible to ghosts evaluated later.
type TickContext struct {
	DT         float64 // Seconds per tick
	GlobalMode Mode    // Scatter/chase broadcast
	Player     PlayerView
	HasPlayer  bool
	Leader     Coord // Cell of the first ghost, used by flanking targets
	HasLeader  bool
	Ladder     *ScoreLadder
	Events     *Emitter
}

// ChaseFunc returns the chase target cell of a ghost.
type ChaseFunc func(g *Ghost, ctx *TickContext) Coord

// GhostSpec is the per-ghost identity and spawn configuration.
type GhostSpec struct {
	Name        string
	Spawn       Coord
	InitialMode Mode
	InitialDir  Dir
	Scatter     Coord
	Wait        time.Duration // Time spent bouncing in the house
	Chase       ChaseFunc     // nil targets the player cell
}

// GhostTuning holds speeds (cells/second) and timings shared by ghosts.
type GhostTuning struct {
	Speed           float64
	FrightenedSpeed float64
	TunnelSpeed     float64
	DeadSpeed       float64
	HouseSpeed      float64
	FrightenedTime  time.Duration
	BlinkAt         float64 // Fraction of FrightenedTime after which the ghost blinks
	ScoreTicks      int     // Ticks the eaten-score label stays up
}

// Look selects how a ghost is drawn.
type Look int

const (
	LookNormal Look = iota
	LookFrightened
	LookFrightenedBlink
	LookEyes
	LookScore
)

// Appearance is the render selection for the current tick.
type Appearance struct {
	Look  Look
	Dir   Dir
	Score int
}

// houseBounce is the vertical half-range of the in-house bounce.
const houseBounce = 0.4

// Ghost is a pursuer driven by a mode state machine.
type Ghost struct {
	spec  GhostSpec
	tune  GhostTuning
	maze  *Maze
	clock Clock
	inv   *Invariants
	rng   *rand.Rand
	actor *Actor
	log   *CollisionLog

	state   modeState
	latched *Timer // Pending frightened request, with its running timer
	plan    Dir    // Turn to take at the next cell's center

	turnBack bool
	resolved bool // A contact was already resolved during this cell residency

	deadTarget Coord // Staging cell above the door
	deadEnd    Coord // Return cell inside the house
	houseTop   float64
	houseBot   float64

	scoreLabel int
	scoreTicks int

	ctx *TickContext
}

// NewGhost creates a ghost at its spawn in its initial mode.
func NewGhost(m *Maze, spec GhostSpec, tune GhostTuning, clock Clock, inv *Invariants, rng *rand.Rand) *Ghost {
	g := &Ghost{
		spec:  spec,
		tune:  tune,
		maze:  m,
		clock: clock,
		inv:   inv,
		rng:   rng,
		log:   NewCollisionLog(clock),
	}

	g.deadTarget = m.HouseExit()
	hc := m.HouseCenter()
	g.deadEnd = Coord{X: hc.X, Y: hc.Y}
	if m.InHouse(spec.Spawn) {
		g.deadEnd.X = spec.Spawn.X
	}

	g.actor = NewActor(m, inv, spec.Spawn, spec.InitialDir, tune.Speed)
	g.actor.OnCell = g.onCell
	g.respawn(spec.Spawn, spec.InitialMode, &TickContext{GlobalMode: ModeScatter})
	return g
}

// Name returns the ghost's name.
func (g *Ghost) Name() string { return g.spec.Name }

// Spec returns the ghost's configuration.
func (g *Ghost) Spec() GhostSpec { return g.spec }

// Mode returns the active mode.
func (g *Ghost) Mode() Mode { return g.state.mode() }

// IsFrightened reports whether the ghost is frightened or has a latched
// frightened request.
func (g *Ghost) IsFrightened() bool {
	return g.latched != nil || g.Mode() == ModeFrightened
}

// IsDead reports whether the ghost is returning home.
func (g *Ghost) IsDead() bool { return g.Mode() == ModeDead }

// Latched reports whether a frightened request is pending.
func (g *Ghost) Latched() bool { return g.latched != nil }

// Pos returns the continuous position.
func (g *Ghost) Pos() Vec { return g.actor.Pos }

// Coord returns the current cell coordinate.
func (g *Ghost) Coord() Coord { return g.actor.Coord() }

// Dir returns the current heading.
func (g *Ghost) Dir() Dir { return g.actor.Dir }

// Speed returns the current speed in cells per second.
func (g *Ghost) Speed() float64 { return g.actor.Speed }

// CollisionHistory returns the ghost's resolved contacts.
func (g *Ghost) CollisionHistory() []CollisionRecord { return g.log.History() }

// ClearCollisionHistory drops the ghost's contact records.
func (g *Ghost) ClearCollisionHistory() { g.log.Clear() }

// Reset returns the ghost to its spawn state and initial mode, dropping any
// latched request.
func (g *Ghost) Reset(globalMode Mode) {
	g.latched = nil
	mode := g.spec.InitialMode
	if mode == ModeScatter || mode == ModeChase {
		mode = globalMode
	}
	g.respawn(g.spec.Spawn, mode, &TickContext{GlobalMode: globalMode})
}

// respawn places the ghost at p in the given mode. A latched request
// survives.
func (g *Ghost) respawn(p Coord, mode Mode, ctx *TickContext) {
	g.ctx = ctx
	at := p.Center()
	g.houseTop = at.Y - houseBounce
	g.houseBot = at.Y + houseBounce
	g.actor.Place(at)
	g.actor.Dir = g.spec.InitialDir
	g.actor.Next = DirNone
	g.actor.Speed = g.tune.Speed
	g.plan = DirNone
	g.turnBack = false
	g.resolved = false
	g.scoreTicks = 0
	g.state = nil
	g.setMode(mode)
}

// Pause freezes the ghost's active timers. Position and mode are untouched.
func (g *Ghost) Pause() {
	for _, t := range g.timers() {
		t.Pause()
	}
}

// Resume continues the ghost's active timers.
func (g *Ghost) Resume() {
	for _, t := range g.timers() {
		t.Resume()
	}
}

func (g *Ghost) timers() []*Timer {
	var out []*Timer
	switch st := g.state.(type) {
	case *frightenedState:
		out = append(out, st.timer)
	case *houseState:
		if !st.prepareExit {
			out = append(out, st.timer)
		}
	}
	if g.latched != nil {
		out = append(out, g.latched)
	}
	return out
}

// Handle applies a command addressed to every ghost.
func (g *Ghost) Handle(cmd Command, ctx *TickContext) {
	g.ctx = ctx
	switch cmd.Kind {
	case CommandFrightenAll:
		g.setMode(ModeFrightened)
	}
}

func (g *Ghost) emit(kind EventKind, points int) {
	if g.ctx == nil || g.ctx.Events == nil {
		return
	}
	g.ctx.Events.Emit(Event{
		Kind:   kind,
		Ghost:  g.spec.Name,
		Cell:   g.Coord(),
		Points: points,
		At:     g.clock.Now(),
	})
}

// setMode requests a mode. Frightened requests made while in the house or
// dead are latched until that mode ends.
func (g *Ghost) setMode(m Mode) {
	if m == ModeFrightened && g.state != nil {
		if cur := g.Mode(); cur == ModeHouse || cur == ModeDead {
			g.latched = NewTimer(g.clock, g.tune.FrightenedTime)
			g.emit(EventFrightenedEntered, 0)
			return
		}
	}
	g.enterMode(m)
}

// fallback leaves the current mode: a latched request wins, otherwise the
// global scatter/chase mode applies.
func (g *Ghost) fallback() {
	if g.latched != nil {
		g.state = &frightenedState{timer: g.latched}
		g.latched = nil
		return
	}
	g.enterMode(g.ctx.GlobalMode)
}

func (g *Ghost) enterMode(m Mode) {
	wasFrightened := g.state != nil && g.Mode() == ModeFrightened

	switch m {
	case ModeScatter:
		g.state = scatterState{}
	case ModeChase:
		g.state = chaseState{}
	case ModeFrightened:
		g.state = &frightenedState{timer: NewTimer(g.clock, g.tune.FrightenedTime)}
		g.emit(EventFrightenedEntered, 0)
	case ModeHouse:
		g.state = &houseState{timer: NewTimer(g.clock, g.spec.Wait)}
		g.actor.Speed = g.tune.HouseSpeed
		if !g.actor.Dir.Vertical() {
			g.actor.Dir = DirUp
		}
	case ModeDead:
		g.state = &deadState{}
		g.scoreLabel = g.ctx.ladderValue()
		g.scoreTicks = g.tune.ScoreTicks
		if wasFrightened {
			g.emit(EventFrightenedExited, 0)
		}
	}
}

func (ctx *TickContext) ladderValue() int {
	if ctx == nil || ctx.Ladder == nil {
		return DefaultLadder[0]
	}
	return ctx.Ladder.Current()
}

// shouldExit evaluates the active mode's own exit condition.
func (g *Ghost) shouldExit(ctx *TickContext) bool {
	switch st := g.state.(type) {
	case *deadState:
		return g.Coord() == g.deadEnd
	case *frightenedState:
		if st.timer == nil {
			g.inv.Violate("frightened timer missing", "ghost", g.spec.Name)
			return false
		}
		return st.timer.IsElapsed()
	case *houseState:
		return g.Coord() == g.maze.HouseExit()
	default:
		return g.Mode() != ctx.GlobalMode
	}
}

func (g *Ghost) exitMode() {
	cell := g.actor.Cell()

	switch g.state.(type) {
	case *deadState:
		// Ghosts spawning outside wait at the house center and leave at once.
		p := g.spec.Spawn
		if !g.maze.InHouse(p) {
			p = g.deadEnd
		}
		g.respawn(p, ModeHouse, g.ctx)
	case *houseState:
		exit := g.maze.HouseExit()
		g.actor.Place(exit.Center())
		g.actor.Dir = DirLeft
		g.actor.Next = DirNone
		g.actor.Speed = g.tune.Speed
		g.plan = DirLeft
		g.fallback()
	case *frightenedState:
		if cell != nil && !cell.IsHouse() {
			g.turnBack = true
		}
		g.fallback()
		g.emit(EventFrightenedExited, 0)
	default:
		if cell != nil && !cell.IsHouse() {
			g.turnBack = true
		}
		g.fallback()
	}
}

// Move advances the ghost one tick: mode exit, else mode movement, then the
// collision check against the player.
func (g *Ghost) Move(ctx *TickContext) {
	g.ctx = ctx

	if g.scoreTicks > 0 {
		g.scoreTicks--
		return
	}

	if g.shouldExit(ctx) {
		g.exitMode()
	} else {
		switch st := g.state.(type) {
		case *deadState:
			g.moveDead(st, ctx)
		case *houseState:
			g.moveHouse(st, ctx)
		default:
			g.actor.Advance(g.actor.Step(ctx.DT), g.passable)
		}
	}

	g.checkCollision(ctx)
}

func (g *Ghost) moveDead(st *deadState, ctx *TickContext) {
	a := g.actor
	if !st.prepareEnter && g.Coord() == g.deadTarget {
		st.prepareEnter = true
	}
	if !st.prepareEnter {
		a.Advance(a.Step(ctx.DT), g.passable)
		return
	}

	end := g.deadEnd.Center()
	endX := end.X
	if a.Pos.Y < end.Y {
		// Line up with the door before dropping in.
		endX = g.deadTarget.Center().X
	}
	switch {
	case a.Pos.X < endX:
		a.Dir = DirRight
	case a.Pos.X > endX:
		a.Dir = DirLeft
	case a.Pos.Y < end.Y:
		a.Dir = DirDown
	}

	step := a.Step(ctx.DT)
	switch a.Dir {
	case DirDown:
		a.Pos.Y = approach(a.Pos.Y, end.Y, step)
	case DirRight, DirLeft:
		a.Pos.X = approach(a.Pos.X, endX, step)
	}
}

func (g *Ghost) moveHouse(st *houseState, ctx *TickContext) {
	a := g.actor
	cell := a.Cell()
	if cell == nil {
		g.inv.Violate("ghost outside maze", "ghost", g.spec.Name, "pos", a.Pos)
		return
	}

	if !st.prepareExit && st.timer.IsElapsed() && !cell.IsWall() {
		st.prepareExit = true
		a.Pos.Y = cell.Coord().Center().Y
	}

	if g.latched != nil && g.latched.IsElapsed() {
		g.latched = nil
		g.emit(EventFrightenedExited, 0)
	}

	step := a.Step(ctx.DT)
	if st.prepareExit {
		exit := g.maze.HouseExit().Center()
		switch {
		case a.Pos.X < exit.X:
			a.Dir = DirRight
		case a.Pos.X > exit.X:
			a.Dir = DirLeft
		default:
			a.Dir = DirUp
		}
		if a.Dir == DirUp {
			a.Pos.Y = approach(a.Pos.Y, exit.Y, step)
		} else {
			a.Pos.X = approach(a.Pos.X, exit.X, step)
		}
		return
	}

	if a.Pos.Y <= g.houseTop && a.Dir == DirUp {
		a.Dir = DirDown
	}
	if a.Pos.Y >= g.houseBot && a.Dir == DirDown {
		a.Dir = DirUp
	}
	switch a.Dir {
	case DirUp:
		a.Pos.Y = approach(a.Pos.Y, g.houseTop, step)
	case DirDown:
		a.Pos.Y = approach(a.Pos.Y, g.houseBot, step)
	}
}

// approach moves cur toward target by at most step, landing on target
// exactly once within reach.
func approach(cur, target, step float64) float64 {
	if math.Abs(target-cur) <= step {
		return target
	}
	if target > cur {
		return cur + step
	}
	return cur - step
}

// onCell runs on every cell-entered notification: speed policy, deferred
// reversal, direction planning and the collision latch reset.
func (g *Ghost) onCell(c *Cell) {
	a := g.actor
	switch {
	case g.Mode() == ModeFrightened:
		a.Speed = g.tune.FrightenedSpeed
	case g.Mode() == ModeDead:
		a.Speed = g.tune.DeadSpeed
	case c.IsTunnel():
		a.Speed = g.tune.TunnelSpeed
	default:
		a.Speed = g.tune.Speed
	}

	if g.turnBack {
		a.Dir = a.Dir.Opposite()
		a.Next = DirNone
		g.plan = g.nextDirection(c, a.Dir)
		g.turnBack = false
	} else {
		a.Next = g.plan
		heading := a.Next
		if heading == DirNone {
			heading = a.Dir
		}
		g.plan = g.nextDirection(c, heading)
	}

	g.resolved = false
}

func (g *Ghost) checkCollision(ctx *TickContext) {
	if g.resolved || !ctx.HasPlayer {
		return
	}
	cell := g.actor.Cell()
	if cell == nil {
		return
	}

	mode := g.Mode()
	ghost := Contact{Cell: cell, Dir: g.actor.Dir}
	player := Contact{Cell: g.maze.Cell(ctx.Player.Cell), Dir: ctx.Player.Dir}
	out := Classify(ghost, player, mode)
	if out == OutcomeNone {
		return
	}

	g.resolved = true
	g.log.Record(out, mode, ctx.Player.Cell, cell.Coord())

	switch out {
	case OutcomeGhostEaten:
		points := ctx.ladderValue()
		g.setMode(ModeDead)
		g.emit(EventGhostEaten, points)
	case OutcomePlayerEaten:
		g.emit(EventPlayerEaten, 0)
	}
}

// Appearance selects the render look for the current state.
func (g *Ghost) Appearance() Appearance {
	dir := g.actor.Dir
	switch st := g.state.(type) {
	case *deadState:
		if g.scoreTicks > 0 {
			return Appearance{Look: LookScore, Dir: dir, Score: g.scoreLabel}
		}
		return Appearance{Look: LookEyes, Dir: dir}
	case *frightenedState:
		return g.frightenedLook(st.timer, dir)
	case *houseState:
		if g.latched != nil {
			return g.frightenedLook(g.latched, dir)
		}
	}
	return Appearance{Look: LookNormal, Dir: dir}
}

func (g *Ghost) frightenedLook(t *Timer, dir Dir) Appearance {
	blinkAt := time.Duration(float64(g.tune.FrightenedTime) * g.tune.BlinkAt)
	if t.IsElapsedAfter(blinkAt) {
		return Appearance{Look: LookFrightenedBlink, Dir: dir}
	}
	return Appearance{Look: LookFrightened, Dir: dir}
}

package core

// PacmanTuning holds player speeds (cells/second) and the death sequence
// timing in ticks.
type PacmanTuning struct {
	Speed              float64
	DotSpeed           float64
	FrightenedSpeed    float64
	FrightenedDotSpeed float64
	DeathTurns         int // Spin quarter turns before the life is lost
	DeathTurnTicks     int // Ticks per spin turn
	DeathSlowTicks     int // Ticks per spin turn for the final two turns
}

// PlayerContext is what the player needs from the world during a tick.
type PlayerContext struct {
	DT         float64
	Events     *Emitter
	GhostCount int
}

// Pacman is the player-controlled agent. It consumes pickups as it enters
// cells and tracks which ghosts are frightened for its speed policy.
type Pacman struct {
	maze       *Maze
	inv        *Invariants
	actor      *Actor
	dispatcher *Dispatcher
	clock      Clock
	tune       PacmanTuning

	frightened map[string]struct{}
	eating     bool
	commands   []Command

	dying      bool
	dyingTurn  int
	dyingTicks int

	ctx *PlayerContext
}

// NewPacman creates the player at the maze spawn.
func NewPacman(m *Maze, d *Dispatcher, tune PacmanTuning, clock Clock, inv *Invariants) *Pacman {
	p := &Pacman{
		maze:       m,
		inv:        inv,
		dispatcher: d,
		clock:      clock,
		tune:       tune,
		frightened: make(map[string]struct{}),
	}
	p.actor = NewActor(m, inv, m.PlayerSpawn(), DirLeft, tune.Speed)
	p.actor.OnCell = p.onCell
	p.Reset()
	return p
}

// Reset returns the player to its spawn.
func (p *Pacman) Reset() {
	p.actor.Place(p.maze.PlayerSpawn().Center())
	p.actor.Dir = DirLeft
	p.actor.Next = DirNone
	p.actor.Speed = p.tune.Speed
	p.frightened = make(map[string]struct{})
	p.eating = false
	p.commands = nil
	p.dying = false
	p.dyingTurn = 0
	p.dyingTicks = 0
}

// View returns the snapshot ghosts target and collide with.
func (p *Pacman) View() PlayerView {
	return PlayerView{Cell: p.actor.Coord(), Dir: p.actor.Dir, Pos: p.actor.Pos}
}

// Pos returns the continuous position.
func (p *Pacman) Pos() Vec { return p.actor.Pos }

// Coord returns the current cell coordinate.
func (p *Pacman) Coord() Coord { return p.actor.Coord() }

// Dir returns the current heading.
func (p *Pacman) Dir() Dir { return p.actor.Dir }

// Speed returns the current speed in cells per second.
func (p *Pacman) Speed() float64 { return p.actor.Speed }

// Blocked reports whether the player is standing against a wall.
func (p *Pacman) Blocked() bool { return p.actor.Blocked() }

// Dying reports whether the death sequence is running.
func (p *Pacman) Dying() bool { return p.dying }

// FrightenedGhosts returns the number of ghosts currently frightened.
func (p *Pacman) FrightenedGhosts() int { return len(p.frightened) }

// TakeCommands returns commands produced by consumed pickups and clears them.
func (p *Pacman) TakeCommands() []Command {
	out := p.commands
	p.commands = nil
	return out
}

func (p *Pacman) passable(next *Cell, d Dir) bool {
	return next != nil && next.Allows(d) && !next.IsHouse()
}

// Move steers toward want and advances one tick. A reversal applies at once,
// any other turn is buffered until a cell center where it is legal.
func (p *Pacman) Move(want Dir, ctx *PlayerContext) {
	if p.dying {
		return
	}
	p.ctx = ctx
	a := p.actor
	if want != DirNone {
		if a.Dir != DirNone && want == a.Dir.Opposite() {
			a.Dir = want
			a.Next = DirNone
		} else if want != a.Dir {
			a.Next = want
		}
	}
	a.Advance(a.Step(ctx.DT), p.passable)
}

func (p *Pacman) onCell(c *Cell) {
	p.eating = false
	ghosts := 0
	if p.ctx != nil {
		ghosts = p.ctx.GhostCount
	}

	if eff, ok := p.dispatcher.Consume(c, p.actor.Pos, ghosts); ok {
		// Only regular dots slow the player down.
		p.eating = eff.Kind == PickupDot
		kind := EventDotEaten
		if eff.Kind == PickupPower {
			kind = EventPowerEaten
		}
		if eff.Command.Kind != CommandNone {
			p.commands = append(p.commands, eff.Command)
		}
		p.emit(Event{Kind: kind, Cell: c.Coord(), Points: eff.Points})
	}
	p.updateSpeed()
}

func (p *Pacman) updateSpeed() {
	frightened := len(p.frightened) > 0
	switch {
	case frightened && p.eating:
		p.actor.Speed = p.tune.FrightenedDotSpeed
	case frightened:
		p.actor.Speed = p.tune.FrightenedSpeed
	case p.eating:
		p.actor.Speed = p.tune.DotSpeed
	default:
		p.actor.Speed = p.tune.Speed
	}
}

func (p *Pacman) emit(ev Event) {
	if p.ctx == nil || p.ctx.Events == nil {
		return
	}
	ev.At = p.clock.Now()
	p.ctx.Events.Emit(ev)
}

// Observe updates the frightened ghost set from ghost events.
func (p *Pacman) Observe(ev Event) {
	switch ev.Kind {
	case EventFrightenedEntered:
		p.frightened[ev.Ghost] = struct{}{}
	case EventFrightenedExited, EventGhostEaten:
		delete(p.frightened, ev.Ghost)
	default:
		return
	}
	p.updateSpeed()
}

// StartDying begins the death spin.
func (p *Pacman) StartDying(ctx *PlayerContext) {
	if p.dying {
		return
	}
	p.ctx = ctx
	p.dying = true
	p.dyingTurn = 0
	p.dyingTicks = 0
	p.actor.Next = DirNone
	p.emit(Event{Kind: EventPlayerDying, Cell: p.Coord()})
}

// TickDying advances the death spin by one tick. It returns true once the
// spin is over and the life has been lost.
func (p *Pacman) TickDying(ctx *PlayerContext) bool {
	if !p.dying {
		return false
	}
	p.ctx = ctx
	p.dyingTicks++

	per := p.tune.DeathTurnTicks
	if p.dyingTurn >= p.tune.DeathTurns-2 {
		per = p.tune.DeathSlowTicks
	}
	if p.dyingTicks < per {
		return false
	}

	p.dyingTicks = 0
	p.dyingTurn++
	p.actor.Dir = nextClockwise(p.actor.Dir)
	if p.dyingTurn < p.tune.DeathTurns {
		return false
	}

	p.dying = false
	p.emit(Event{Kind: EventLifeLost, Cell: p.Coord()})
	return true
}

// DyingTurn returns the completed spin turns.
func (p *Pacman) DyingTurn() int { return p.dyingTurn }

func nextClockwise(d Dir) Dir {
	for i, c := range clockwise {
		if c == d {
			return clockwise[(i+1)%len(clockwise)]
		}
	}
	return DirUp
}

package core

import "math"

const eps = 1e-9

// Vec is a continuous position in cell units. Cell (x, y) spans
// [x, x+1) × [y, y+1) and its center is (x+0.5, y+0.5).
type Vec struct {
	X float64
	Y float64
}

// Coord returns the cell containing the position.
func (v Vec) Coord() Coord {
	return Coord{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Passable decides whether an agent heading d may enter cell next.
// next is nil at the maze boundary.
type Passable func(next *Cell, d Dir) bool

// Actor is the movement primitive shared by the player and the ghosts:
// a position advancing along the center lines of the maze grid.
type Actor struct {
	maze *Maze
	inv  *Invariants

	Pos   Vec
	Dir   Dir     // Current heading
	Next  Dir     // Turn to take at the next cell center
	Speed float64 // Cells per second

	last    *Cell
	blocked bool

	// OnCell fires exactly once each time the position crosses into a new
	// cell, and once on the first advance after Place or ForceCellEvent.
	OnCell func(c *Cell)
}

// NewActor creates an actor at the center of the given cell.
func NewActor(m *Maze, inv *Invariants, at Coord, dir Dir, speed float64) *Actor {
	return &Actor{
		maze:  m,
		inv:   inv,
		Pos:   at.Center(),
		Dir:   dir,
		Speed: speed,
	}
}

// Cell returns the cell under the actor, or nil if the position is invalid.
func (a *Actor) Cell() *Cell {
	return a.maze.CellOf(a.Pos)
}

// Coord returns the coordinate of the current cell.
func (a *Actor) Coord() Coord {
	return a.Pos.Coord()
}

// Blocked reports whether the last advance stopped against a wall.
func (a *Actor) Blocked() bool {
	return a.blocked
}

// Place teleports the actor and schedules a cell-entered notification.
func (a *Actor) Place(p Vec) {
	a.Pos = p
	a.last = nil
	a.blocked = false
}

// ForceCellEvent makes the next advance fire OnCell for the current cell.
func (a *Actor) ForceCellEvent() {
	a.last = nil
}

// Step returns the distance budget for dt seconds at the current speed.
func (a *Actor) Step(dt float64) float64 {
	return a.Speed * dt
}

// syncCell fires OnCell if the position maps to a new cell.
// Returns false when the position resolves to no cell.
func (a *Actor) syncCell() bool {
	c := a.Cell()
	if c == nil {
		a.inv.Violate("actor outside maze", "pos", a.Pos)
		return false
	}
	if c != a.last {
		a.last = c
		if a.OnCell != nil {
			a.OnCell(c)
		}
	}
	return true
}

// centerOffset is the signed distance to the current cell center along the
// heading: positive when the center lies ahead.
func (a *Actor) centerOffset(c *Cell) float64 {
	dx, dy := a.Dir.Delta()
	ctr := c.Coord().Center()
	return (ctr.X-a.Pos.X)*float64(dx) + (ctr.Y-a.Pos.Y)*float64(dy)
}

func (a *Actor) canEnter(c *Cell, d Dir, passable Passable) bool {
	if d == DirNone {
		return false
	}
	return passable(c.Neighbor(d), d)
}

func (a *Actor) snapToCenter(c *Cell) {
	a.Pos = c.Coord().Center()
}

func (a *Actor) moveBy(dist float64) {
	dx, dy := a.Dir.Delta()
	a.Pos.X += float64(dx) * dist
	a.Pos.Y += float64(dy) * dist

	if !a.maze.Wraps() {
		return
	}
	w := float64(a.maze.Width())
	if a.Pos.X < 0 {
		a.Pos.X += w
	} else if a.Pos.X >= w {
		a.Pos.X -= w
	}
}

// Advance moves the actor dist cells along the grid. Turns to Next happen at
// cell centers when the target cell is passable; the actor stops at a center
// when its heading is blocked. Returns false on an invariant violation, in
// which case the actor holds its position.
func (a *Actor) Advance(dist float64, passable Passable) bool {
	if !a.syncCell() {
		return false
	}
	a.blocked = false

	var decided *Cell
	for dist > eps {
		cell := a.Cell()
		if cell == nil {
			a.inv.Violate("actor outside maze", "pos", a.Pos)
			return false
		}

		if a.Dir == DirNone {
			if !a.canEnter(cell, a.Next, passable) {
				a.blocked = true
				return true
			}
			a.snapToCenter(cell)
			a.Dir = a.Next
			decided = cell
		}

		off := a.centerOffset(cell)
		switch {
		case off > eps:
			// Approach the center.
			step := math.Min(dist, off)
			a.moveBy(step)
			dist -= step
			if step == off {
				a.snapToCenter(cell)
			}

		case off >= -eps && decided != cell:
			// At the center: turn or stop.
			a.snapToCenter(cell)
			decided = cell
			if a.Next != DirNone && a.Next != a.Dir && a.canEnter(cell, a.Next, passable) {
				a.Dir = a.Next
			}
			if !a.canEnter(cell, a.Dir, passable) {
				a.blocked = true
				return true
			}

		default:
			// Past the center: run to the next cell's center.
			step := math.Min(dist, 1+off)
			if step <= eps {
				step = math.Min(dist, 1)
			}
			a.moveBy(step)
			dist -= step
		}

		if !a.syncCell() {
			return false
		}
	}
	return true
}

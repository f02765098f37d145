package core

import (
	"errors"
	"fmt"
)

// Coord addresses a maze cell. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate n cells away in the given direction.
func (c Coord) Step(d Dir, n int) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx*n, Y: c.Y + dy*n}
}

// DistSq returns the squared Euclidean distance between two coordinates.
func (c Coord) DistSq(o Coord) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

// Center returns the continuous position of the cell center.
func (c Coord) Center() Vec {
	return Vec{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// PickupKind discriminates regular dots from power pellets.
type PickupKind int

const (
	PickupDot PickupKind = iota
	PickupPower
)

// String returns the pickup kind name.
func (k PickupKind) String() string {
	if k == PickupPower {
		return "power"
	}
	return "dot"
}

// Pickup is a consumable attached to a cell.
type Pickup struct {
	Kind   PickupKind
	Points int
}

// Terrain classifies a cell.
type Terrain int

const (
	TerrainFloor Terrain = iota
	TerrainWall
	TerrainHouse
	TerrainDoor
	TerrainTunnel
	TerrainOnlyLeft
	TerrainOnlyRight
	TerrainExit
)

// Cell is a node of the maze graph.
type Cell struct {
	maze    *Maze
	coord   Coord
	terrain Terrain
	pickup  *Pickup
}

// Coord returns the cell address.
func (c *Cell) Coord() Coord { return c.coord }

// Terrain returns the cell classification.
func (c *Cell) Terrain() Terrain { return c.terrain }

// IsWall reports whether the cell blocks every agent.
func (c *Cell) IsWall() bool { return c.terrain == TerrainWall }

// IsHouse reports whether the cell belongs to the ghost house, door included.
func (c *Cell) IsHouse() bool { return c.terrain == TerrainHouse || c.terrain == TerrainDoor }

// IsDoor reports whether the cell is the ghost house door.
func (c *Cell) IsDoor() bool { return c.terrain == TerrainDoor }

// IsTunnel reports whether the cell slows ghosts down.
func (c *Cell) IsTunnel() bool { return c.terrain == TerrainTunnel }

// IsOnlyLeft reports whether the cell may only be entered heading left.
func (c *Cell) IsOnlyLeft() bool { return c.terrain == TerrainOnlyLeft }

// IsOnlyRight reports whether the cell may only be entered heading right.
func (c *Cell) IsOnlyRight() bool { return c.terrain == TerrainOnlyRight }

// IsExit reports whether the cell is the house exit, right above the door.
func (c *Cell) IsExit() bool { return c.terrain == TerrainExit }

// Allows reports whether an agent heading d may enter this cell.
func (c *Cell) Allows(d Dir) bool {
	switch c.terrain {
	case TerrainWall:
		return false
	case TerrainOnlyLeft:
		return d == DirLeft
	case TerrainOnlyRight:
		return d == DirRight
	default:
		return true
	}
}

// Neighbor returns the adjacent cell in direction d. Off-grid lookups
// return nil, except horizontally on a wrapping maze.
func (c *Cell) Neighbor(d Dir) *Cell {
	dx, dy := d.Delta()
	return c.maze.lookup(c.coord.X+dx, c.coord.Y+dy)
}

// Pickup returns the attached pickup, or nil.
func (c *Cell) Pickup() *Pickup { return c.pickup }

// TakePickup detaches and returns the pickup. A consumed cell returns nil,
// so a pickup is dispatched at most once.
func (c *Cell) TakePickup() *Pickup {
	p := c.pickup
	c.pickup = nil
	return p
}

// PutPickup attaches a pickup to the cell.
func (c *Cell) PutPickup(p *Pickup) {
	c.pickup = p
}

// MazeOptions controls maze parsing.
type MazeOptions struct {
	Wrap        bool // Horizontal edges connect
	DotPoints   int
	PowerPoints int
}

// DefaultMazeOptions returns the classic scoring with wrapping enabled.
func DefaultMazeOptions() MazeOptions {
	return MazeOptions{Wrap: true, DotPoints: 10, PowerPoints: 50}
}

// Maze is the grid graph agents move on.
// Cells are stored in row-major order: index = y*W + x.
type Maze struct {
	w, h        int
	wrap        bool
	cells       []Cell
	layout      []string
	opts        MazeOptions
	playerSpawn Coord
	ghostSpawns map[int]Coord
	houseExit   Coord
	houseMin    Coord
	houseMax    Coord
}

// Maze parsing errors.
var (
	ErrEmptyLayout    = errors.New("maze: empty layout")
	ErrRaggedLayout   = errors.New("maze: rows have different widths")
	ErrNoPlayerSpawn  = errors.New("maze: no player spawn")
	ErrNoHouseExit    = errors.New("maze: no house exit")
	ErrNoHouse        = errors.New("maze: no ghost house")
	ErrUnknownGlyph   = errors.New("maze: unknown glyph")
	ErrDuplicateGlyph = errors.New("maze: duplicate unique glyph")
)

// ParseMaze builds a maze from an ASCII layout.
func ParseMaze(layout []string, opts MazeOptions) (*Maze, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	w := len(layout[0])
	m := &Maze{
		w:           w,
		h:           len(layout),
		wrap:        opts.Wrap,
		cells:       make([]Cell, w*len(layout)),
		layout:      append([]string(nil), layout...),
		opts:        opts,
		ghostSpawns: make(map[int]Coord),
		houseMin:    Coord{X: w, Y: len(layout)},
		houseMax:    Coord{X: -1, Y: -1},
	}

	havePlayer, haveExit := false, false
	for y, row := range layout {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrRaggedLayout, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			ch := row[x]
			c := &m.cells[y*w+x]
			c.maze = m
			c.coord = C(x, y)

			switch ch {
			case '#':
				c.terrain = TerrainWall
			case '.':
				c.pickup = &Pickup{Kind: PickupDot, Points: opts.DotPoints}
			case 'o':
				c.pickup = &Pickup{Kind: PickupPower, Points: opts.PowerPoints}
			case ' ':
			case 'h':
				c.terrain = TerrainHouse
			case '-':
				c.terrain = TerrainDoor
			case 'T':
				c.terrain = TerrainTunnel
			case '<':
				c.terrain = TerrainOnlyLeft
			case '>':
				c.terrain = TerrainOnlyRight
			case 'e':
				if haveExit {
					return nil, fmt.Errorf("%w: %q at %v", ErrDuplicateGlyph, ch, c.coord)
				}
				c.terrain = TerrainExit
				m.houseExit = c.coord
				haveExit = true
			case 'S':
				if havePlayer {
					return nil, fmt.Errorf("%w: %q at %v", ErrDuplicateGlyph, ch, c.coord)
				}
				m.playerSpawn = c.coord
				havePlayer = true
			case '1':
				m.ghostSpawns[0] = c.coord
			case '2', '3', '4':
				c.terrain = TerrainHouse
				m.ghostSpawns[int(ch-'1')] = c.coord
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownGlyph, ch, c.coord)
			}

			if c.terrain == TerrainHouse {
				m.houseMin.X = min(m.houseMin.X, x)
				m.houseMin.Y = min(m.houseMin.Y, y)
				m.houseMax.X = max(m.houseMax.X, x)
				m.houseMax.Y = max(m.houseMax.Y, y)
			}
		}
	}

	if !havePlayer {
		return nil, ErrNoPlayerSpawn
	}
	if !haveExit {
		return nil, ErrNoHouseExit
	}
	if m.houseMax.X < 0 {
		return nil, ErrNoHouse
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.w }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.h }

// Wraps reports whether horizontal edges connect.
func (m *Maze) Wraps() bool { return m.wrap }

func (m *Maze) lookup(x, y int) *Cell {
	if y < 0 || y >= m.h {
		return nil
	}
	if x < 0 || x >= m.w {
		if !m.wrap {
			return nil
		}
		x = ((x % m.w) + m.w) % m.w
	}
	return &m.cells[y*m.w+x]
}

// CellAt returns the cell at (x, y), or nil when out of bounds.
func (m *Maze) CellAt(x, y int) *Cell {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return nil
	}
	return &m.cells[y*m.w+x]
}

// Cell returns the cell at the coordinate, or nil when out of bounds.
func (m *Maze) Cell(c Coord) *Cell {
	return m.CellAt(c.X, c.Y)
}

// CellOf resolves a continuous position to its cell.
func (m *Maze) CellOf(p Vec) *Cell {
	return m.Cell(p.Coord())
}

// PlayerSpawn returns the player's start cell.
func (m *Maze) PlayerSpawn() Coord { return m.playerSpawn }

// GhostSpawn returns the spawn cell of the ghost at index i.
func (m *Maze) GhostSpawn(i int) (Coord, bool) {
	c, ok := m.ghostSpawns[i]
	return c, ok
}

// HouseExit returns the cell right above the house door.
func (m *Maze) HouseExit() Coord { return m.houseExit }

// HouseCenter returns the center row and column of the ghost house interior.
func (m *Maze) HouseCenter() Coord {
	return Coord{
		X: (m.houseMin.X + m.houseMax.X) / 2,
		Y: (m.houseMin.Y + m.houseMax.Y) / 2,
	}
}

// InHouse reports whether a coordinate lies inside the house interior bounds.
// The door is not part of the interior.
func (m *Maze) InHouse(c Coord) bool {
	return c.X >= m.houseMin.X && c.X <= m.houseMax.X && c.Y >= m.houseMin.Y && c.Y <= m.houseMax.Y
}

// PickupsLeft counts the pickups not yet consumed.
func (m *Maze) PickupsLeft() int {
	n := 0
	for i := range m.cells {
		if m.cells[i].pickup != nil {
			n++
		}
	}
	return n
}

// Restock re-attaches every pickup of the original layout.
func (m *Maze) Restock() {
	for y, row := range m.layout {
		for x := 0; x < m.w; x++ {
			c := &m.cells[y*m.w+x]
			switch row[x] {
			case '.':
				c.pickup = &Pickup{Kind: PickupDot, Points: m.opts.DotPoints}
			case 'o':
				c.pickup = &Pickup{Kind: PickupPower, Points: m.opts.PowerPoints}
			default:
				c.pickup = nil
			}
		}
	}
}

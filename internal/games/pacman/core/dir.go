// Package core contains the pure simulation logic for Pac-Man: the maze graph,
// the movement primitive, ghost and player controllers, collision resolution
// and pickup effects. It has no dependency on the terminal layer.
package core

// Dir is a heading on the 4-connected maze grid.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Delta returns the unit step for the direction.
// Y grows downward (screen coordinates).
func (d Dir) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Horizontal reports whether the direction is left or right.
func (d Dir) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Vertical reports whether the direction is up or down.
func (d Dir) Vertical() bool {
	return d == DirUp || d == DirDown
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// ParseDir converts a name ("up", "u", ...) to a Dir.
func ParseDir(s string) (Dir, bool) {
	switch s {
	case "up", "u":
		return DirUp, true
	case "right", "r":
		return DirRight, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	case "", "none":
		return DirNone, true
	default:
		return DirNone, false
	}
}

// Tie-break order used by target-seeking ghosts.
var targetOrder = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// Clockwise rotation used by frightened ghosts.
var clockwise = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

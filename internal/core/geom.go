// Package core provides the platform types shared by the game and the
// terminal front end: screen buffer, input frames and runtime config.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenterIn returns r moved so it is centered inside outer.
// A rect larger than outer is pinned to outer's top-left corner.
func (r Rect) CenterIn(outer Rect) Rect {
	r.X = outer.X + Max(0, (outer.W-r.W)/2)
	r.Y = outer.Y + Max(0, (outer.H-r.H)/2)
	return r
}

// Follow returns the top-left corner of a w×h window over r that keeps
// (x, y) as close to the window center as r's bounds allow.
func (r Rect) Follow(x, y, w, h int) (int, int) {
	ox := Clamp(x-w/2, r.X, Max(r.X, r.Right()-w))
	oy := Clamp(y-h/2, r.Y, Max(r.Y, r.Bottom()-h))
	return ox, oy
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package core

import "time"

// Diagnostic is one journaled record of a game session, such as a resolved
// ghost collision or an applied pickup effect. Cells are preformatted so the
// platform can store them without knowing the game's coordinate types.
type Diagnostic struct {
	Kind       string // "collision" or "effect"
	Ghost      string
	Mode       string
	PlayerCell string
	GhostCell  string
	Detail     string
	At         time.Time
}

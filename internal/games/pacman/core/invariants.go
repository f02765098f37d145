package core

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Invariants reports broken simulation invariants: an agent outside the
// maze, a direction choice with no legal candidate, a timer read before it
// exists. In strict mode a violation panics; otherwise it is logged and the
// caller degrades to a no-op (hold position, keep prior direction).
// A nil *Invariants is strict.
type Invariants struct {
	Strict bool
	Logger *log.Logger
}

// NewInvariants returns a reporter. A nil logger uses the default logger.
func NewInvariants(strict bool, logger *log.Logger) *Invariants {
	if logger == nil {
		logger = log.Default()
	}
	return &Invariants{Strict: strict, Logger: logger}
}

// Violate reports a violation.
func (inv *Invariants) Violate(msg string, keyvals ...any) {
	if inv == nil || inv.Strict {
		panic(fmt.Sprintf("pacman: invariant violated: %s %v", msg, keyvals))
	}
	inv.Logger.Error("invariant violated: "+msg, keyvals...)
}

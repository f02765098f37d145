package pacman

import (
	"fmt"
	"sort"

	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// Diagnostic kinds.
const (
	DiagCollision = "collision"
	DiagEffect    = "effect"
)

// Diagnostics returns the collision and pickup-effect records of the
// session, oldest first.
func (g *Game) Diagnostics() []platformcore.Diagnostic {
	out := append([]platformcore.Diagnostic(nil), g.archived...)
	if g.world != nil {
		out = append(out, worldDiagnostics(g.world)...)
	}
	return out
}

// worldDiagnostics flattens one world's ghost collision logs and dispatcher
// history into time order.
func worldDiagnostics(w *core.World) []platformcore.Diagnostic {
	var out []platformcore.Diagnostic
	for _, gh := range w.Ghosts() {
		for _, rec := range gh.CollisionHistory() {
			out = append(out, platformcore.Diagnostic{
				Kind:       DiagCollision,
				Ghost:      gh.Name(),
				Mode:       rec.GhostMode.String(),
				PlayerCell: rec.PlayerCell.String(),
				GhostCell:  rec.GhostCell.String(),
				Detail:     rec.Outcome.String(),
				At:         rec.At,
			})
		}
	}
	for _, rec := range w.Dispatcher().History() {
		out = append(out, platformcore.Diagnostic{
			Kind:       DiagEffect,
			PlayerCell: rec.PlayerPos.Coord().String(),
			Detail:     fmt.Sprintf("%s +%d ghosts=%d", rec.Kind, rec.Points, rec.GhostCount),
			At:         rec.At,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out
}

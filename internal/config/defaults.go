package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pac-Man configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Gameplay: PacmanGameplay{
			Lives:       3,
			ExtraLifeAt: 10000,
			ReadyTicks:  120,
			ClearTicks:  90,
		},
		Player: PacmanPlayer{
			Speed:              8.0,
			DotSpeed:           7.1,
			FrightenedSpeed:    9.0,
			FrightenedDotSpeed: 7.9,
			DeathTurns:         9,
			DeathTurnTicks:     5,
			DeathSlowTicks:     25,
		},
		Ghosts: PacmanGhosts{
			Speed:             7.5,
			FrightenedSpeed:   4.5,
			TunnelSpeed:       4.0,
			DeadSpeed:         13.0,
			HouseSpeed:        7.0,
			FrightenedSeconds: 5,
			BlinkAt:           0.75,
			ScoreTicks:        15,
			HouseWaitSeconds:  4,
			Ladder:            []int{200, 400, 800, 1600},
		},
		Pickups: PacmanPickups{
			DotPoints:   10,
			PowerPoints: 50,
		},
		Schedule: []PacmanPhase{
			{Mode: "scatter", Seconds: 7},
			{Mode: "chase", Seconds: 20},
			{Mode: "scatter", Seconds: 7},
			{Mode: "chase", Seconds: 20},
			{Mode: "scatter", Seconds: 5},
			{Mode: "chase", Seconds: 20},
			{Mode: "scatter", Seconds: 5},
			{Mode: "chase"},
		},
		Debug: PacmanDebug{
			Clock: "tick",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.25,
				FrightenedReduction: 0.6,
				WaitReduction:       0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman", "pacman_endless":
		return defaultPacmanYAML
	default:
		return nil
	}
}

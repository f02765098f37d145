// Package config provides YAML-based game configuration loading and
// difficulty management for Pac-Man.
package config

import (
	"fmt"
	"time"
)

// PacmanConfig contains all configuration for the Pac-Man game.
type PacmanConfig struct {
	Gameplay   PacmanGameplay   `yaml:"gameplay"`
	Player     PacmanPlayer     `yaml:"player"`
	Ghosts     PacmanGhosts     `yaml:"ghosts"`
	Pickups    PacmanPickups    `yaml:"pickups"`
	Schedule   []PacmanPhase    `yaml:"schedule"`
	Mazes      PacmanMazes      `yaml:"mazes"`
	Debug      PacmanDebug      `yaml:"debug"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanGameplay defines lives and round pacing.
type PacmanGameplay struct {
	Lives       int `yaml:"lives"`
	ExtraLifeAt int `yaml:"extra_life_at"` // Score granting one extra life, 0 disables
	ReadyTicks  int `yaml:"ready_ticks"`   // Frozen "READY!" ticks before each round
	ClearTicks  int `yaml:"clear_ticks"`   // Pause after a maze is cleared
}

// PacmanPlayer defines player speeds in cells per second and the death spin.
type PacmanPlayer struct {
	Speed              float64 `yaml:"speed"`
	DotSpeed           float64 `yaml:"dot_speed"`
	FrightenedSpeed    float64 `yaml:"frightened_speed"`
	FrightenedDotSpeed float64 `yaml:"frightened_dot_speed"`
	DeathTurns         int     `yaml:"death_turns"`
	DeathTurnTicks     int     `yaml:"death_turn_ticks"`
	DeathSlowTicks     int     `yaml:"death_slow_ticks"`
}

// PacmanGhosts defines ghost speeds in cells per second and mode timings.
type PacmanGhosts struct {
	Speed             float64 `yaml:"speed"`
	FrightenedSpeed   float64 `yaml:"frightened_speed"`
	TunnelSpeed       float64 `yaml:"tunnel_speed"`
	DeadSpeed         float64 `yaml:"dead_speed"`
	HouseSpeed        float64 `yaml:"house_speed"`
	FrightenedSeconds float64 `yaml:"frightened_seconds"`
	BlinkAt           float64 `yaml:"blink_at"`    // Fraction of frightened time after which ghosts blink
	ScoreTicks        int     `yaml:"score_ticks"` // Ticks the eaten ghost shows its points
	HouseWaitSeconds  float64 `yaml:"house_wait_seconds"`
	Ladder            []int   `yaml:"ladder"` // Points for consecutive ghosts per power pellet
}

// PacmanPickups defines pickup values.
type PacmanPickups struct {
	DotPoints   int `yaml:"dot_points"`
	PowerPoints int `yaml:"power_points"`
}

// PacmanPhase is one scatter/chase schedule step. Zero seconds lasts forever.
type PacmanPhase struct {
	Mode    string  `yaml:"mode"` // "scatter" or "chase"
	Seconds float64 `yaml:"seconds"`
}

// PacmanMazes selects where mazes come from.
type PacmanMazes struct {
	Dir   string `yaml:"dir"`   // Extra maze directory, merged over the embedded set
	Start string `yaml:"start"` // Maze ID to start from, empty for the first
}

// PacmanDebug holds developer switches.
type PacmanDebug struct {
	StrictInvariants bool   `yaml:"strict_invariants"` // Panic instead of logging broken invariants
	Clock            string `yaml:"clock"`             // "tick" (deterministic) or "wall"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`     // Added to ghost speed at max difficulty
	FrightenedReduction float64 `yaml:"frightened_reduction"` // Fraction of frightened time removed at max difficulty
	WaitReduction       float64 `yaml:"wait_reduction"`       // Fraction of house wait removed at max difficulty
}

// FrightenedTime returns the configured frightened duration.
func (g PacmanGhosts) FrightenedTime() time.Duration {
	return seconds(g.FrightenedSeconds)
}

// HouseWait returns the configured delay between house ghosts leaving.
func (g PacmanGhosts) HouseWait() time.Duration {
	return seconds(g.HouseWaitSeconds)
}

// Duration returns the phase length, zero meaning forever.
func (p PacmanPhase) Duration() time.Duration {
	return seconds(p.Seconds)
}

// Validate reports the first setting the game cannot run with.
func (c PacmanConfig) Validate() error {
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	}
	if c.Player.Speed <= 0 || c.Ghosts.Speed <= 0 {
		return fmt.Errorf("player and ghost speeds must be positive")
	}
	if c.Ghosts.BlinkAt < 0 || c.Ghosts.BlinkAt > 1 {
		return fmt.Errorf("ghosts.blink_at must be within [0, 1], got %v", c.Ghosts.BlinkAt)
	}
	for i, p := range c.Schedule {
		if p.Mode != "scatter" && p.Mode != "chase" {
			return fmt.Errorf("schedule[%d]: unknown mode %q", i, p.Mode)
		}
		if p.Seconds < 0 {
			return fmt.Errorf("schedule[%d]: negative duration", i)
		}
	}
	for i, pts := range c.Ghosts.Ladder {
		if pts <= 0 {
			return fmt.Errorf("ghosts.ladder[%d] must be positive, got %d", i, pts)
		}
	}
	switch c.Debug.Clock {
	case "", "tick", "wall":
	default:
		return fmt.Errorf("debug.clock must be tick or wall, got %q", c.Debug.Clock)
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

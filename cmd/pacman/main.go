// pacman is a terminal Pac-Man built on the arcade platform.
//
// Usage:
//
//	pacman list              - List available game modes
//	pacman play [mode]       - Play a mode (default: pacman)
//	pacman menu              - Start menu to pick modes interactively
//	pacman serve             - Start SSH server for remote play
//	pacman scores <mode>     - Show high scores for a mode
//	pacman mazes             - List playable mazes
//	pacman diag <mode>       - Show recorded collision and pickup diagnostics
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Custom pacman.yaml
//	--difficulty <name> - Difficulty preset
//	--mazes <dir>       - Extra maze directory
//	--log-file <path>   - Write game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMazeDir    string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "TUI Pac-Man - chase dots and dodge ghosts in your terminal",
	Long: `TUI Pac-Man runs the classic maze chase in the terminal. Four ghosts
alternate between scatter and chase, turn blue after a power pellet and
return to their house as eyes once eaten.

Available commands:
  list     - Show the game modes
  play     - Play directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  mazes    - List playable mazes
  diag     - Show recorded diagnostics

Examples:
  pacman play
  pacman play pacman_endless --difficulty hard
  pacman play --mazes ./my-mazes --maze 10-spiral
  pacman serve --ssh :2222
  pacman diag pacman`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pacman config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagMazeDir, "mazes", "", "Directory with extra maze YAML files")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(diagCmd)
}

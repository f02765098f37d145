package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagMaze     string
	flagPickMaze bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Pac-Man",
	Long: `Start playing. The mode is "pacman" (campaign through every maze)
or "pacman_endless" (mazes repeat and get harder with the score).

Controls:
  Arrows/WASD/hjkl - Steer
  P/Space/Esc      - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, longer frightened time
  normal - Default tuning
  hard   - Fewer lives, short frightened time, early house exits
  fixed  - No progression, stays at config's initial level

Examples:
  pacman play
  pacman play pacman_endless
  pacman play --difficulty easy
  pacman play --maze 02-mini
  pacman play --pick
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Maze ID to start on")
	playCmd.Flags().BoolVar(&flagPickMaze, "pick", false, "Choose the starting maze from a list")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "pacman"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available modes.")
		os.Exit(1)
	}

	closeLog, err := configureGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := runtimeConfig()

	startMaze := flagMaze
	if flagPickMaze {
		mazes, mazeErr := levels.All(flagMazeDir)
		if mazeErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading mazes: %v\n", mazeErr)
			os.Exit(1)
		}
		selection, selErr := tui.RunMazeSelector("Pac-Man", mazes, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if selection == nil {
			return
		}
		startMaze = selection.MazeID
	}
	pacman.SetStartMaze(startMaze)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

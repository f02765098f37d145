package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

var flagShowLayout bool

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List playable mazes",
	Long: `Shows the built-in mazes plus any found in the --mazes directory,
in play order. A file whose id matches a built-in maze replaces it.

Examples:
  pacman mazes
  pacman mazes --mazes ./my-mazes --layout`,
	Run: runMazes,
}

func init() {
	mazesCmd.Flags().BoolVar(&flagShowLayout, "layout", false, "Print each maze layout")
}

func runMazes(_ *cobra.Command, _ []string) {
	all, err := levels.All(flagMazeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mazes: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, lvl := range all {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-7s  %-6s  %-4s  %s\n", maxIDLen, "ID", "Size", "Pickups", "Ghosts", "Wrap", "Name")
	fmt.Printf("  %-*s  %-7s  %-7s  %-6s  %-4s  %s\n", maxIDLen, "--", "----", "-------", "------", "----", "----")

	for _, lvl := range all {
		m, err := lvl.Maze(core.DefaultMazeOptions())
		if err != nil {
			fmt.Printf("  %-*s  invalid: %v\n", maxIDLen, lvl.ID, err)
			continue
		}
		ghosts := len(lvl.GhostSpecs(m, 0))
		wrap := "no"
		if m.Wraps() {
			wrap = "yes"
		}
		size := fmt.Sprintf("%dx%d", m.Width(), m.Height())
		fmt.Printf("  %-*s  %-7s  %-7d  %-6d  %-4s  %s\n", maxIDLen, lvl.ID, size, m.PickupsLeft(), ghosts, wrap, lvl.Name)

		if flagShowLayout {
			fmt.Println()
			fmt.Println("    " + strings.Join(lvl.Layout, "\n    "))
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Run 'pacman play --maze <id>' to start on a maze.")
}

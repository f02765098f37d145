package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagDiagSessions int
	flagDiagKind     string
	flagDiagClear    bool
)

var diagCmd = &cobra.Command{
	Use:   "diag [mode]",
	Short: "Show recorded collision and pickup diagnostics",
	Long: `Print the ghost collision and pickup effect records journaled at the
end of recent games, newest session first.

Examples:
  pacman diag
  pacman diag pacman_endless --sessions 3
  pacman diag --kind collision
  pacman diag --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDiag,
}

func init() {
	diagCmd.Flags().IntVar(&flagDiagSessions, "sessions", 1, "Number of recent sessions to show")
	diagCmd.Flags().StringVar(&flagDiagKind, "kind", "", "Only show one kind: collision or effect")
	diagCmd.Flags().BoolVar(&flagDiagClear, "clear", false, "Delete the recorded diagnostics instead")
}

func runDiag(_ *cobra.Command, args []string) {
	gameID := "pacman"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDiagClear {
		if err := store.ClearDiagnostics(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing diagnostics: %v\n", err)
			return
		}
		fmt.Printf("Cleared diagnostics for %s.\n", gameID)
		return
	}

	entries, err := store.RecentDiagnostics(gameID, flagDiagSessions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving diagnostics: %v\n", err)
		return
	}

	if len(entries) == 0 {
		fmt.Println("No diagnostics recorded yet.")
		return
	}

	session := int64(-1)
	for _, e := range entries {
		if flagDiagKind != "" && e.Kind != flagDiagKind {
			continue
		}
		if e.Session != session {
			session = e.Session
			fmt.Printf("\nSession %d\n", session)
			fmt.Printf("  %-12s  %-9s  %-7s  %-10s  %-8s  %-8s  %s\n", "Time", "Kind", "Ghost", "Mode", "Player", "Ghost@", "Detail")
		}
		fmt.Printf("  %-12s  %-9s  %-7s  %-10s  %-8s  %-8s  %s\n",
			e.At.Format("15:04:05.000"), e.Kind, dash(e.Ghost), dash(e.Mode), dash(e.PlayerCell), dash(e.GhostCell), e.Detail)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

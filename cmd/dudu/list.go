package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woodriveer/duduInSpace-sub000/internal/registry"
	"github.com/woodriveer/duduInSpace-sub000/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows every registered game mode with its best score.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			logger.Warn("cannot read game stats", "error", err)
		}
		store.Close()
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "----")

	for _, g := range games {
		best := "-"
		if s, ok := stats[g.ID]; ok && s.GamesCount > 0 {
			best = fmt.Sprint(s.HighScore)
		}
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, g.ID, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'dudu play' or 'dudu play --endless' to start.")
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/games/shooter"
	"github.com/woodriveer/duduInSpace-sub000/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the campaign levels from the active level config together with
their boss and whether you have completed them.

Examples:
  dudu levels
  dudu levels --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	setup := loadSetup()

	var prefs core.Prefs = core.NewMemoryPrefs()
	if store, err := storage.Open(flagDBPath); err == nil {
		defer store.Close()
		prefs = store
	} else {
		logger.Warn("could not open database, showing no progress", "error", err)
	}

	fmt.Printf("  %-3s  %-20s  %-6s  %-7s  %-20s  %s\n", "#", "Name", "Kills", "Boss", "Enemies", "Done")
	fmt.Printf("  %-3s  %-20s  %-6s  %-7s  %-20s  %s\n", "-", "----", "-----", "----", "-------", "----")

	for _, n := range setup.Levels.Numbers() {
		lvl, err := setup.Levels.Level(n)
		if err != nil {
			continue
		}

		enemies := make([]string, 0, len(lvl.EnemyTypes))
		for _, t := range lvl.EnemyTypes {
			enemies = append(enemies, t.String())
		}
		if len(enemies) == 0 {
			enemies = append(enemies, "all")
		}
		if len(lvl.Waves) > 0 {
			enemies = append(enemies, fmt.Sprintf("+%d waves", len(lvl.Waves)))
		}

		done := ""
		if shooter.LevelCompleted(prefs, n) {
			done = "yes"
		}

		fmt.Printf("  %-3d  %-20s  %-6d  %-7s  %-20s  %s\n",
			n, lvl.Name, lvl.BossThreshold, lvl.BossPattern, strings.Join(enemies, ","), done)
	}

	fmt.Println()
	fmt.Printf("Best level: %d\n", prefs.Int(shooter.PrefBestLevel, 0))
}

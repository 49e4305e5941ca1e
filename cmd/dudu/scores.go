package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/woodriveer/duduInSpace-sub000/internal/registry"
	"github.com/woodriveer/duduInSpace-sub000/internal/storage"
)

var (
	flagRuns  bool
	flagAll   bool
	flagRunID string
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores for a mode (default: shooter).

Examples:
  dudu scores
  dudu scores shooter_endless
  dudu scores --all
  dudu scores --runs
  dudu scores --run 4b0e8c1e-...
  dudu scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of top scores")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "shooter"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dudu list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRunID != "":
		err = printRun(store, flagRunID)
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s\n", title)
		}
	case flagRuns:
		err = printRuns(store, gameID, title)
	default:
		err = printScores(store, gameID, title)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	var scores []storage.ScoreEntry
	var err error
	if flagAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dudu play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

func printRuns(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-5s  %-8s  %-5s  %-5s  %-6s  %-8s  %s\n", "Level", "Score", "Kills", "Coins", "Result", "Time", "ID")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-8d  %-5d  %-5d  %-6s  %-8s  %s\n",
			r.LevelReached, r.Score, r.Kills, r.Coins, result(r.Won),
			(time.Duration(r.Duration) * time.Second).String(), r.RunID)
	}
	return nil
}

func printRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", r.RunID)
	fmt.Printf("  Mode:     %s\n", r.GameID)
	fmt.Printf("  Level:    %d\n", r.LevelReached)
	fmt.Printf("  Score:    %d\n", r.Score)
	fmt.Printf("  Kills:    %d\n", r.Kills)
	fmt.Printf("  Coins:    %d\n", r.Coins)
	fmt.Printf("  Result:   %s\n", result(r.Won))
	fmt.Printf("  Duration: %s\n", time.Duration(r.Duration)*time.Second)
	fmt.Printf("  Date:     %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func result(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

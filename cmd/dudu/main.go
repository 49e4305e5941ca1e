// dudu is a vertical space shooter that runs in the terminal.
//
// Usage:
//
//	dudu                    - Start the menu (same as "dudu menu")
//	dudu play               - Start a campaign run directly
//	dudu play --endless     - Start an endless run
//	dudu serve              - Start SSH server for remote play
//	dudu scores             - Show high scores and recent runs
//	dudu levels             - List campaign levels
//	dudu upgrades           - List or buy permanent upgrades
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.dudu/dudu.db)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woodriveer/duduInSpace-sub000/internal/games/shooter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Shared game flags
	flagConfig     string
	flagLevels     string
	flagDifficulty string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dudu",
	Short: "Dudu in Space - a space shooter in your terminal",
	Long: `Dudu in Space is a vertical space shooter for the terminal.

Shoot asteroids, UFOs and space ships until the boss shows up, beat it
and move on to the next level. Coins earned in every run buy permanent
upgrades.

Available commands:
  menu      - Interactive menu (default)
  play      - Start a run directly
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  levels    - List campaign levels
  upgrades  - List or buy upgrades

Examples:
  dudu
  dudu play --level 2
  dudu play --endless --difficulty hard
  dudu serve --ssh :2222
  dudu upgrades buy damage`,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dudu/dudu.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to custom levels YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(upgradesCmd)
}

// setup configures logging and hands the shared game flags to the shooter.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dudu",
		Level:           level,
	})
	shooter.SetLogger(logger)

	shooter.SetConfigPath(flagConfig)
	shooter.SetLevelsPath(flagLevels)
	shooter.SetDifficultyPreset(flagDifficulty)
	return nil
}

// loadSetup loads the game configuration or exits with its error.
func loadSetup() shooter.Setup {
	s, err := shooter.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	return s
}

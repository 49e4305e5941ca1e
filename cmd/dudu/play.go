package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/games/shooter"
	"github.com/woodriveer/duduInSpace-sub000/internal/platform/tui"
	"github.com/woodriveer/duduInSpace-sub000/internal/registry"
	"github.com/woodriveer/duduInSpace-sub000/internal/storage"
)

var (
	flagEndless bool
	flagLevel   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run directly, skipping the menu.

Controls:
  A/D or Left/Right  - Move
  Space/W/Up         - Fire
  P                  - Pause
  R                  - Restart (after game over)
  Enter              - Retry the level (campaign, after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower enemies, gentle ramp
  normal - Default settings
  hard   - Faster enemies from the start
  fixed  - No difficulty ramp

Examples:
  dudu play
  dudu play --level 2
  dudu play --endless --difficulty hard
  dudu play --config ./my-game.yaml --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode instead of the campaign")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start on (0 = first)")
}

// terminalConfig builds a runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	shooter.SetStartLevel(flagLevel)

	// Fail before taking over the terminal
	loadSetup()

	gameID := "shooter"
	if flagEndless {
		gameID = "shooter_endless"
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not persist", "error", err)
		store = nil
	} else {
		store.SetLogger(logger)
	}

	runErr := tui.Run(game, store, terminalConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

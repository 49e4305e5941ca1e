package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woodriveer/duduInSpace-sub000/internal/platform/tui"
	"github.com/woodriveer/duduInSpace-sub000/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Dudu in Space in interactive menu mode.

Pick a campaign level, play endless mode, spend coins in the upgrade
shop or browse scores. After a run ends, press Esc to return here.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Pick the campaign start level
  Enter/Space   - Select
  Q             - Quit

Examples:
  dudu menu
  dudu menu --fps 30
  dudu menu --db ./dudu.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	setup := loadSetup()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not persist", "error", err)
		store = nil
	} else {
		store.SetLogger(logger)
	}

	runErr := tui.RunSession(terminalConfig(), tui.SessionOptions{
		Store:  store,
		Setup:  setup,
		Logger: logger,
		User:   os.Getenv("USER"),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

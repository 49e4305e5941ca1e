package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woodriveer/duduInSpace-sub000/internal/games/shooter"
	"github.com/woodriveer/duduInSpace-sub000/internal/storage"
)

var upgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "List permanent upgrades",
	Long: `Shows every upgrade track, its level and the cost of the next level.
Coins are earned in runs and kept between them.

Examples:
  dudu upgrades
  dudu upgrades buy damage`,
	Args: cobra.NoArgs,
	Run:  runUpgrades,
}

var upgradesBuyCmd = &cobra.Command{
	Use:   "buy <speed|damage|bullet_size|fire_rate>",
	Short: "Buy the next level of an upgrade",
	Args:  cobra.ExactArgs(1),
	Run:   runUpgradesBuy,
}

func init() {
	upgradesCmd.AddCommand(upgradesBuyCmd)
}

func openPrefs() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runUpgrades(_ *cobra.Command, _ []string) {
	setup := loadSetup()
	store := openPrefs()
	defer store.Close()

	fmt.Printf("Coins: %d\n", store.Int(shooter.PrefCoins, 0))
	fmt.Println()
	fmt.Printf("  %-12s  %-7s  %s\n", "Upgrade", "Level", "Next")
	fmt.Printf("  %-12s  %-7s  %s\n", "-------", "-----", "----")

	for _, kind := range shooter.AllUpgradeKinds {
		level := setup.Upgrades.Level(store, kind)
		next := "max"
		if cost, err := setup.Upgrades.Cost(store, kind); err == nil {
			next = fmt.Sprintf("%d coins", cost)
		}
		fmt.Printf("  %-12s  %d/%-5d  %s\n", kind, level, setup.Upgrades.MaxLevel(kind), next)
	}
}

func runUpgradesBuy(_ *cobra.Command, args []string) {
	kind, err := shooter.ParseUpgradeKind(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setup := loadSetup()
	store := openPrefs()
	defer store.Close()

	cost, _ := setup.Upgrades.Cost(store, kind)
	if err := setup.Upgrades.Purchase(store, kind); err != nil {
		switch {
		case errors.Is(err, shooter.ErrInsufficientFunds):
			fmt.Fprintf(os.Stderr, "Not enough coins: %s costs %d, you have %d\n",
				kind, cost, store.Int(shooter.PrefCoins, 0))
		case errors.Is(err, shooter.ErrMaxLevel):
			fmt.Fprintf(os.Stderr, "%s is already at max level\n", kind)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Bought %s level %d for %d coins (%d left)\n",
		kind, setup.Upgrades.Level(store, kind), cost, store.Int(shooter.PrefCoins, 0))
}

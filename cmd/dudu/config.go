package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
)

var flagInstall bool

var configCmd = &cobra.Command{
	Use:   "config <shooter|levels>",
	Short: "Print a default config file",
	Long: `Print the built-in default for a config file. Edit a copy and pass it
with --config / --levels, or install it to ~/.dudu/configs where it is
picked up automatically.

Examples:
  dudu config shooter > my-game.yaml
  dudu config levels --install`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"shooter", "levels"},
	Run:       runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInstall, "install", false, "Write the file to ~/.dudu/configs instead of stdout")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown config %q (want shooter or levels)\n", args[0])
		os.Exit(1)
	}

	if !flagInstall {
		os.Stdout.Write(data)
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot get home directory: %v\n", err)
		os.Exit(1)
	}
	path := filepath.Join(home, ".dudu", "configs", args[0]+".yaml")
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //#nosec G306 -- config file is not secret
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

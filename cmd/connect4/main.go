// connect4 is a terminal connect-four platform: a rules engine with a
// Bubble Tea front end, pluggable move providers, match history, and
// an SSH server for remote play.
//
// Usage:
//
//	connect4 play                - Play a match in the terminal
//	connect4 providers           - List available move providers
//	connect4 history             - Show recent match results
//	connect4 serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Match history database (default: ~/.connect4/matches.db)
//	--seed <value>   - RNG seed for automated providers (0 = time-based)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import providers to register them
	_ "github.com/vovakirdan/tui-connect4/internal/player"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - play four-in-a-row in your terminal",
	Long: `Connect Four is a terminal platform for the classic vertical
four-in-a-row game. Black moves first; drop pieces into columns and
connect four horizontally, vertically, or diagonally.

Available commands:
  play       - Play a match (human or automated on either side)
  providers  - Show all registered move providers
  history    - View recent match results and statistics
  serve      - Start SSH server for remote play

Examples:
  connect4 play
  connect4 play --white random
  connect4 play --black random --white random --seed 42
  connect4 history
  connect4 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for automated providers (0 = time-based)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	flagLimit         int
	flagHistoryPlain  bool
	flagHistoryClear  bool
	flagProviderStats string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent match results",
	Long: `Display recent matches and aggregate statistics.

Examples:
  connect4 history
  connect4 history --plain --limit 5
  connect4 history --provider random
  connect4 history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to show in plain mode")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print the history instead of the full-screen UI")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches")
	historyCmd.Flags().StringVar(&flagProviderStats, "provider", "", "Show win/loss/draw record for a provider")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	if flagProviderStats != "" {
		if !registry.Exists(flagProviderStats) {
			fmt.Fprintf(os.Stderr, "Error: unknown provider %q\n", flagProviderStats)
			fmt.Fprintln(os.Stderr, "Run 'connect4 providers' to see available providers.")
			os.Exit(1)
		}
		wins, losses, draws, statsErr := store.ProviderStats(flagProviderStats)
		if statsErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", statsErr)
			os.Exit(1)
		}
		fmt.Printf("Record for %q: %d wins, %d losses, %d draws\n",
			flagProviderStats, wins, losses, draws)
		return
	}

	if flagHistoryPlain {
		printHistory(store, flagLimit)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store, limit int) {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'connect4 play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-10s  %-6s  %s\n", "When", "Black", "White", "Winner", "Moves")
	fmt.Printf("  %-16s  %-10s  %-10s  %-6s  %s\n", "----", "-----", "-----", "------", "-----")

	for _, m := range matches {
		fmt.Printf("  %-16s  %-10s  %-10s  %-6s  %d\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Black, m.White, m.Winner, m.Moves)
	}

	stats, err := store.MatchStats()
	if err == nil && stats.Matches > 0 {
		fmt.Println()
		fmt.Printf("Total: %d matches (Black %d, White %d, draws %d), %.1f moves on average\n",
			stats.Matches, stats.BlackWins, stats.WhiteWins, stats.Draws, stats.AvgMoves)
	}
}

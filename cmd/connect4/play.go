package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	flagBlack string
	flagWhite string
	flagPlain bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a connect-four match. Black moves first.

Either side can be a human at the keyboard or an automated provider;
pick providers with --black and --white (run 'connect4 providers' to
see what is registered).

Controls:
  Left/H/A    - Move cursor left
  Right/L/D   - Move cursor right
  Enter/Space - Drop piece
  1-7         - Drop directly into a column
  R           - Restart (after the match ends)
  Q/Ctrl+C    - Quit

Examples:
  connect4 play
  connect4 play --white random
  connect4 play --black random --white random --seed 42
  connect4 play --plain`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBlack, "black", "", "Move provider for Black (overrides config)")
	playCmd.Flags().StringVar(&flagWhite, "white", "", "Move provider for White (overrides config)")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Plain line-mode play instead of the full-screen UI")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	blackName := cfg.Players.Black
	if flagBlack != "" {
		blackName = flagBlack
	}
	whiteName := cfg.Players.White
	if flagWhite != "" {
		whiteName = flagWhite
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	black, err := registry.Create(blackName, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'connect4 providers' to see available providers.")
		os.Exit(1)
	}
	white, err := registry.Create(whiteName, seed+1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'connect4 providers' to see available providers.")
		os.Exit(1)
	}

	// Open match storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	var runErr error
	if flagPlain {
		runErr = tui.RunPrompt(tui.PromptOptions{
			Black: black,
			White: white,
			In:    os.Stdin,
			Out:   os.Stdout,
			Store: store,
		})
	} else {
		// Get terminal size for the screen buffer
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		runErr = tui.Run(tui.MatchOptions{
			Black:      black,
			White:      white,
			Theme:      cfg.Theme,
			ThinkDelay: time.Duration(cfg.Match.ThinkDelayMS) * time.Millisecond,
			Runtime: core.RuntimeConfig{
				ScreenW: width,
				ScreenH: height,
				Seed:    seed,
			},
			Store: store,
		})
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}

// dbPath resolves the database path: the --db flag wins over config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}

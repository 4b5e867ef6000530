package tui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-connect4/internal/game"
	"github.com/vovakirdan/tui-connect4/internal/player"
	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

// PromptOptions configures a plain-terminal match.
type PromptOptions struct {
	Black registry.Provider
	White registry.Provider
	In    io.Reader
	Out   io.Writer
	Store *storage.Store // May be nil
}

// RunPrompt plays one match as a plain read-print loop without any
// TUI: the board is printed between turns, human moves are read as
// 1-based column numbers, and invalid or rejected input re-prompts
// without advancing the turn. Useful for dumb terminals and scripts.
func RunPrompt(opts PromptOptions) error {
	g := game.New()
	scanner := bufio.NewScanner(opts.In)
	started := time.Now()
	moves := 0

	providerFor := func(o game.Owner) registry.Provider {
		if o == game.Black {
			return opts.Black
		}
		return opts.White
	}

	for !g.Over() {
		fmt.Fprintln(opts.Out, g.Board())

		current := g.Player()
		p := providerFor(current)

		var move game.Move
		if player.IsHuman(p) {
			m, err := askHuman(g, scanner, opts.Out)
			if err != nil {
				return err
			}
			move = m
		} else {
			m, ok := p.ChooseMove(g)
			if !ok {
				break
			}
			move = m
			fmt.Fprintf(opts.Out, "[%c] %s plays %s\n", current.Glyph(), p.Name(), m)
		}

		if !g.Play(move) {
			fmt.Fprintf(opts.Out, "error: column %s is full\n", move)
			continue
		}
		moves++
	}

	fmt.Fprintln(opts.Out, g.Board())
	rec := storage.MatchRecord{
		Black:    opts.Black.Name(),
		White:    opts.White.Name(),
		Winner:   storage.ResultDraw,
		Moves:    moves,
		Duration: int(time.Since(started).Seconds()),
	}
	if owner, won := g.Winner(); won {
		fmt.Fprintf(opts.Out, "%c %s wins!\n", owner.Glyph(), owner)
		if owner == game.Black {
			rec.Winner = storage.ResultBlackWin
		} else {
			rec.Winner = storage.ResultWhiteWin
		}
	} else {
		fmt.Fprintln(opts.Out, "Draw - the board is full.")
	}

	if opts.Store != nil {
		//nolint:errcheck // Best-effort save
		opts.Store.SaveMatch(rec)
	}
	return nil
}

// askHuman prompts until the user enters a legal column.
func askHuman(g *game.Game, scanner *bufio.Scanner, out io.Writer) (game.Move, error) {
	legal := g.LegalMoves()
	cols := make([]string, 0, len(legal))
	for _, m := range legal {
		cols = append(cols, m.String())
	}
	fmt.Fprintf(out, "Available columns: %s\n", strings.Join(cols, " "))

	for {
		fmt.Fprintf(out, "[%c] >> ", g.Player().Glyph())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return game.Move{}, fmt.Errorf("tui: reading move: %w", err)
			}
			return game.Move{}, io.ErrUnexpectedEOF
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(out, "error: invalid input")
			continue
		}

		move, ok := game.NewMove(g.Player(), n-1)
		if !ok {
			fmt.Fprintf(out, "error: column must be 1-%d\n", game.Cols)
			continue
		}
		return move, nil
	}
}

// Package player implements the built-in move providers: a human
// marker whose moves come from the input layer, and a seeded random
// picker for unattended play. Stronger strategies are deliberately out
// of scope; providers only consume the engine's legal-move list.
package player

import (
	"math/rand"

	"github.com/vovakirdan/tui-connect4/internal/game"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

func init() {
	registry.Register("human", func(int64) registry.Provider {
		return &Human{}
	})
	registry.Register("random", func(seed int64) registry.Provider {
		return NewRandom(seed)
	})
}

// Human is a marker provider: it never chooses a move itself.
// The platform recognizes it and sources moves from keyboard input.
type Human struct{}

// Name returns "human".
func (h *Human) Name() string {
	return "human"
}

// ChooseMove always declines; the input layer supplies human moves.
func (h *Human) ChooseMove(*game.Game) (game.Move, bool) {
	return game.Move{}, false
}

// Random picks uniformly among the legal moves of the current player.
// With a fixed seed a whole match against another seeded provider is
// reproducible.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random provider seeded with the given value.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Name returns "random".
func (r *Random) Name() string {
	return "random"
}

// ChooseMove returns one of the legal moves, or ok=false when the
// board has none left.
func (r *Random) ChooseMove(g *game.Game) (game.Move, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}

// IsHuman reports whether the provider's moves come from user input.
func IsHuman(p registry.Provider) bool {
	_, ok := p.(*Human)
	return ok
}

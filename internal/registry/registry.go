// Package registry provides a global registry for move-provider
// factories. Providers register themselves in init() functions, so the
// CLI and the platform can look them up by name without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-connect4/internal/game"
)

// Provider produces moves for whichever owner is on turn. It is the
// single capability the engine's orchestration needs from a player:
// given the observable game state, choose a Move. The engine itself
// never depends on input devices or strategies.
type Provider interface {
	// Name returns the provider's registered name (e.g. "random").
	Name() string

	// ChooseMove picks a move for the game's current player.
	// It returns ok=false when the provider cannot choose on its own;
	// the platform then sources the move elsewhere (keyboard input for
	// the human provider, or a finished game for any provider).
	ChooseMove(g *game.Game) (game.Move, bool)
}

// Factory creates a provider instance. The seed feeds any randomness
// the provider uses, keeping matches reproducible.
type Factory func(seed int64) Provider

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a provider factory under the given name.
// Typically called from a provider's init() function.
// Panics if the name is already taken.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: provider %q already registered", name))
	}
	factories[name] = f
}

// List returns the names of all registered providers, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create instantiates a provider by name.
// Returns an error if the name is not registered.
func Create(name string, seed int64) (Provider, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown provider %q", name)
	}
	return f(seed), nil
}

// Exists checks if a provider with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

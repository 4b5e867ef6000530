package player

import (
	"testing"

	"github.com/vovakirdan/tui-connect4/internal/game"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

func TestRandomDeterminism(t *testing.T) {
	// Two providers with the same seed drive identical games.
	g1 := game.New()
	g2 := game.New()
	p1 := NewRandom(12345)
	p2 := NewRandom(12345)

	for i := 0; i < 20 && !g1.Over(); i++ {
		m1, ok1 := p1.ChooseMove(g1)
		m2, ok2 := p2.ChooseMove(g2)
		if ok1 != ok2 || m1.Col() != m2.Col() {
			t.Fatalf("Move %d diverged: %v/%v vs %v/%v", i, m1, ok1, m2, ok2)
		}
		if ok1 {
			g1.Play(m1)
			g2.Play(m2)
		}
	}
}

func TestRandomChoosesLegalMoves(t *testing.T) {
	g := game.New()
	p := NewRandom(42)

	for i := 0; i < 42 && !g.Over(); i++ {
		m, ok := p.ChooseMove(g)
		if !ok {
			t.Fatalf("Provider declined with legal moves available at move %d", i)
		}
		if m.Owner() != g.Player() {
			t.Fatalf("Chosen move carries %v, current player is %v", m.Owner(), g.Player())
		}
		if !g.Play(m) {
			t.Fatalf("Engine rejected a supposedly legal move %v", m)
		}
	}
}

func TestRandomFullColumnAvoided(t *testing.T) {
	g := game.New()
	// Fill column 0 completely.
	for i := 0; i < game.Rows; i++ {
		m, _ := game.NewMove(g.Player(), 0)
		if !g.Play(m) {
			t.Fatalf("Setup drop %d failed", i)
		}
	}

	p := NewRandom(7)
	for i := 0; i < 50; i++ {
		m, ok := p.ChooseMove(g)
		if !ok {
			t.Fatal("Provider should still find moves")
		}
		if m.Col() == 0 {
			t.Fatal("Provider chose the full column")
		}
	}
}

func TestHumanDeclines(t *testing.T) {
	h := &Human{}
	if _, ok := h.ChooseMove(game.New()); ok {
		t.Error("Human provider should never choose a move itself")
	}
	if !IsHuman(h) {
		t.Error("IsHuman should recognize the human provider")
	}
	if IsHuman(NewRandom(1)) {
		t.Error("IsHuman should reject the random provider")
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"human", "random"} {
		if !registry.Exists(name) {
			t.Errorf("Provider %q should be registered", name)
		}
		p, err := registry.Create(name, 1)
		if err != nil {
			t.Errorf("Create(%q) failed: %v", name, err)
			continue
		}
		if p.Name() != name {
			t.Errorf("Provider name = %q, want %q", p.Name(), name)
		}
	}

	if _, err := registry.Create("minimax", 1); err == nil {
		t.Error("Create of an unknown provider should fail")
	}
}

package game

import "testing"

func TestNewGameStartsWithBlack(t *testing.T) {
	g := New()
	if g.Player() != Black {
		t.Errorf("New game should start with Black, got %v", g.Player())
	}
	if g.Over() {
		t.Error("New game should not be over")
	}
	if len(g.LegalMoves()) != Cols {
		t.Errorf("New game should offer %d moves, got %d", Cols, len(g.LegalMoves()))
	}
}

func TestPlayRejectsWrongOwner(t *testing.T) {
	g := New()

	m := mustMove(t, White, 3)
	if g.Play(m) {
		t.Fatal("Play should reject a move by the owner not on turn")
	}
	if g.Player() != Black {
		t.Error("Rejected move should not advance the turn")
	}
	if g.Board().Cell(0, 3).Taken() {
		t.Error("Rejected move should not touch the board")
	}
}

func TestPlayAdvancesTurn(t *testing.T) {
	g := New()

	if !g.Play(mustMove(t, Black, 0)) {
		t.Fatal("Legal move should succeed")
	}
	if g.Player() != White {
		t.Errorf("After Black's move it should be White's turn, got %v", g.Player())
	}

	if !g.Play(mustMove(t, White, 0)) {
		t.Fatal("Legal move should succeed")
	}
	if g.Player() != Black {
		t.Errorf("After White's move it should be Black's turn, got %v", g.Player())
	}
}

func TestPlayFullColumnKeepsTurn(t *testing.T) {
	g := New()
	// Fill column 0 with six alternating drops.
	for i := 0; i < Rows; i++ {
		if !g.Play(mustMove(t, g.Player(), 0)) {
			t.Fatalf("Drop %d failed", i)
		}
	}

	before := g.Player()
	if g.Play(mustMove(t, before, 0)) {
		t.Fatal("Drop into a full column should fail")
	}
	if g.Player() != before {
		t.Error("Failed drop should leave the turn with the same player")
	}
}

func TestVerticalWinThroughPlay(t *testing.T) {
	g := New()
	// Black stacks column 3, White answers in column 0.
	cols := []int{3, 0, 3, 0, 3, 0, 3}
	for i, col := range cols {
		if !g.Play(mustMove(t, g.Player(), col)) {
			t.Fatalf("Move %d into column %d failed", i, col)
		}
	}

	owner, won := g.Winner()
	if !won || owner != Black {
		t.Fatalf("Winner() = %v, %v, want Black win", owner, won)
	}
	if !g.Over() {
		t.Error("Won game should be over")
	}
}

func TestNoWinnerBeforeFourPieces(t *testing.T) {
	g := New()
	cols := []int{3, 0, 4, 1, 5, 2}
	for _, col := range cols {
		g.Play(mustMove(t, g.Player(), col))
		if _, won := g.Winner(); won {
			t.Fatalf("No winner should exist before anyone has four pieces")
		}
	}
}

func TestLegalMovesCarryCurrentPlayer(t *testing.T) {
	g := New()
	g.Play(mustMove(t, Black, 2))

	for _, m := range g.LegalMoves() {
		if m.Owner() != White {
			t.Fatalf("Legal move owner = %v, want current player White", m.Owner())
		}
	}
}

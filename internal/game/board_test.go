package game

import (
	"strings"
	"testing"
)

// mustMove builds a move or fails the test.
func mustMove(t *testing.T, owner Owner, col int) Move {
	t.Helper()
	m, ok := NewMove(owner, col)
	if !ok {
		t.Fatalf("NewMove(%v, %d) unexpectedly failed", owner, col)
	}
	return m
}

// fillColumn drops alternating pieces until the column is full.
func fillColumn(t *testing.T, b *Board, col int) {
	t.Helper()
	for row := 0; row < Rows; row++ {
		owner := Black
		if row%2 == 1 {
			owner = White
		}
		if !b.Apply(mustMove(t, owner, col)) {
			t.Fatalf("Apply to column %d failed at row %d", col, row)
		}
	}
}

func TestEmptyBoard(t *testing.T) {
	b := NewBoard()

	moves := b.LegalMoves(Black)
	if len(moves) != Cols {
		t.Fatalf("Empty board should have %d legal moves, got %d", Cols, len(moves))
	}
	for i, m := range moves {
		if m.Col() != i {
			t.Errorf("Move %d should target column %d, got %d", i, i, m.Col())
		}
		if m.Owner() != Black {
			t.Errorf("Move %d should carry Black, got %v", i, m.Owner())
		}
	}

	if b.Over() {
		t.Error("Empty board should not be over")
	}
	if _, won := b.Winner(); won {
		t.Error("Empty board should have no winner")
	}
}

func TestApplyGravity(t *testing.T) {
	b := NewBoard()

	// Pieces stack bottom-up within a column.
	for want := 0; want < 3; want++ {
		if !b.Apply(mustMove(t, Black, 4)) {
			t.Fatalf("Apply %d failed", want)
		}
		if got := b.Cell(want, 4); got != OccupiedBy(Black) {
			t.Errorf("Piece %d should land at row %d, cell is %v", want, want, got)
		}
	}
	if b.Cell(3, 4).Taken() {
		t.Error("Row above the stack should still be empty")
	}
}

func TestApplyFullColumn(t *testing.T) {
	b := NewBoard()
	fillColumn(t, b, 0)

	before := *b
	if b.Apply(mustMove(t, White, 0)) {
		t.Fatal("Apply into a full column should fail")
	}
	if before != *b {
		t.Error("Failed apply should leave the grid unchanged")
	}
}

func TestLegalMovesSkipFullColumns(t *testing.T) {
	b := NewBoard()
	fillColumn(t, b, 3)

	moves := b.LegalMoves(White)
	if len(moves) != Cols-1 {
		t.Fatalf("Expected %d legal moves, got %d", Cols-1, len(moves))
	}
	prev := -1
	for _, m := range moves {
		if m.Col() == 3 {
			t.Error("Full column 3 should be omitted from legal moves")
		}
		if m.Col() <= prev {
			t.Error("Legal moves should list columns in ascending order")
		}
		prev = m.Col()
	}
}

func TestWinnerHorizontal(t *testing.T) {
	b := NewBoard()
	for col := 1; col <= 4; col++ {
		b.Apply(mustMove(t, White, col))
	}

	owner, won := b.Winner()
	if !won || owner != White {
		t.Errorf("Winner() = %v, %v, want White win", owner, won)
	}
	if !b.Over() {
		t.Error("Board with a winner should be over")
	}
}

func TestWinnerVertical(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 4; i++ {
		b.Apply(mustMove(t, Black, 6))
	}

	owner, won := b.Winner()
	if !won || owner != Black {
		t.Errorf("Winner() = %v, %v, want Black win", owner, won)
	}
}

func TestWinnerDiagonalUpRight(t *testing.T) {
	b := NewBoard()
	// Black at (0,0),(1,1),(2,2),(3,3); White filler below.
	for col := 0; col < 4; col++ {
		for row := 0; row < col; row++ {
			b.grid[row][col] = OccupiedBy(White)
		}
		b.grid[col][col] = OccupiedBy(Black)
	}

	owner, won := b.Winner()
	if !won || owner != Black {
		t.Errorf("Winner() = %v, %v, want Black diagonal win", owner, won)
	}
}

func TestWinnerDiagonalUpLeft(t *testing.T) {
	b := NewBoard()
	// White at (0,6),(1,5),(2,4),(3,3); Black filler below.
	for i := 0; i < 4; i++ {
		col := 6 - i
		for row := 0; row < i; row++ {
			b.grid[row][col] = OccupiedBy(Black)
		}
		b.grid[i][col] = OccupiedBy(White)
	}

	owner, won := b.Winner()
	if !won || owner != White {
		t.Errorf("Winner() = %v, %v, want White anti-diagonal win", owner, won)
	}
}

func TestThreeInARowIsNotAWin(t *testing.T) {
	b := NewBoard()
	for col := 0; col < 3; col++ {
		b.Apply(mustMove(t, Black, col))
	}
	for i := 0; i < 3; i++ {
		b.Apply(mustMove(t, White, 5))
	}

	if _, won := b.Winner(); won {
		t.Error("Three in a row should not win")
	}
}

// drawGrid fills the board with a complete position containing no
// four-in-a-row: alternating-glyph rows, flipped every two rows.
func drawGrid(b *Board) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			owner := Black
			if (col+(row/2))%2 == 1 {
				owner = White
			}
			b.grid[row][col] = OccupiedBy(owner)
		}
	}
}

func TestDrawFullBoardNoWinner(t *testing.T) {
	b := NewBoard()
	drawGrid(b)

	if _, won := b.Winner(); won {
		t.Fatal("Draw position should have no winner")
	}
	if !b.Over() {
		t.Error("Full board should be over")
	}
	if len(b.LegalMoves(Black)) != 0 {
		t.Error("Full board should have no legal moves")
	}
}

func TestWinnerIdempotent(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 4; i++ {
		b.Apply(mustMove(t, White, 2))
	}

	o1, w1 := b.Winner()
	o2, w2 := b.Winner()
	if o1 != o2 || w1 != w2 {
		t.Error("Winner() should return identical results on repeated calls")
	}
	if b.Over() != b.Over() {
		t.Error("Over() should return identical results on repeated calls")
	}
}

func TestClone(t *testing.T) {
	b := NewBoard()
	b.Apply(mustMove(t, Black, 3))

	clone := b.Clone()
	clone.Apply(mustMove(t, White, 3))

	if b.Cell(1, 3).Taken() {
		t.Error("Mutating a clone should not affect the original")
	}
	if clone.Cell(1, 3) != OccupiedBy(White) {
		t.Error("Clone should accept moves independently")
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	b.Apply(mustMove(t, Black, 0))
	b.Apply(mustMove(t, White, 6))

	out := b.String()
	lines := strings.Split(out, "\n")
	if len(lines) != Rows+4 {
		t.Fatalf("Rendered board should have %d lines, got %d", Rows+4, len(lines))
	}
	if !strings.Contains(lines[1], "1 2 3 4 5 6 7") {
		t.Errorf("Header line should number the columns, got %q", lines[1])
	}
	bottom := lines[len(lines)-2]
	if !strings.ContainsRune(bottom, '●') || !strings.ContainsRune(bottom, '○') {
		t.Errorf("Bottom row should show both dropped pieces, got %q", bottom)
	}
	if strings.ContainsRune(lines[3], '●') {
		t.Error("Top row should be empty after two drops")
	}
}

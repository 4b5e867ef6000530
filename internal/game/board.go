// Package game implements the rules of vertical four-in-a-row: board
// state, legal-move enumeration, gravity drops, turn keeping, and
// win/draw detection. It contains pure logic with no external
// dependencies; input, rendering, and match orchestration live in the
// platform layer.
package game

import "strings"

// Board dimensions and the winning run length. Rows are indexed from
// the bottom (0) to the top (Rows-1).
const (
	Rows  = 6
	Cols  = 7
	toWin = 4
)

// Board owns the grid of cells and applies gravity drops to it.
// It is agnostic to turn order; enforcing whose turn it is belongs to
// the owning Game.
type Board struct {
	grid [Rows][Cols]Cell
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Cell returns the cell at the given position.
// Out-of-range positions read as Empty.
func (b *Board) Cell(row, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Empty
	}
	return b.grid[row][col]
}

// LegalMoves returns one move per non-full column, in ascending column
// order, each carrying the given owner. A column is full exactly when
// its top cell is taken. The result is recomputed on every call.
func (b *Board) LegalMoves(owner Owner) []Move {
	moves := make([]Move, 0, Cols)
	for col := 0; col < Cols; col++ {
		if b.grid[Rows-1][col].Taken() {
			continue
		}
		m, ok := NewMove(owner, col)
		if !ok {
			// col is always in range here
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// Apply drops the move's piece into its column: the piece settles in
// the lowest empty cell. Returns false and leaves the board unchanged
// when the column is full. This is the only mutator of board state.
func (b *Board) Apply(m Move) bool {
	for row := 0; row < Rows; row++ {
		if !b.grid[row][m.col].Taken() {
			b.grid[row][m.col] = OccupiedBy(m.owner)
			return true
		}
	}
	return false
}

// Over reports whether the game is finished: the top row is entirely
// taken (board full) or some owner has four in a row. It is a pure
// function of the grid and is evaluated freshly each call.
func (b *Board) Over() bool {
	full := true
	for col := 0; col < Cols; col++ {
		if !b.grid[Rows-1][col].Taken() {
			full = false
			break
		}
	}
	if full {
		return true
	}
	_, won := b.Winner()
	return won
}

// coord addresses one grid cell while walking lines.
type coord struct {
	row, col int
}

// lines enumerates every maximal straight line of the grid: all rows,
// all columns, and every diagonal in both directions. Diagonals shorter
// than the winning run are still produced; Winner filters them out.
// The order is fixed so the scan is deterministic.
func (b *Board) lines() [][]coord {
	lines := make([][]coord, 0, Rows+Cols+2*(Rows+Cols-1))

	// Rows, bottom to top.
	for row := 0; row < Rows; row++ {
		line := make([]coord, 0, Cols)
		for col := 0; col < Cols; col++ {
			line = append(line, coord{row, col})
		}
		lines = append(lines, line)
	}

	// Columns, left to right.
	for col := 0; col < Cols; col++ {
		line := make([]coord, 0, Rows)
		for row := 0; row < Rows; row++ {
			line = append(line, coord{row, col})
		}
		lines = append(lines, line)
	}

	// Up-right diagonals, anchored on the left edge and the bottom edge.
	for row := Rows - 1; row > 0; row-- {
		lines = append(lines, walk(row, 0, 1, 1))
	}
	for col := 0; col < Cols; col++ {
		lines = append(lines, walk(0, col, 1, 1))
	}

	// Up-left diagonals, anchored on the right edge and the bottom edge.
	for row := Rows - 1; row > 0; row-- {
		lines = append(lines, walk(row, Cols-1, 1, -1))
	}
	for col := Cols - 1; col >= 0; col-- {
		lines = append(lines, walk(0, col, 1, -1))
	}

	return lines
}

// walk collects the cells from (row, col) stepping by (dRow, dCol)
// until the grid edge.
func walk(row, col, dRow, dCol int) []coord {
	var line []coord
	for row >= 0 && row < Rows && col >= 0 && col < Cols {
		line = append(line, coord{row, col})
		row += dRow
		col += dCol
	}
	return line
}

// Winner scans every line for four consecutive cells taken by the same
// owner and returns that owner. Lines shorter than the winning run are
// skipped before any window is examined. The second return value is
// false while nobody has won. Only one owner can ever hold a winning
// window, so the scan order does not affect the result.
func (b *Board) Winner() (Owner, bool) {
	for _, line := range b.lines() {
		if len(line) < toWin {
			continue
		}
		for start := 0; start+toWin <= len(line); start++ {
			first := b.grid[line[start].row][line[start].col]
			if !first.Taken() {
				continue
			}
			run := true
			for i := 1; i < toWin; i++ {
				c := line[start+i]
				if b.grid[c.row][c.col] != first {
					run = false
					break
				}
			}
			if run {
				owner, _ := first.Owner()
				return owner, true
			}
		}
	}
	return Black, false
}

// Clone returns a deep copy of the board. Play always mutates a board
// in place; cloning exists for inspection and tests.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// String renders the board as a bordered box with 1-based column
// headers, the top row first, one glyph per cell.
func (b *Board) String() string {
	var sb strings.Builder
	bar := strings.Repeat("─", 2*Cols)

	sb.WriteString("┌" + bar + "─┐\n")
	sb.WriteString("│")
	for col := 0; col < Cols; col++ {
		sb.WriteString(" ")
		sb.WriteRune(rune('1' + col))
	}
	sb.WriteString(" │\n")
	sb.WriteString("├" + bar + "─┤\n")

	for row := Rows - 1; row >= 0; row-- {
		sb.WriteString("│")
		for col := 0; col < Cols; col++ {
			sb.WriteString(" ")
			sb.WriteRune(b.grid[row][col].Glyph())
		}
		sb.WriteString(" │\n")
	}

	sb.WriteString("└" + bar + "─┘")
	return sb.String()
}

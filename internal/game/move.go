package game

import "strconv"

// Move is a request to drop one piece for an owner into a column.
// Moves are only constructible through NewMove, so a Move value always
// carries an in-range column. Column fullness is a board-level concern
// and is never checked here.
type Move struct {
	owner Owner
	col   int
}

// NewMove creates a move for the given owner and column.
// It returns ok=false when the column index is outside [0, Cols);
// it never fails for an in-range column, regardless of board state.
func NewMove(owner Owner, col int) (Move, bool) {
	if col < 0 || col >= Cols {
		return Move{}, false
	}
	return Move{owner: owner, col: col}, true
}

// Owner returns the owner the move places a piece for.
func (m Move) Owner() Owner {
	return m.owner
}

// Col returns the zero-based target column.
func (m Move) Col() int {
	return m.col
}

// String renders the move as its 1-based column number, matching the
// column headers shown to players.
func (m Move) String() string {
	return strconv.Itoa(m.col + 1)
}

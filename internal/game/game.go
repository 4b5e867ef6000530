package game

// Game owns one board plus whose turn it is. A Game is created empty
// with Black to move and is driven to completion by an external loop
// feeding it moves; it performs the turn check the board itself does
// not.
type Game struct {
	board  Board
	player Owner
}

// New creates a game with an empty board. Black moves first.
func New() *Game {
	return &Game{player: Black}
}

// Player returns the owner whose turn it is.
func (g *Game) Player() Owner {
	return g.player
}

// Board exposes the board for reading (rendering, move selection).
// Callers must not apply moves to it directly; Play is the only way to
// advance the game.
func (g *Game) Board() *Board {
	return &g.board
}

// LegalMoves returns the legal moves for the current player, one per
// non-full column in ascending order.
func (g *Game) LegalMoves() []Move {
	return g.board.LegalMoves(g.player)
}

// Play applies one turn. It rejects moves by the wrong owner and moves
// into a full column, returning false with nothing changed; in both
// cases the turn stays with the current player so the caller can
// re-prompt. On success the turn passes to the opponent.
func (g *Game) Play(m Move) bool {
	if m.owner != g.player {
		return false
	}
	if !g.board.Apply(m) {
		return false
	}
	g.player = g.player.Opponent()
	return true
}

// Over reports whether the game has finished, by win or by a full
// board.
func (g *Game) Over() bool {
	return g.board.Over()
}

// Winner returns the winning owner, or ok=false while the game is
// undecided or drawn.
func (g *Game) Winner() (Owner, bool) {
	return g.board.Winner()
}

package game

// Cell is one grid position: empty or occupied by exactly one owner.
// It is a closed three-value type so that window comparisons are plain
// equality checks; an occupied cell never changes for the rest of a game.
type Cell uint8

const (
	Empty Cell = iota
	blackCell
	whiteCell
)

// OccupiedBy returns the cell value for a piece of the given owner.
func OccupiedBy(o Owner) Cell {
	if o == Black {
		return blackCell
	}
	return whiteCell
}

// Taken reports whether the cell holds a piece.
func (c Cell) Taken() bool {
	return c != Empty
}

// Owner returns the owner occupying the cell.
// The second return value is false for an empty cell.
func (c Cell) Owner() (Owner, bool) {
	switch c {
	case blackCell:
		return Black, true
	case whiteCell:
		return White, true
	default:
		return Black, false
	}
}

// Glyph returns the rune used to display the cell: the owner's piece
// glyph for an occupied cell, an underscore for an empty one.
func (c Cell) Glyph() rune {
	if o, ok := c.Owner(); ok {
		return o.Glyph()
	}
	return '_'
}

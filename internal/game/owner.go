package game

// Owner identifies one of the two players whose pieces occupy cells.
// There are exactly two owners; Black always moves first.
type Owner uint8

const (
	Black Owner = iota
	White
)

// Opponent returns the other owner. The mapping is involutive:
// o.Opponent().Opponent() == o for both owners.
func (o Owner) Opponent() Owner {
	if o == Black {
		return White
	}
	return Black
}

// String returns a human-readable name for the owner.
func (o Owner) String() string {
	if o == Black {
		return "Black"
	}
	return "White"
}

// Glyph returns the rune used to display the owner's pieces.
// Black is the filled circle, White the hollow one.
func (o Owner) Glyph() rune {
	if o == Black {
		return '●'
	}
	return '○'
}

package tui

import (
	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/game"
)

// Board box dimensions in screen cells: border, header row, separator,
// the grid rows, border.
const (
	boardWidth  = 2*game.Cols + 3
	boardHeight = game.Rows + 4
)

// cellX returns the screen x of a column's glyph inside the box.
func cellX(x, col int) int {
	return x + 2 + 2*col
}

// drawBoard composes the bordered board into the screen buffer with
// the box's top-left corner at (x, y). The top grid row is drawn
// first; glyphs and colors come from the theme.
func drawBoard(s *core.Screen, b *game.Board, theme config.ThemeConfig, x, y int) {
	blackColor := colorByName(theme.BlackColor)
	whiteColor := colorByName(theme.WhiteColor)

	s.DrawBox(core.NewRect(x, y, boardWidth, boardHeight))

	// Column headers 1..Cols and the separator below them.
	for col := 0; col < game.Cols; col++ {
		s.Set(cellX(x, col), y+1, rune('1'+col))
	}
	s.Set(x, y+2, '├')
	s.DrawHLine(x+1, y+2, boardWidth-2, '─')
	s.Set(x+boardWidth-1, y+2, '┤')
	s.Set(x, y+1, '│')
	s.Set(x+boardWidth-1, y+1, '│')

	// Grid rows, top row first.
	for row := game.Rows - 1; row >= 0; row-- {
		sy := y + 3 + (game.Rows - 1 - row)
		s.Set(x, sy, '│')
		s.Set(x+boardWidth-1, sy, '│')
		for col := 0; col < game.Cols; col++ {
			cell := b.Cell(row, col)
			sx := cellX(x, col)
			if owner, ok := cell.Owner(); ok {
				if owner == game.Black {
					s.SetColored(sx, sy, theme.BlackRune(), blackColor)
				} else {
					s.SetColored(sx, sy, theme.WhiteRune(), whiteColor)
				}
			} else {
				s.SetColored(sx, sy, theme.EmptyRune(), core.ColorGray)
			}
		}
	}
}

// drawCursor places the drop marker above the given column.
func drawCursor(s *core.Screen, theme config.ThemeConfig, x, y, col int) {
	s.SetColored(cellX(x, col), y, '▼', colorByName(theme.CursorColor))
}

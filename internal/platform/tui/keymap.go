package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/game"
)

// KeyMapper translates Bubble Tea key messages to match actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a match action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "h", "a":
		return core.ActionLeft
	case "right", "l", "d":
		return core.ActionRight
	case "enter", " ":
		return core.ActionDrop
	case "r":
		return core.ActionRestart
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// ColumnKey maps the digit keys 1..7 to a zero-based column index.
func (km *KeyMapper) ColumnKey(msg tea.KeyMsg) (int, bool) {
	key := msg.String()
	if len(key) != 1 || key[0] < '1' || key[0] > '0'+game.Cols {
		return 0, false
	}
	return int(key[0] - '1'), true
}

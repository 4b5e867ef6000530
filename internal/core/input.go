package core

// Action represents a semantic match action, abstracted from physical
// key presses. The platform maps keys to actions; the match model only
// ever sees these.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // H, Left arrow - move column cursor left
	ActionRight          // L, Right arrow - move column cursor right
	ActionDrop           // Enter, Space - drop a piece in the cursor column
	ActionRestart        // R key - start a new match after game over
	ActionBack           // B, Escape - leave the match screen
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

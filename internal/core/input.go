package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows screens to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - move the column cursor left
	ActionRight          // Right arrow, l - move the column cursor right
	ActionUp             // Up arrow, k - menu up
	ActionDown           // Down arrow, j - menu down
	ActionDrop           // Enter, Space, 1-7 - drop a piece
	ActionConfirm        // Enter - confirm selection in menu
	ActionYes            // y - answer a yes/no prompt
	ActionNo             // n - answer a yes/no prompt
	ActionBack           // Escape - go back to the menu
	ActionQuit           // q, Ctrl+C - leave the game or the program
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionDrop:
		return "Drop"
	case ActionConfirm:
		return "Confirm"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NoColumn marks an input that did not name a column directly.
const NoColumn = -1

// InputFrame is the input collected for one key press.
type InputFrame struct {
	// Actions maps action types to whether they were triggered.
	Actions map[Action]bool
	// Column is the zero-based column picked with a digit key, or NoColumn.
	Column int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Column:  NoColumn,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetColumn records a direct column choice and marks the frame as a drop.
func (f *InputFrame) SetColumn(col int) {
	f.Column = col
	f.Set(ActionDrop)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HasColumn reports whether a digit key chose the column.
func (f InputFrame) HasColumn() bool {
	return f.Column != NoColumn
}

// Empty reports whether the frame carries no action at all.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Column = NoColumn
}

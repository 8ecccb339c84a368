// internal/input/action.go
package input

// Action represents an operation decoded from a key press.
type Action int

const (
	ActionUnknown Action = iota

	// Runs the command in ActionEvent.Command
	ActionCommand

	// --- Caret Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line
	ActionMoveDocStart
	ActionMoveDocEnd

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- UI ---
	ActionOpenMenu  // F10, or Alt+<initial> with Rune set
	ActionCancel    // Esc
	ActionPrevField // Shift+Tab; dialogs only
)

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action  Action
	Rune    rune   // ActionInsertRune, or the menu initial for ActionOpenMenu
	Command string // ActionCommand
	Extend  bool   // Shift held: movement extends the selection
}

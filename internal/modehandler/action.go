package modehandler

import (
	"github.com/bethropolis/tidepad/internal/core/cursor"
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
)

var motions = map[input.Action]cursor.Motion{
	input.ActionMoveUp:       cursor.Up,
	input.ActionMoveDown:     cursor.Down,
	input.ActionMoveLeft:     cursor.Left,
	input.ActionMoveRight:    cursor.Right,
	input.ActionMovePageUp:   cursor.PageUp,
	input.ActionMovePageDown: cursor.PageDown,
	input.ActionMoveHome:     cursor.LineStart,
	input.ActionMoveEnd:      cursor.LineEnd,
	input.ActionMoveDocStart: cursor.DocStart,
	input.ActionMoveDocEnd:   cursor.DocEnd,
}

// handleActionEdit handles actions while typing into the document.
func (mh *ModeHandler) handleActionEdit(actionEvent input.ActionEvent) bool {
	if m, ok := motions[actionEvent.Action]; ok {
		mh.editor.MoveCaret(m, actionEvent.Extend)
		return true
	}

	var err error
	switch actionEvent.Action {
	case input.ActionCommand:
		mh.RunCommand(actionEvent.Command)
		return true
	case input.ActionOpenMenu:
		return mh.openMenu(actionEvent.Rune)
	case input.ActionCancel:
		mh.editor.ClearSelection()
		mh.editor.ClearSearch()
		return true

	case input.ActionInsertRune:
		err = mh.editor.InsertText(string(actionEvent.Rune))
	case input.ActionInsertNewLine:
		err = mh.editor.InsertText("\n")
	case input.ActionInsertTab:
		err = mh.editor.InsertText("\t")
	case input.ActionDeleteCharBackward:
		err = mh.editor.Backspace()
	case input.ActionDeleteCharForward:
		err = mh.editor.DeleteForward()

	default:
		return false
	}

	if err != nil {
		logger.Errorf("ModeHandler: edit action %d failed: %v", actionEvent.Action, err)
		mh.statusBar.SetErrorMessage("Edit failed: %v", err)
	}
	return true
}

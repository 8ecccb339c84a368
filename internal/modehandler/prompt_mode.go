package modehandler

import (
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/tui"
)

// Prompt opens a dialog with input fields. Enter in a field presses the
// first button. Buttons default to OK and Cancel.
func (mh *ModeHandler) Prompt(title string, fields []*tui.Field, buttons []string, onButton ButtonFunc) {
	if len(buttons) == 0 {
		buttons = []string{"OK", "Cancel"}
	}
	mh.openDialog(ModePrompt, &tui.Dialog{
		Kind:    tui.DialogPrompt,
		Title:   title,
		Fields:  fields,
		Buttons: buttons,
	}, onButton)
}

func (mh *ModeHandler) openDialog(mode InputMode, d *tui.Dialog, onButton ButtonFunc) {
	mh.dialog = d
	mh.onButton = onButton
	mh.currentMode = mode
	logger.DebugTagf("input", "ModeHandler: %v dialog '%s' opened", mode, d.Title)
}

func (mh *ModeHandler) closeDialog() {
	mh.dialog = nil
	mh.onButton = nil
	mh.currentMode = ModeEdit
}

// press closes the dialog and runs its callback. The callback may open
// another dialog; a dialog asking to stay open is restored only if it did
// not.
func (mh *ModeHandler) press(button int) {
	d, mode, cb := mh.dialog, mh.currentMode, mh.onButton
	mh.closeDialog()
	if cb == nil {
		return
	}
	values := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		values[i] = f.Text()
	}
	if cb(button, values) && mh.currentMode == ModeEdit {
		mh.openDialog(mode, d, cb)
	}
}

// handleActionPrompt edits the focused field or activates a button.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	d := mh.dialog
	field := d.FocusedField()

	switch actionEvent.Action {
	case input.ActionCancel:
		mh.press(-1)
	case input.ActionInsertNewLine:
		if b := d.FocusedButton(); b >= 0 {
			mh.press(b)
		} else {
			mh.press(0)
		}
	case input.ActionInsertTab:
		d.NextFocus(1)
	case input.ActionPrevField:
		d.NextFocus(-1)

	case input.ActionInsertRune:
		if field == nil {
			return mh.pressHotkey(actionEvent.Rune)
		}
		field.Insert(actionEvent.Rune)
	case input.ActionDeleteCharBackward:
		if field != nil {
			field.Backspace()
		}
	case input.ActionDeleteCharForward:
		if field != nil {
			field.DeleteForward()
		}
	case input.ActionMoveLeft:
		if field != nil {
			field.Left()
		} else {
			d.NextFocus(-1)
		}
	case input.ActionMoveRight:
		if field != nil {
			field.Right()
		} else {
			d.NextFocus(1)
		}
	case input.ActionMoveHome:
		if field != nil {
			field.Home()
		}
	case input.ActionMoveEnd:
		if field != nil {
			field.End()
		}
	case input.ActionMoveUp, input.ActionMoveDown:
		delta := 1
		if actionEvent.Action == input.ActionMoveUp {
			delta = -1
		}
		if field != nil && len(field.Choices) > 0 {
			field.Cycle(delta)
		} else {
			d.NextFocus(delta)
		}
	default:
		return false
	}
	return true
}

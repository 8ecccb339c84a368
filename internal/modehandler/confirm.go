package modehandler

import (
	"strings"
	"unicode"

	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/tui"
)

// Confirm opens a button-only dialog. onChoice receives the button index,
// or -1 when dismissed with Esc.
func (mh *ModeHandler) Confirm(title, message string, buttons []string, onChoice func(choice int)) {
	mh.openDialog(ModeConfirm, &tui.Dialog{
		Kind:    tui.DialogConfirm,
		Title:   title,
		Lines:   strings.Split(message, "\n"),
		Buttons: buttons,
	}, func(button int, _ []string) bool {
		onChoice(button)
		return false
	})
}

// ShowMessage opens an informational box dismissed by any key.
func (mh *ModeHandler) ShowMessage(kind tui.DialogKind, title string, lines ...string) {
	switch kind {
	case tui.DialogError:
		logger.Errorf("%s: %s", title, strings.Join(lines, " "))
	case tui.DialogWarning:
		logger.Warnf("%s: %s", title, strings.Join(lines, " "))
	}
	mh.openDialog(ModeMessage, &tui.Dialog{
		Kind:    kind,
		Title:   title,
		Lines:   lines,
		Buttons: []string{"OK"},
		Focus:   0,
	}, nil)
}

// ShowError is ShowMessage with the error kind.
func (mh *ModeHandler) ShowError(title string, lines ...string) {
	mh.ShowMessage(tui.DialogError, title, lines...)
}

// ShowWarning is ShowMessage with the warning kind.
func (mh *ModeHandler) ShowWarning(title string, lines ...string) {
	mh.ShowMessage(tui.DialogWarning, title, lines...)
}

// pressHotkey presses the button whose label starts with r.
func (mh *ModeHandler) pressHotkey(r rune) bool {
	r = unicode.ToLower(r)
	for i, b := range mh.dialog.Buttons {
		if rs := []rune(strings.ToLower(b)); len(rs) > 0 && rs[0] == r {
			mh.press(i)
			return true
		}
	}
	return false
}

// handleActionConfirm moves between buttons and presses one.
func (mh *ModeHandler) handleActionConfirm(actionEvent input.ActionEvent) bool {
	d := mh.dialog
	switch actionEvent.Action {
	case input.ActionCancel:
		mh.press(-1)
	case input.ActionInsertNewLine:
		mh.press(d.FocusedButton())
	case input.ActionMoveLeft, input.ActionPrevField, input.ActionMoveUp:
		d.NextFocus(-1)
	case input.ActionMoveRight, input.ActionInsertTab, input.ActionMoveDown:
		d.NextFocus(1)
	case input.ActionInsertRune:
		return mh.pressHotkey(actionEvent.Rune)
	default:
		return false
	}
	return true
}

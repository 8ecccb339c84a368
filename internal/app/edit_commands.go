package app

import (
	"errors"

	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/tui"
)

// Find dialog buttons.
const (
	findButtonFind = iota
	findButtonReplace
	findButtonClose
)

func (a *App) cmdUndo() error {
	ok, err := a.editor.Undo()
	if err != nil {
		return err
	}
	if !ok {
		a.statusBar.SetTemporaryMessage("Nothing to undo")
	}
	return nil
}

func (a *App) cmdRedo() error {
	ok, err := a.editor.Redo()
	if err != nil {
		return err
	}
	if !ok {
		a.statusBar.SetTemporaryMessage("Nothing to redo")
	}
	return nil
}

func (a *App) cmdCut() error {
	ok, err := a.editor.Cut()
	if err != nil {
		return err
	}
	if !ok {
		a.statusBar.SetTemporaryMessage("Nothing selected")
	}
	return nil
}

func (a *App) cmdCopy() error {
	ok, err := a.editor.Copy()
	if err != nil {
		return err
	}
	if !ok {
		a.statusBar.SetTemporaryMessage("Nothing selected")
		return nil
	}
	a.statusBar.SetTemporaryMessage("Copied")
	return nil
}

func (a *App) cmdPaste() error {
	ok, err := a.editor.Paste()
	if err != nil {
		return err
	}
	if !ok {
		a.statusBar.SetTemporaryMessage("Clipboard is empty")
	}
	return nil
}

func (a *App) cmdSelectAll() error {
	a.editor.SelectAll()
	return nil
}

// cmdFind opens the Find and Replace dialog. It stays open across Find
// and Replace presses so the user can step through matches.
func (a *App) cmdFind() error {
	findField := tui.NewField("Find:", a.editor.LastFind())
	replaceField := tui.NewField("Replace:", "")
	buttons := []string{"Find", "Replace", "Close"}
	a.modeHandler.Prompt("Find and Replace", []*tui.Field{findField, replaceField}, buttons, func(button int, values []string) bool {
		switch button {
		case findButtonFind:
			return a.findNext(values[0])
		case findButtonReplace:
			return a.replaceFirst(values[0], values[1])
		}
		a.editor.ClearSearch()
		return false
	})
	return nil
}

// findNext reports the outcome of one search in the status bar.
func (a *App) findNext(text string) bool {
	m, err := a.editor.FindNext(text)
	switch {
	case errors.Is(err, core.ErrNotFound):
		a.statusBar.SetTemporaryMessage("Text not found")
		return true
	case err != nil:
		a.modeHandler.ShowError("Find", err.Error())
		return false
	case m.Wrapped:
		a.statusBar.SetTemporaryMessage("Wrapped to beginning")
	default:
		a.statusBar.SetTemporaryMessage("Found")
	}
	return true
}

func (a *App) replaceFirst(findText, replacement string) bool {
	err := a.editor.ReplaceFirst(findText, replacement)
	switch {
	case errors.Is(err, core.ErrNotFound):
		a.statusBar.SetTemporaryMessage("Text not found")
		return true
	case err != nil:
		a.modeHandler.ShowError("Replace", err.Error())
		return false
	}
	a.statusBar.SetTemporaryMessage("Replaced")
	return true
}

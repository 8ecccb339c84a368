package app

import (
	"path/filepath"
	"strings"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/tui"
)

// Choices of the unsaved-changes dialog.
const (
	choiceSave = iota
	choiceDiscard
	choiceCancel
)

// documentName is the file name shown in dialogs.
func (a *App) documentName() string {
	if p := a.editor.FilePath(); p != "" {
		return filepath.Base(p)
	}
	return "Untitled"
}

// confirmDiscard runs next once the current document may be dropped: it
// is clean, the user saved it, or the user chose to discard it.
func (a *App) confirmDiscard(title string, next func()) {
	if !a.editor.IsModified() {
		next()
		return
	}
	msg := "Save changes to " + a.documentName() + "?"
	a.modeHandler.Confirm(title, msg, []string{"Save", "Discard", "Cancel"}, func(choice int) {
		switch choice {
		case choiceSave:
			a.save(next)
		case choiceDiscard:
			logger.Infof("App: discarding changes to '%s'", a.documentName())
			next()
		default:
			a.statusBar.SetTemporaryMessage("Cancelled")
		}
	})
}

// save writes to the known path, asking for one first if there is none.
// then runs only after a successful save.
func (a *App) save(then func()) {
	if a.editor.FilePath() == "" {
		a.saveAs(then)
		return
	}
	if err := a.editor.SaveCurrent(); err != nil {
		a.modeHandler.ShowError("Save Failed", err.Error())
		return
	}
	if then != nil {
		then()
	}
}

// saveAs prompts for a path and saves there.
func (a *App) saveAs(then func()) {
	field := tui.NewField("File name:", a.editor.FilePath())
	a.modeHandler.Prompt("Save As", []*tui.Field{field}, []string{"Save", "Cancel"}, func(button int, values []string) bool {
		if button != 0 {
			a.statusBar.SetTemporaryMessage("Save cancelled")
			return false
		}
		path := strings.TrimSpace(values[0])
		if path == "" {
			a.modeHandler.ShowError("Save As", "Please enter a file name.")
			return false
		}
		if err := a.editor.Save(path); err != nil {
			a.modeHandler.ShowError("Save Failed", err.Error())
			return false
		}
		if then != nil {
			then()
		}
		return false
	})
}

func (a *App) cmdNew() error {
	a.confirmDiscard("New", func() {
		a.editor.New()
		a.statusBar.SetTemporaryMessage("New document")
	})
	return nil
}

func (a *App) cmdOpen() error {
	a.confirmDiscard("Open", func() {
		dir := ""
		if p := a.editor.FilePath(); p != "" {
			dir = filepath.Dir(p) + string(filepath.Separator)
		}
		field := tui.NewField("File name:", dir)
		a.modeHandler.Prompt("Open", []*tui.Field{field}, []string{"Open", "Cancel"}, func(button int, values []string) bool {
			if button != 0 {
				return false
			}
			path := strings.TrimSpace(values[0])
			if path == "" {
				a.modeHandler.ShowError("Open", "Please enter a file name.")
				return false
			}
			if err := a.editor.Load(path); err != nil {
				a.modeHandler.ShowError("Open Failed", err.Error())
				return false
			}
			a.statusBar.SetTemporaryMessage("Opened %s", path)
			return false
		})
	})
	return nil
}

func (a *App) cmdSave() error {
	a.save(nil)
	return nil
}

func (a *App) cmdSaveAs() error {
	a.saveAs(nil)
	return nil
}

// cmdExit quits, asking first when there are unsaved changes. A failed
// save keeps the editor open.
func (a *App) cmdExit() error {
	a.confirmDiscard("Exit", a.requestQuit)
	return nil
}

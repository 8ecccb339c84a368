package app

import (
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/modehandler"
	"github.com/bethropolis/tidepad/internal/statusbar"
	"github.com/bethropolis/tidepad/internal/tui"
)

// textArea is the part of the screen between the menu bar and the status
// bar.
func (a *App) textArea() tui.Rect {
	width, height := a.tuiManager.Size()
	top := config.MenuBarHeight
	h := height - top
	if a.statusBar.Visible() {
		h -= config.StatusBarHeight
	}
	if h < 0 {
		h = 0
	}
	return tui.Rect{X: 0, Y: top, Width: width, Height: h}
}

// draw clears the screen and redraws all components.
func (a *App) draw() {
	th := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	area := a.textArea()

	a.updateStatusBarContent()
	a.editor.SetPageSize(area.Height)
	a.view.ScrollToCaret(a.editor, area)

	logger.DebugTagf("draw", "draw: screen %dx%d, text area %+v", width, height, area)

	a.tuiManager.Clear()
	a.view.Draw(screen, area, a.editor, th, a.highlightManager.Highlights())
	a.statusBar.Draw(screen, width, height)
	tui.DrawMenuBar(screen, width, a.modeHandler.MenuView(), th)

	switch a.modeHandler.GetCurrentMode() {
	case modehandler.ModeEdit:
		a.view.PlaceCursor(screen, area, a.editor)
	case modehandler.ModeMenu:
		screen.HideCursor()
	default:
		if d := a.modeHandler.Dialog(); d != nil {
			tui.DrawDialog(screen, d, th)
		}
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.editor.FilePath(), a.editor.IsModified())
	line, col, err := a.editor.CaretLineColumn()
	if err != nil {
		logger.Warnf("App: caret position unavailable: %v", err)
	}
	a.statusBar.SetCaret(line, col)
	a.statusBar.SetFont(a.editor.Font().Summary())
	if l := a.highlightManager.Language(); l != nil {
		a.statusBar.SetLanguage(l.Name)
	} else {
		a.statusBar.SetLanguage("")
	}
}

// applyTheme restyles the screen and status bar after a theme change.
func (a *App) applyTheme() {
	th := a.themeManager.Current()
	a.tuiManager.SetStyle(th.GetStyle("Default"))
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(th, config.MessageTimeout))
}

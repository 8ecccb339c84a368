package app

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/commands"
)

// registerCommands fills the command table. Menu order follows
// registration order.
func (a *App) registerCommands() error {
	table := []commands.Command{
		{ID: commands.FileNew, Label: "New", Menu: commands.MenuFile, Run: a.cmdNew},
		{ID: commands.FileOpen, Label: "Open...", Menu: commands.MenuFile, Run: a.cmdOpen},
		{ID: commands.FileSave, Label: "Save", Menu: commands.MenuFile, Run: a.cmdSave},
		{ID: commands.FileSaveAs, Label: "Save As...", Menu: commands.MenuFile, Run: a.cmdSaveAs},
		{ID: commands.FileExit, Label: "Exit", Menu: commands.MenuFile, Run: a.cmdExit},

		{ID: commands.EditUndo, Label: "Undo", Menu: commands.MenuEdit, Run: a.cmdUndo},
		{ID: commands.EditRedo, Label: "Redo", Menu: commands.MenuEdit, Run: a.cmdRedo},
		{ID: commands.EditCut, Label: "Cut", Menu: commands.MenuEdit, Run: a.cmdCut},
		{ID: commands.EditCopy, Label: "Copy", Menu: commands.MenuEdit, Run: a.cmdCopy},
		{ID: commands.EditPaste, Label: "Paste", Menu: commands.MenuEdit, Run: a.cmdPaste},
		{ID: commands.EditSelectAll, Label: "Select All", Menu: commands.MenuEdit, Run: a.cmdSelectAll},
		{ID: commands.EditFind, Label: "Find and Replace...", Menu: commands.MenuEdit, Run: a.cmdFind},

		{ID: commands.FormatFont, Label: "Font Type...", Menu: commands.MenuFormat, Run: a.cmdFontFamily},
		{ID: commands.FormatSize, Label: "Font Size...", Menu: commands.MenuFormat, Run: a.cmdFontSize},
		{ID: commands.FormatBold, Label: "Bold", Menu: commands.MenuFormat, Run: a.cmdBold},
		{ID: commands.FormatItalic, Label: "Italic", Menu: commands.MenuFormat, Run: a.cmdItalic},
		{ID: commands.FormatUnderline, Label: "Underline", Menu: commands.MenuFormat, Run: a.cmdUnderline},
		{ID: commands.FormatFg, Label: "Text Color...", Menu: commands.MenuFormat, Run: a.cmdForeground},
		{ID: commands.FormatBg, Label: "Background Color...", Menu: commands.MenuFormat, Run: a.cmdBackground},

		{ID: commands.ViewStatusBar, Label: "Status Bar", Menu: commands.MenuView, Run: a.cmdToggleStatusBar},
		{ID: commands.ViewSyntax, Label: "Syntax Colors", Menu: commands.MenuView, Run: a.cmdToggleSyntax},

		{ID: commands.HelpAbout, Label: "About", Menu: commands.MenuHelp, Run: a.cmdAbout},
	}

	for _, cmd := range table {
		cmd.Shortcut = a.inputProcessor.ShortcutFor(cmd.ID)
		if err := a.registry.Register(cmd); err != nil {
			return fmt.Errorf("register '%s': %w", cmd.ID, err)
		}
	}
	return nil
}

package app

import (
	"strconv"

	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/core/format"
	"github.com/bethropolis/tidepad/internal/tui"
)

// promptValue asks for a single value and hands it to apply. An error from
// apply is shown and leaves the style unchanged.
func (a *App) promptValue(title string, field *tui.Field, apply func(string) error) {
	a.modeHandler.Prompt(title, []*tui.Field{field}, nil, func(button int, values []string) bool {
		if button != 0 {
			return false
		}
		if err := apply(values[0]); err != nil {
			a.modeHandler.ShowError("Invalid Input", err.Error())
		}
		return false
	})
}

func (a *App) cmdFontFamily() error {
	field := tui.NewChoiceField("Font:", a.editor.Font().Family, format.Families)
	a.promptValue("Font Type", field, a.editor.SetFontFamily)
	return nil
}

func (a *App) cmdFontSize() error {
	field := tui.NewField("Size:", strconv.Itoa(a.editor.Font().Size))
	a.promptValue("Font Size", field, a.editor.SetFontSize)
	return nil
}

func (a *App) cmdForeground() error {
	field := tui.NewField("Color:", a.editor.Font().Fg.String())
	a.promptValue("Text Color", field, a.editor.SetForeground)
	return nil
}

func (a *App) cmdBackground() error {
	field := tui.NewField("Color:", a.editor.Font().Bg.String())
	a.promptValue("Background Color", field, a.editor.SetBackground)
	return nil
}

func (a *App) cmdBold() error {
	a.editor.ToggleBold()
	return nil
}

func (a *App) cmdItalic() error {
	a.editor.ToggleItalic()
	return nil
}

func (a *App) cmdUnderline() error {
	a.editor.ToggleUnderline()
	return nil
}

func (a *App) cmdToggleStatusBar() error {
	a.statusBar.ToggleVisible()
	return nil
}

func (a *App) cmdToggleSyntax() error {
	if a.highlightManager.Toggle() {
		if a.highlightManager.Language() == nil {
			a.statusBar.SetTemporaryMessage("Syntax colors on (no grammar for this file)")
		} else {
			a.statusBar.SetTemporaryMessage("Syntax colors on")
		}
		return nil
	}
	a.statusBar.SetTemporaryMessage("Syntax colors off")
	return nil
}

func (a *App) cmdAbout() error {
	a.modeHandler.ShowMessage(tui.DialogInfo, "About",
		config.AppName+" "+config.Version,
		"A small terminal notepad.",
		"Press F10 or Alt+letter for menus.",
	)
	return nil
}

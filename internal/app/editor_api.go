// internal/app/editor_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/plugin"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

var _ commands.ThemeAPI = (*appEditorAPI)(nil)

// appEditorAPI is the App as seen by plugins and the theme command.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Document ---

func (api *appEditorAPI) GetBufferText() string {
	return api.app.editor.Text()
}

func (api *appEditorAPI) GetBufferLineCount() int {
	return api.app.editor.Buffer().LineCount()
}

func (api *appEditorAPI) GetBufferFilePath() string {
	return api.app.editor.FilePath()
}

func (api *appEditorAPI) IsBufferModified() bool {
	return api.app.editor.IsModified()
}

func (api *appEditorAPI) SaveBuffer() error {
	return api.app.editor.SaveCurrent()
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

func (api *appEditorAPI) Post(fn func()) error {
	return api.app.post(fn)
}

// RegisterCommand adds a plugin command to the View menu.
func (api *appEditorAPI) RegisterCommand(id, label string, fn plugin.CommandFunc) error {
	if fn == nil {
		return fmt.Errorf("command '%s' has no handler", id)
	}
	return api.app.registry.Register(commands.Command{
		ID:    id,
		Label: label,
		Menu:  commands.MenuView,
		Run:   commands.Func(fn),
	})
}

// --- Feedback ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

func (api *appEditorAPI) ShowMessage(title string, lines ...string) {
	api.app.modeHandler.ShowMessage(tui.DialogInfo, title, lines...)
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

func (api *appEditorAPI) CurrentTheme() string {
	return api.app.themeManager.Current().Name
}

func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: api.app.themeManager.Current().Name})
	return nil
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	section := api.app.cfg.PluginConfig(pluginName)
	if section == nil {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}

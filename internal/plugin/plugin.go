// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc is the handler of a plugin command.
type CommandFunc func() error

// EditorAPI is what plugins may touch. Every method must be called from the
// event loop; background goroutines hand work over with Post.
type EditorAPI interface {
	// --- Document (read-only) ---
	GetBufferText() string
	GetBufferLineCount() int
	GetBufferFilePath() string
	IsBufferModified() bool

	// SaveBuffer writes the document to its current path.
	SaveBuffer() error

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// Post runs fn on the event loop. Safe from any goroutine.
	Post(fn func()) error

	// RegisterCommand adds a command under the View menu.
	RegisterCommand(id, label string, fn CommandFunc) error

	// --- Feedback ---
	SetStatusMessage(format string, args ...interface{})
	ShowMessage(title string, lines ...string)

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	ListThemes() []string

	// GetPluginConfigValue reads [plugins.<plugin>] <key> from the config.
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once at startup, on the event loop.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}

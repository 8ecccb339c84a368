// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tidepad/internal/core/format"
	"github.com/bethropolis/tidepad/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`
	Editor  EditorConfig                      `toml:"editor"`
	Font    FontConfig                        `toml:"font"`
	Plugins map[string]map[string]interface{} `toml:"plugins"` // [plugins.<name>] tables

	source    string   // File the config was read from, "" if none
	undecoded []string // Unrecognised keys, logged once the logger is up
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	UndoLimit       int    `toml:"undo_limit"`
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBar       bool   `toml:"status_bar"`
	SyntaxHighlight bool   `toml:"syntax_highlight"`
	Theme           string `toml:"theme"`
}

// FontConfig is the initial document font style.
type FontConfig struct {
	Family    string `toml:"family"`
	Size      int    `toml:"size"`
	Bold      bool   `toml:"bold"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			UndoLimit:       DefaultUndoLimit,
			SystemClipboard: SystemClipboard,
			StatusBar:       true,
			SyntaxHighlight: true,
			Theme:           DefaultTheme,
		},
		Font: FontConfig{
			Family: format.DefaultFamily,
			Size:   format.DefaultSize,
		},
		Plugins: make(map[string]map[string]interface{}),
	}
}

// Dir returns the per-user configuration directory for the app.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// DefaultLogPath is where logs go when no log file is configured.
func DefaultLogPath() string {
	if dir, err := Dir(); err == nil {
		return filepath.Join(dir, DefaultLogFileName)
	}
	return filepath.Join(os.TempDir(), DefaultLogFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		// Plugin tables are free-form.
		if len(key) > 0 && key[0] == "plugins" {
			continue
		}
		cfg.undecoded = append(cfg.undecoded, key.String())
	}
	cfg.source = filePath
	return nil
}

// validate resets out-of-range values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.UndoLimit <= 0 {
		c.Editor.UndoLimit = defaults.Editor.UndoLimit
	}
	if c.Editor.Theme == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Font.Family == "" {
		c.Font.Family = defaults.Font.Family
	}
	if c.Font.Size <= 0 {
		c.Font.Size = defaults.Font.Size
	}
	if c.Plugins == nil {
		c.Plugins = make(map[string]map[string]interface{})
	}
}

// LoadConfig loads defaults, then the config file (configFilePath, or the
// per-user default location), then flag overrides, then validates. A parse
// error is returned alongside a usable default-based config.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		if dir, err := Dir(); err == nil {
			effectivePath = filepath.Join(dir, DefaultConfigFileName)
		}
	}

	var loadErr error
	if effectivePath != "" {
		if err := loadFromFile(cfg, effectivePath); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}

// Source returns the file the config was read from, "" for defaults only.
func (c *Config) Source() string {
	return c.source
}

// UndecodedKeys lists config keys that matched no setting.
func (c *Config) UndecodedKeys() []string {
	return c.undecoded
}

// FontStyle converts the [font] table. Bad colours or sizes are reported
// and replaced by defaults.
func (c *Config) FontStyle() (format.FontStyle, error) {
	style := format.FontStyle{Family: c.Font.Family, Size: c.Font.Size}
	if c.Font.Bold {
		style.Toggle(format.Bold)
	}
	if c.Font.Italic {
		style.Toggle(format.Italic)
	}
	style.Underline = c.Font.Underline

	var firstErr error
	if fg, err := format.ParseColor(c.Font.Fg); err != nil {
		firstErr = fmt.Errorf("font.fg: %w", err)
	} else {
		style.Fg = fg
	}
	if bg, err := format.ParseColor(c.Font.Bg); err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("font.bg: %w", err)
		}
	} else {
		style.Bg = bg
	}
	return style, firstErr
}

// PluginConfig returns the [plugins.<name>] table, or nil.
func (c *Config) PluginConfig(name string) map[string]interface{} {
	return c.Plugins[name]
}

// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidepad/internal/core/format"
	"github.com/bethropolis/tidepad/internal/logger"
)

// TomlStyleDef represents a single style definition in the TOML file.
// Pointers distinguish unset values from false/empty.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme represents the structure of a theme file.
type TomlTheme struct {
	Name    string                  `toml:"name"`
	IsDark  bool                    `toml:"is_dark"`
	Inherit string                  `toml:"inherit"` // Built-in theme to start from
	Styles  map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme file.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}
	return parseTheme(string(data), filePath)
}

func parseTheme(data, filePath string) (*Theme, error) {
	var tomlTheme TomlTheme
	metadata, err := toml.Decode(data, &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme '%s': Unrecognized keys in file '%s': %v", tomlTheme.Name, filePath, metadata.Undecoded())
	}

	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Theme file '%s' missing 'name', using filename '%s'", filePath, tomlTheme.Name)
	}

	theme := &Theme{
		Name:   tomlTheme.Name,
		IsDark: tomlTheme.IsDark,
		Styles: make(map[string]tcell.Style),
	}

	if tomlTheme.Inherit != "" {
		parent, ok := builtin(tomlTheme.Inherit)
		if !ok {
			return nil, fmt.Errorf("theme '%s' inherits unknown built-in theme '%s'", theme.Name, tomlTheme.Inherit)
		}
		for k, v := range parent.Styles {
			theme.Styles[k] = v
		}
	}

	baseStyle := tcell.StyleDefault
	if existing, ok := theme.Styles["Default"]; ok {
		baseStyle = existing
	}
	if defaultTomlStyle, ok := tomlTheme.Styles["Default"]; ok {
		style, err := convertTomlStyle(defaultTomlStyle, baseStyle)
		if err != nil {
			return nil, fmt.Errorf("theme '%s': style 'Default': %w", theme.Name, err)
		}
		baseStyle = style
	}
	theme.Styles["Default"] = baseStyle

	// Other styles inherit from the theme's Default style.
	for name, tomlStyle := range tomlTheme.Styles {
		if name == "Default" {
			continue
		}
		start := baseStyle
		if existing, ok := theme.Styles[name]; ok {
			start = existing
		}
		style, err := convertTomlStyle(tomlStyle, start)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.Debugf("Loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

// convertTomlStyle converts a TOML definition to a tcell.Style over base.
func convertTomlStyle(def TomlStyleDef, base tcell.Style) (tcell.Style, error) {
	style := base

	if def.Fg != nil {
		color, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *def.Fg, err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *def.Bg, err)
		}
		style = style.Background(color)
	}

	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString accepts hex, W3C names, "default" and "reset".
func parseColorString(s string) (tcell.Color, error) {
	if strings.EqualFold(strings.TrimSpace(s), "reset") {
		return tcell.ColorReset, nil
	}
	c, err := format.ParseColor(s)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return c.Value, nil
}

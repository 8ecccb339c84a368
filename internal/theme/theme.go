// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidepad/internal/logger"
)

// Theme is a named set of styles. UI styles use CamelCase names; syntax
// styles use tree-sitter capture names such as "keyword" or "string.escape".
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name, falling back to its base name (the
// part before the first dot) and then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// HasStyle reports whether name (or its base name) is defined.
func (t *Theme) HasStyle(name string) bool {
	if _, ok := t.Styles[name]; ok {
		return true
	}
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		_, ok := t.Styles[name[:dotIndex]]
		return ok
	}
	return false
}

// uiStyles builds the chrome styles shared by the built-in themes.
func uiStyles(base tcell.Style, barBg, barFg, accent, dim tcell.Color) map[string]tcell.Style {
	bar := tcell.StyleDefault.Background(barBg).Foreground(barFg)
	return map[string]tcell.Style{
		"Default":         base,
		"Selection":       base.Reverse(true),
		"SearchHighlight": tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),

		"MenuBar":       bar,
		"MenuBarActive": bar.Reverse(true),
		"Menu":          bar,
		"MenuSelected":  bar.Reverse(true),
		"MenuShortcut":  bar.Foreground(dim),

		"Dialog":             bar,
		"DialogTitle":        bar.Foreground(accent).Bold(true),
		"DialogField":        base.Underline(true),
		"DialogFieldActive":  base.Reverse(true),
		"DialogButton":       bar,
		"DialogButtonActive": bar.Reverse(true),

		"StatusBar":         bar,
		"StatusBarModified": bar.Foreground(accent),
		"StatusBarMessage":  bar.Bold(true),
		"StatusBarError":    bar.Foreground(tcell.ColorRed).Bold(true),
	}
}

// syntaxStyles builds capture styles from a small palette.
func syntaxStyles(base tcell.Style, keyword, str, comment, number, typ, function, punct tcell.Color) map[string]tcell.Style {
	return map[string]tcell.Style{
		"keyword":       base.Foreground(keyword).Bold(true),
		"string":        base.Foreground(str),
		"string.escape": base.Foreground(number),
		"comment":       base.Foreground(comment).Italic(true),
		"number":        base.Foreground(number),
		"constant":      base.Foreground(number),
		"boolean":       base.Foreground(number),
		"type":          base.Foreground(typ),
		"function":      base.Foreground(function),
		"method":        base.Foreground(function),
		"property":      base,
		"variable":      base,
		"operator":      base,
		"punctuation":   base.Foreground(punct),
	}
}

func merge(maps ...map[string]tcell.Style) map[string]tcell.Style {
	out := make(map[string]tcell.Style)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Built-in themes.
var (
	Default Theme // Terminal colours, like a plain notepad
	Dark    Theme // Muted dark palette
	Light   Theme
)

func init() {
	plain := tcell.StyleDefault
	Default = Theme{
		Name: "default",
		Styles: merge(
			uiStyles(plain, tcell.ColorSilver, tcell.ColorBlack, tcell.ColorNavy, tcell.ColorGray),
			syntaxStyles(plain, tcell.ColorBlue, tcell.ColorGreen, tcell.ColorGray, tcell.ColorMaroon, tcell.ColorTeal, tcell.ColorPurple, tcell.ColorGray),
		),
	}

	// --- Palette for Dark ---
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)

	dark := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	Dark = Theme{
		Name:   "dark",
		IsDark: true,
		Styles: merge(
			uiStyles(dark, bg, fg, yellow, comment),
			syntaxStyles(dark, blue, green, comment, orange, cyan, yellow, comment),
		),
	}

	paper := tcell.StyleDefault.Background(tcell.NewHexColor(0xfafafa)).Foreground(tcell.NewHexColor(0x383a42))
	Light = Theme{
		Name: "light",
		Styles: merge(
			uiStyles(paper, tcell.NewHexColor(0xe5e5e6), tcell.NewHexColor(0x383a42), tcell.NewHexColor(0x4078f2), tcell.NewHexColor(0xa0a1a7)),
			syntaxStyles(paper, tcell.NewHexColor(0xa626a4), tcell.NewHexColor(0x50a14f), tcell.NewHexColor(0xa0a1a7),
				tcell.NewHexColor(0x986801), tcell.NewHexColor(0xc18401), tcell.NewHexColor(0x4078f2), tcell.NewHexColor(0x383a42)),
		),
	}
}

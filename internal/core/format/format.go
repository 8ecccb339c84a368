// Package format holds the whole-document font style and its mapping onto
// terminal cell styles.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrBadSize  = errors.New("font size must be a positive whole number")
	ErrBadColor = errors.New("unrecognised colour")
)

// Attr is a bit-set of font style attributes.
type Attr uint8

const (
	Bold Attr = 1 << iota
	Italic
)

const (
	DefaultFamily = "Monospaced"
	DefaultSize   = 12
)

// Families lists the font families offered by the font picker.
var Families = []string{
	"Monospaced",
	"Serif",
	"SansSerif",
	"Dialog",
	"DialogInput",
}

// Color is a parsed colour together with the text it was parsed from.
// The zero value means the terminal default.
type Color struct {
	Spec  string
	Value tcell.Color
}

// IsDefault reports whether c leaves the terminal colour alone.
func (c Color) IsDefault() bool {
	return c.Value == tcell.ColorDefault
}

func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return c.Spec
}

// ParseColor accepts "#rrggbb" (or "#rgb") hex, a W3C colour name, or
// "default".
func ParseColor(spec string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	switch {
	case s == "" || s == "default":
		return Color{}, nil
	case strings.HasPrefix(s, "#"):
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, spec)
		}
		r, g, b := c.RGB255()
		return Color{Spec: s, Value: tcell.NewRGBColor(int32(r), int32(g), int32(b))}, nil
	}
	if v := tcell.GetColor(s); v != tcell.ColorDefault {
		return Color{Spec: s, Value: v}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrBadColor, spec)
}

// ParseSize parses a font size in points.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	return n, nil
}

// FontStyle applies uniformly to the whole document.
type FontStyle struct {
	Family    string
	Size      int
	Attrs     Attr
	Underline bool
	Fg        Color
	Bg        Color
}

// Default returns the initial font style.
func Default() FontStyle {
	return FontStyle{Family: DefaultFamily, Size: DefaultSize}
}

func (f FontStyle) Bold() bool   { return f.Attrs&Bold != 0 }
func (f FontStyle) Italic() bool { return f.Attrs&Italic != 0 }

// Toggle flips the attribute bits in a.
func (f *FontStyle) Toggle(a Attr) {
	f.Attrs ^= a
}

// ToggleUnderline flips the underline flag.
func (f *FontStyle) ToggleUnderline() {
	f.Underline = !f.Underline
}

// Apply layers the font style on top of base. Colours only override base
// when set.
func (f FontStyle) Apply(base tcell.Style) tcell.Style {
	s := base
	if f.Bold() {
		s = s.Bold(true)
	}
	if f.Italic() {
		s = s.Italic(true)
	}
	if f.Underline {
		s = s.Underline(true)
	}
	if !f.Fg.IsDefault() {
		s = s.Foreground(f.Fg.Value)
	}
	if !f.Bg.IsDefault() {
		s = s.Background(f.Bg.Value)
	}
	return s
}

// Summary is a short description for the status bar, e.g. "Serif 14 BI".
func (f FontStyle) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d", f.Family, f.Size)
	flags := ""
	if f.Bold() {
		flags += "B"
	}
	if f.Italic() {
		flags += "I"
	}
	if f.Underline {
		flags += "U"
	}
	if flags != "" {
		b.WriteString(" " + flags)
	}
	return b.String()
}

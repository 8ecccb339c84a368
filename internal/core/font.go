package core

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidepad/internal/core/format"
	"github.com/bethropolis/tidepad/internal/event"
)

// Font returns the document font style.
func (e *Editor) Font() format.FontStyle {
	return e.font
}

func (e *Editor) formatChanged(what string) {
	e.dispatch(event.TypeFormatChanged, event.FormatChangedData{What: what})
}

func (e *Editor) ToggleBold() {
	e.font.Toggle(format.Bold)
	e.formatChanged("bold")
}

func (e *Editor) ToggleItalic() {
	e.font.Toggle(format.Italic)
	e.formatChanged("italic")
}

func (e *Editor) ToggleUnderline() {
	e.font.ToggleUnderline()
	e.formatChanged("underline")
}

// SetFontFamily changes the family, keeping style and size.
func (e *Editor) SetFontFamily(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: font family is empty", ErrInvalidInput)
	}
	e.font.Family = name
	e.formatChanged("family")
	return nil
}

// SetFontSize parses and applies a point size. Bad input leaves the style
// unchanged.
func (e *Editor) SetFontSize(size string) error {
	n, err := format.ParseSize(size)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	e.font.Size = n
	e.formatChanged("size")
	return nil
}

// SetForeground sets the text colour from a hex value or colour name.
func (e *Editor) SetForeground(spec string) error {
	c, err := format.ParseColor(spec)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	e.font.Fg = c
	e.formatChanged("fg")
	return nil
}

// SetBackground sets the background colour from a hex value or colour name.
func (e *Editor) SetBackground(spec string) error {
	c, err := format.ParseColor(spec)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	e.font.Bg = c
	e.formatChanged("bg")
	return nil
}

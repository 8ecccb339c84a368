// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Rect is a screen area.
type Rect struct {
	X, Y, Width, Height int
}

// Fill paints the rectangle with spaces in style.
func Fill(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText draws text from x, clipping at limit (exclusive), and returns
// the x after the last cluster drawn. Wide clusters that would straddle the
// limit are dropped.
func DrawText(s tcell.Screen, x, y, limit int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > limit {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			s.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}

// TextWidth returns the display width of text in cells.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// DrawBox draws a single-line border around r and fills its inside.
func DrawBox(s tcell.Screen, r Rect, style tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	Fill(s, Rect{r.X + 1, r.Y + 1, r.Width - 2, r.Height - 2}, style)
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	s.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	s.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// VisualColumn returns the screen column of rune index runeIndex in line,
// expanding tabs to tabWidth stops.
func VisualColumn(line string, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	visual := 0
	current := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if current >= runeIndex {
			break
		}
		runes := gr.Runes()
		visual += ClusterWidth(runes, gr.Width(), visual, tabWidth)
		current += len(runes)
	}
	return visual
}

// ClusterWidth is the cell width of a cluster at visual column col.
func ClusterWidth(runes []rune, width, col, tabWidth int) int {
	if len(runes) == 1 && runes[0] == '\t' {
		if tabWidth <= 0 {
			tabWidth = 1
		}
		return tabWidth - col%tabWidth
	}
	if len(runes) == 1 && runes[0] == '\r' {
		return 0
	}
	return width
}

// Package render draws the document text area.
package render

import (
	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/core/find"
	"github.com/bethropolis/tidepad/internal/core/format"
	"github.com/bethropolis/tidepad/internal/highlighter"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// View is the scroll state of the text area.
type View struct {
	TopLine   int // First visible line (0-based)
	LeftCol   int // First visible screen column
	TabWidth  int
	ScrollOff int // Lines kept visible above/below the caret
}

// NewView creates a view scrolled to the top.
func NewView(tabWidth, scrollOff int) *View {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &View{TabWidth: tabWidth, ScrollOff: scrollOff}
}

// Reset scrolls back to the origin, e.g. after loading a file.
func (v *View) Reset() {
	v.TopLine, v.LeftCol = 0, 0
}

// caretCell returns the caret's 0-based line and visual column.
func (v *View) caretCell(ed *core.Editor) (types.Position, int) {
	buf := ed.Buffer()
	pos, err := buf.OffsetToPosition(ed.Caret())
	if err != nil {
		logger.Warnf("render: caret %d outside document: %v", ed.Caret(), err)
		return types.Position{}, 0
	}
	line, _ := buf.Line(pos.Line)
	return pos, tui.VisualColumn(line, pos.Col, v.TabWidth)
}

// ScrollToCaret adjusts the view so the caret is inside area.
func (v *View) ScrollToCaret(ed *core.Editor, area tui.Rect) {
	if area.Height <= 0 || area.Width <= 0 {
		return
	}
	pos, visCol := v.caretCell(ed)

	off := v.ScrollOff
	if limit := (area.Height - 1) / 2; off > limit {
		off = limit
	}
	if pos.Line < v.TopLine+off {
		v.TopLine = pos.Line - off
	}
	if pos.Line >= v.TopLine+area.Height-off {
		v.TopLine = pos.Line - area.Height + off + 1
	}
	if v.TopLine < 0 {
		v.TopLine = 0
	}

	if visCol < v.LeftCol {
		v.LeftCol = visCol
	}
	if visCol >= v.LeftCol+area.Width {
		v.LeftCol = visCol - area.Width + 1
	}
}

// attrsOnly layers the font's attributes and background over style but
// keeps style's foreground, so syntax colours survive a text colour.
func attrsOnly(font format.FontStyle, style tcell.Style) tcell.Style {
	f := font
	f.Fg = format.Color{}
	return f.Apply(style)
}

func within(offset int, matches []find.Match) bool {
	for _, m := range matches {
		if offset >= m.Start && offset < m.End {
			return true
		}
	}
	return false
}

// Draw renders the visible lines into area. Style precedence, lowest first:
// document font, syntax colour, search match, selection.
func (v *View) Draw(s tcell.Screen, area tui.Rect, ed *core.Editor, th *theme.Theme, hl highlighter.HighlightResult) {
	if area.Height <= 0 || area.Width <= 0 {
		return
	}
	font := ed.Font()
	baseStyle := font.Apply(th.GetStyle("Default"))
	selectionStyle := attrsOnly(font, th.GetStyle("Selection"))
	searchStyle := attrsOnly(font, th.GetStyle("SearchHighlight"))

	selStart, selEnd, selActive := ed.Selection()
	matches := ed.SearchMatches()
	buf := ed.Buffer()

	tui.Fill(s, area, baseStyle)

	for row := 0; row < area.Height; row++ {
		lineIdx := v.TopLine + row
		line, err := buf.Line(lineIdx)
		if err != nil {
			break
		}
		lineStart, _ := buf.LineStart(lineIdx)
		y := area.Y + row

		visual := 0
		runeIdx := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			runes := gr.Runes()
			w := tui.ClusterWidth(runes, gr.Width(), visual, v.TabWidth)
			offset := lineStart + runeIdx

			if visual+w > v.LeftCol && w > 0 {
				style := baseStyle
				if hl != nil {
					if name, ok := hl.StyleAt(lineIdx, runeIdx); ok {
						style = attrsOnly(font, th.GetStyle(name))
					}
				}
				if within(offset, matches) {
					style = searchStyle
				}
				if selActive && offset >= selStart && offset < selEnd {
					style = selectionStyle
				}
				v.drawCluster(s, area, y, visual-v.LeftCol, runes, w, style)
			}

			visual += w
			runeIdx += len(runes)
			if visual >= v.LeftCol+area.Width {
				break
			}
		}

		// Show a selected line break as one highlighted cell.
		if selActive {
			nl := lineStart + runeIdx
			if lineIdx < buf.LineCount()-1 && nl >= selStart && nl < selEnd {
				if x := visual - v.LeftCol; x >= 0 && x < area.Width {
					s.SetContent(area.X+x, y, ' ', nil, selectionStyle)
				}
			}
		}
	}
}

func (v *View) drawCluster(s tcell.Screen, area tui.Rect, y, x int, runes []rune, w int, style tcell.Style) {
	blank := runes[0] == '\t'
	for i := 0; i < w; i++ {
		cx := x + i
		if cx < 0 || cx >= area.Width {
			continue
		}
		if i == 0 && !blank && x >= 0 {
			s.SetContent(area.X+cx, y, runes[0], runes[1:], style)
			continue
		}
		if i > 0 && !blank {
			// Continuation cell of a wide cluster.
			continue
		}
		s.SetContent(area.X+cx, y, ' ', nil, style)
	}
}

// PlaceCursor shows the terminal cursor at the caret, or hides it when the
// caret is scrolled out of area.
func (v *View) PlaceCursor(s tcell.Screen, area tui.Rect, ed *core.Editor) {
	pos, visCol := v.caretCell(ed)
	x := visCol - v.LeftCol
	y := pos.Line - v.TopLine
	if x < 0 || x >= area.Width || y < 0 || y >= area.Height {
		s.HideCursor()
		return
	}
	s.ShowCursor(area.X+x, area.Y+y)
}

package render

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/highlighter"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
)

func setup(t *testing.T, text string, w, h int) (tcell.SimulationScreen, *core.Editor) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s, core.NewEditor(buffer.NewRuneBufferFromString(text), core.Options{})
}

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawTextAndTabs(t *testing.T) {
	s, ed := setup(t, "one\n\ttwo", 20, 3)
	v := NewView(4, 0)
	area := tui.Rect{X: 0, Y: 0, Width: 20, Height: 3}
	v.Draw(s, area, ed, &theme.Default, nil)

	if got := rowText(s, 0, 20); got != "one" {
		t.Fatalf("row0=%q", got)
	}
	if got := rowText(s, 1, 20); got != "    two" {
		t.Fatalf("row1=%q", got)
	}
}

func TestDrawSelectionAndSyntaxStyles(t *testing.T) {
	s, ed := setup(t, "abcd", 10, 1)
	ed.Select(1, 3)
	hl := highlighter.HighlightResult{0: {{StartCol: 0, EndCol: 4, StyleName: "keyword"}}}
	v := NewView(4, 0)
	v.Draw(s, tui.Rect{Width: 10, Height: 1}, ed, &theme.Default, hl)

	_, _, selStyle, _ := s.GetContent(1, 0)
	if selStyle != theme.Default.GetStyle("Selection") {
		t.Fatalf("selected cell style=%v", selStyle)
	}
	_, _, kwStyle, _ := s.GetContent(0, 0)
	if kwStyle != theme.Default.GetStyle("keyword") {
		t.Fatalf("keyword cell style=%v", kwStyle)
	}
}

func TestFontAttributesLayered(t *testing.T) {
	s, ed := setup(t, "ab", 10, 1)
	ed.ToggleBold()
	v := NewView(4, 0)
	v.Draw(s, tui.Rect{Width: 10, Height: 1}, ed, &theme.Default, nil)
	_, _, style, _ := s.GetContent(0, 0)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Fatalf("expected bold text")
	}
}

func TestScrollToCaret(t *testing.T) {
	text := strings.Repeat("line\n", 50)
	_, ed := setup(t, text, 10, 5)
	v := NewView(4, 1)
	area := tui.Rect{Width: 10, Height: 5}

	ed.SetCaret(ed.Buffer().PositionToOffset(types.Position{Line: 20}))
	v.ScrollToCaret(ed, area)
	if v.TopLine != 20-5+1+1 {
		t.Fatalf("TopLine=%d", v.TopLine)
	}

	ed.SetCaret(0)
	v.ScrollToCaret(ed, area)
	if v.TopLine != 0 {
		t.Fatalf("TopLine=%d after returning to top", v.TopLine)
	}
}

func TestPlaceCursor(t *testing.T) {
	s, ed := setup(t, "ab\n\tc", 10, 3)
	ed.SetCaret(4) // After the tab on line 2
	v := NewView(4, 0)
	v.PlaceCursor(s, tui.Rect{Y: 1, Width: 10, Height: 2}, ed)
	x, y, visible := s.GetCursor()
	if !visible || x != 4 || y != 2 {
		t.Fatalf("cursor=(%d,%d,%v)", x, y, visible)
	}
}

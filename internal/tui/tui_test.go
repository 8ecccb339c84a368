package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/gdamore/tcell/v2"
)

func newSim(t *testing.T, w, h int) *TUI {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	ui, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(ui.Close)
	return ui
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestVisualColumn(t *testing.T) {
	cases := []struct {
		line  string
		index int
		want  int
	}{
		{"abc", 2, 2},
		{"\tx", 1, 4},
		{"ab\tx", 3, 4},
		{"中文x", 2, 4},
		{"e\u0301x", 2, 1}, // Combining accent belongs to the first cluster
	}
	for _, c := range cases {
		if got := VisualColumn(c.line, c.index, 4); got != c.want {
			t.Fatalf("VisualColumn(%q,%d)=%d, want %d", c.line, c.index, got, c.want)
		}
	}
}

func TestFieldEditing(t *testing.T) {
	f := NewField("Find:", "ac")
	f.Left()
	f.Insert('b')
	if f.Text() != "abc" || f.Cursor != 2 {
		t.Fatalf("text=%q cursor=%d", f.Text(), f.Cursor)
	}
	f.Home()
	f.DeleteForward()
	f.End()
	f.Backspace()
	if f.Text() != "b" {
		t.Fatalf("text=%q", f.Text())
	}
}

func TestChoiceFieldCycles(t *testing.T) {
	f := NewChoiceField("Font:", "Serif", []string{"Monospaced", "Serif", "SansSerif"})
	f.Cycle(1)
	if f.Text() != "SansSerif" {
		t.Fatalf("text=%q", f.Text())
	}
	f.Cycle(1)
	if f.Text() != "Monospaced" {
		t.Fatalf("wrap forward text=%q", f.Text())
	}
	f.Cycle(-1)
	if f.Text() != "SansSerif" {
		t.Fatalf("wrap back text=%q", f.Text())
	}
}

func TestDialogFocus(t *testing.T) {
	d := &Dialog{Fields: []*Field{NewField("A", ""), NewField("B", "")}, Buttons: []string{"OK", "Cancel"}}
	d.NextFocus(2)
	if d.FocusedField() != nil || d.FocusedButton() != 0 {
		t.Fatalf("focus=%d", d.Focus)
	}
	d.NextFocus(2)
	if d.FocusedField() != d.Fields[0] {
		t.Fatalf("focus should wrap to first field, got %d", d.Focus)
	}
	d.NextFocus(-1)
	if d.FocusedButton() != 1 {
		t.Fatalf("focus should wrap back to last button, got %d", d.Focus)
	}
}

func TestDrawDialogAndMenu(t *testing.T) {
	ui := newSim(t, 60, 15)
	s := ui.GetScreen()

	d := &Dialog{Kind: DialogConfirm, Title: "Exit", Lines: []string{"Save changes?"}, Buttons: []string{"Save", "Discard", "Cancel"}}
	DrawDialog(s, d, &theme.Default)
	var found bool
	for y := 0; y < 15; y++ {
		line := rowText(s, y)
		if strings.Contains(line, "[ Save ]") && strings.Contains(line, "[ Cancel ]") {
			found = true
		}
	}
	if !found {
		t.Fatalf("buttons not drawn")
	}

	menus := []commands.Menu{
		{Title: "File", Items: []commands.MenuItem{{CommandID: "file.new", Label: "New", Shortcut: "Ctrl+N"}}},
		{Title: "Edit", Items: []commands.MenuItem{{CommandID: "edit.undo", Label: "Undo"}}},
	}
	DrawMenuBar(s, 60, MenuView{Menus: menus, Open: true, Active: 0}, &theme.Default)
	if bar := rowText(s, 0); !strings.Contains(bar, "File") || !strings.Contains(bar, "Edit") {
		t.Fatalf("bar=%q", bar)
	}
	if item := rowText(s, 2); !strings.Contains(item, "New") || !strings.Contains(item, "Ctrl+N") {
		t.Fatalf("item=%q", item)
	}
}

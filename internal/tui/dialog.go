package tui

import (
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Field is a single-line text input, optionally backed by a list of
// choices cycled with Up/Down.
type Field struct {
	Label   string
	Value   []rune
	Cursor  int
	Choices []string
	choice  int
}

// NewField creates a field holding value with the cursor at its end.
func NewField(label, value string) *Field {
	v := []rune(value)
	return &Field{Label: label, Value: v, Cursor: len(v)}
}

// NewChoiceField creates a field preset to the choice equal to value.
func NewChoiceField(label, value string, choices []string) *Field {
	f := NewField(label, value)
	f.Choices = choices
	for i, c := range choices {
		if c == value {
			f.choice = i
		}
	}
	return f
}

func (f *Field) Text() string { return string(f.Value) }

func (f *Field) SetText(text string) {
	f.Value = []rune(text)
	f.Cursor = len(f.Value)
}

func (f *Field) Insert(r rune) {
	f.Value = append(f.Value[:f.Cursor], append([]rune{r}, f.Value[f.Cursor:]...)...)
	f.Cursor++
}

func (f *Field) Backspace() {
	if f.Cursor == 0 {
		return
	}
	f.Value = append(f.Value[:f.Cursor-1], f.Value[f.Cursor:]...)
	f.Cursor--
}

func (f *Field) DeleteForward() {
	if f.Cursor >= len(f.Value) {
		return
	}
	f.Value = append(f.Value[:f.Cursor], f.Value[f.Cursor+1:]...)
}

func (f *Field) Left() {
	if f.Cursor > 0 {
		f.Cursor--
	}
}

func (f *Field) Right() {
	if f.Cursor < len(f.Value) {
		f.Cursor++
	}
}

func (f *Field) Home() { f.Cursor = 0 }
func (f *Field) End()  { f.Cursor = len(f.Value) }

// Cycle moves through Choices by delta, wrapping. No-op without choices.
func (f *Field) Cycle(delta int) {
	n := len(f.Choices)
	if n == 0 {
		return
	}
	f.choice = ((f.choice+delta)%n + n) % n
	f.SetText(f.Choices[f.choice])
}

// DialogKind selects the dialog's title style.
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogWarning
	DialogError
	DialogPrompt
	DialogConfirm
)

// Dialog is a centred box with message lines, input fields and buttons.
// Focus indexes fields first, then buttons.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Lines   []string
	Fields  []*Field
	Buttons []string
	Focus   int
}

// FocusCount is the number of focusable elements.
func (d *Dialog) FocusCount() int { return len(d.Fields) + len(d.Buttons) }

// FocusedField returns the field with focus, or nil.
func (d *Dialog) FocusedField() *Field {
	if d.Focus >= 0 && d.Focus < len(d.Fields) {
		return d.Fields[d.Focus]
	}
	return nil
}

// FocusedButton returns the index of the button with focus, or -1.
func (d *Dialog) FocusedButton() int {
	b := d.Focus - len(d.Fields)
	if b >= 0 && b < len(d.Buttons) {
		return b
	}
	return -1
}

// NextFocus advances focus by delta, wrapping.
func (d *Dialog) NextFocus(delta int) {
	n := d.FocusCount()
	if n == 0 {
		return
	}
	d.Focus = ((d.Focus+delta)%n + n) % n
}

const fieldMinWidth = 24

// DialogRect computes the dialog box for a screen of the given size.
func DialogRect(d *Dialog, width, height int) Rect {
	inner := TextWidth(d.Title) + 4
	for _, l := range d.Lines {
		if w := TextWidth(l); w > inner {
			inner = w
		}
	}
	labelW := 0
	for _, f := range d.Fields {
		if w := TextWidth(f.Label); w > labelW {
			labelW = w
		}
	}
	if len(d.Fields) > 0 && labelW+2+fieldMinWidth > inner {
		inner = labelW + 2 + fieldMinWidth
	}
	if w := buttonsWidth(d.Buttons); w > inner {
		inner = w
	}
	inner += 2
	if inner > width-2 {
		inner = width - 2
	}

	rows := len(d.Lines) + len(d.Fields) + 1
	if len(d.Lines) > 0 && len(d.Fields) > 0 {
		rows++
	}
	if len(d.Buttons) > 0 {
		rows += 2
	}
	h := rows + 2
	if h > height {
		h = height
	}
	w := inner + 2
	return Rect{X: (width - w) / 2, Y: (height - h) / 2, Width: w, Height: h}
}

func buttonsWidth(buttons []string) int {
	w := 0
	for i, b := range buttons {
		if i > 0 {
			w += 2
		}
		w += TextWidth(b) + 4
	}
	return w
}

// DrawDialog draws d centred and places the terminal cursor in the focused
// field, hiding it otherwise.
func DrawDialog(s tcell.Screen, d *Dialog, th *theme.Theme) {
	width, height := s.Size()
	r := DialogRect(d, width, height)
	style := th.GetStyle("Dialog")
	titleStyle := th.GetStyle("DialogTitle")
	if d.Kind == DialogError || d.Kind == DialogWarning {
		titleStyle = th.GetStyle("StatusBarError")
	}
	DrawBox(s, r, style)

	if d.Title != "" {
		title := " " + d.Title + " "
		DrawText(s, r.X+(r.Width-TextWidth(title))/2, r.Y, r.X+r.Width-1, title, titleStyle)
	}

	left, limit := r.X+2, r.X+r.Width-2
	y := r.Y + 1
	for _, l := range d.Lines {
		DrawText(s, left, y, limit, l, style)
		y++
	}
	if len(d.Lines) > 0 && len(d.Fields) > 0 {
		y++
	}

	labelW := 0
	for _, f := range d.Fields {
		if w := TextWidth(f.Label); w > labelW {
			labelW = w
		}
	}
	cursorX, cursorY := -1, -1
	for i, f := range d.Fields {
		DrawText(s, left, y, limit, f.Label, style)
		fx := left + labelW + 2
		fieldStyle := th.GetStyle("DialogField")
		if i == d.Focus {
			fieldStyle = th.GetStyle("DialogFieldActive")
		}
		Fill(s, Rect{fx, y, limit - fx, 1}, fieldStyle)
		DrawText(s, fx, y, limit, string(f.Value), fieldStyle)
		if len(f.Choices) > 0 && limit-1 > fx {
			s.SetContent(limit-1, y, tcell.RuneDArrow, nil, fieldStyle)
		}
		if i == d.Focus {
			cursorX = fx + TextWidth(string(f.Value[:f.Cursor]))
			cursorY = y
		}
		y++
	}

	if len(d.Buttons) > 0 {
		y = r.Y + r.Height - 2
		x := r.X + (r.Width-buttonsWidth(d.Buttons))/2
		for i, b := range d.Buttons {
			bStyle := th.GetStyle("DialogButton")
			if d.FocusedButton() == i {
				bStyle = th.GetStyle("DialogButtonActive")
			}
			x = DrawText(s, x, y, limit+1, "[ "+b+" ]", bStyle) + 2
		}
	}

	if cursorX >= 0 && cursorX < limit {
		s.ShowCursor(cursorX, cursorY)
	} else {
		s.HideCursor()
	}
}

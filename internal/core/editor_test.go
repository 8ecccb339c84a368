package core

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/core/cursor"
	"github.com/bethropolis/tidepad/internal/core/format"
	"github.com/bethropolis/tidepad/internal/event"
)

func newEditor(text string) *Editor {
	return NewEditor(buffer.NewRuneBufferFromString(text), Options{})
}

func TestCaretToLineColumn(t *testing.T) {
	text := "ab\n\ncdé\nf"
	e := newEditor(text)

	// Count line breaks by hand for every valid offset.
	runes := []rune(text)
	line, col := 1, 1
	for o := 0; o <= len(runes); o++ {
		gotLine, gotCol, err := e.CaretToLineColumn(o)
		if err != nil {
			t.Fatalf("offset %d: %v", o, err)
		}
		if gotLine != line || gotCol != col {
			t.Fatalf("offset %d = (%d,%d), want (%d,%d)", o, gotLine, gotCol, line, col)
		}
		if o < len(runes) && runes[o] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	gotLine, gotCol, err := e.CaretToLineColumn(len(runes) + 1)
	if !errors.Is(err, buffer.ErrOutOfRange) || gotLine != -1 || gotCol != -1 {
		t.Fatalf("past end = (%d,%d,%v), want (-1,-1,ErrOutOfRange)", gotLine, gotCol, err)
	}
}

func TestInsertUndoRedoRoundTrip(t *testing.T) {
	e := newEditor("hello")
	e.SetCaret(5)

	if err := e.Insert(5, " world"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !e.IsModified() || e.Caret() != 11 {
		t.Fatalf("after insert modified=%v caret=%d", e.IsModified(), e.Caret())
	}

	ok, err := e.Undo()
	if err != nil || !ok {
		t.Fatalf("Undo=%v,%v", ok, err)
	}
	if e.Text() != "hello" || e.Caret() != 5 {
		t.Fatalf("after undo text=%q caret=%d", e.Text(), e.Caret())
	}

	ok, err = e.Redo()
	if err != nil || !ok {
		t.Fatalf("Redo=%v,%v", ok, err)
	}
	if e.Text() != "hello world" || e.Caret() != 11 {
		t.Fatalf("after redo text=%q caret=%d", e.Text(), e.Caret())
	}
}

func TestUndoRedoEmptyStacks(t *testing.T) {
	e := newEditor("x")
	if ok, err := e.Undo(); ok || err != nil {
		t.Fatalf("Undo on empty log=%v,%v", ok, err)
	}
	if ok, err := e.Redo(); ok || err != nil {
		t.Fatalf("Redo on empty log=%v,%v", ok, err)
	}
	if e.IsModified() {
		t.Fatalf("no-op undo must not dirty the document")
	}
}

func TestNewEditDiscardsRedo(t *testing.T) {
	e := newEditor("")
	_ = e.Insert(0, "a")
	_, _ = e.Undo()
	if !e.CanRedo() {
		t.Fatalf("expected redo after undo")
	}
	_ = e.Insert(0, "b")
	if e.CanRedo() {
		t.Fatalf("new edit must clear redo history")
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	e := newEditor("abc")
	if _, err := e.Delete(2, 5); !errors.Is(err, buffer.ErrOutOfRange) {
		t.Fatalf("err=%v, want ErrOutOfRange", err)
	}
	if _, err := e.Delete(1, math.MaxInt); !errors.Is(err, buffer.ErrOutOfRange) {
		t.Fatalf("huge length err=%v, want ErrOutOfRange", err)
	}
	if e.Text() != "abc" || e.IsModified() || e.CanUndo() {
		t.Fatalf("failed delete must not mutate")
	}
}

func TestUndoToSaveClearsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	e := newEditor("")
	_ = e.Insert(0, "a")
	if err := e.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = e.Insert(1, "b")

	steps := []struct {
		op    func() (bool, error)
		text  string
		dirty bool
	}{
		{e.Undo, "a", false},
		{e.Undo, "", true},
		{e.Redo, "a", false},
		{e.Redo, "ab", true},
	}
	for i, s := range steps {
		if ok, err := s.op(); !ok || err != nil {
			t.Fatalf("step %d: ok=%v err=%v", i, ok, err)
		}
		if e.Text() != s.text || e.IsModified() != s.dirty {
			t.Fatalf("step %d: text=%q modified=%v, want %q %v", i, e.Text(), e.IsModified(), s.text, s.dirty)
		}
	}
}

func TestReplaceFirstInvalidUTF8(t *testing.T) {
	e := newEditor("aé b")
	if err := e.ReplaceFirst("\xa9", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if e.Text() != "aé b" {
		t.Fatalf("text=%q", e.Text())
	}
}

func TestFind(t *testing.T) {
	e := newEditor("the needle in haystack, needle again")

	start, end, ok := e.Find("needle", 0)
	if !ok || start != 4 || end != 10 {
		t.Fatalf("first find=(%d,%d,%v)", start, end, ok)
	}
	start, _, ok = e.Find("needle", start+1)
	if !ok || start != 24 {
		t.Fatalf("second find=%d,%v want 24", start, ok)
	}
	start, _, ok = e.Find("needle", start+1)
	if !ok || start != 4 {
		t.Fatalf("wrapped find=%d,%v want 4", start, ok)
	}
	if _, _, ok := e.Find("thread", 0); ok {
		t.Fatalf("absent text should not be found")
	}
}

func TestFindNextSelectsAndWraps(t *testing.T) {
	e := newEditor("the needle in haystack, needle again")

	m, err := e.FindNext("needle")
	if err != nil || m.Start != 4 {
		t.Fatalf("FindNext=%+v,%v", m, err)
	}
	if got := e.SelectedText(); got != "needle" {
		t.Fatalf("selection=%q", got)
	}
	if len(e.SearchMatches()) != 2 {
		t.Fatalf("matches=%v", e.SearchMatches())
	}

	m, _ = e.FindNext("needle")
	if m.Start != 24 || m.Wrapped {
		t.Fatalf("second=%+v", m)
	}
	m, _ = e.FindNext("needle")
	if m.Start != 4 || !m.Wrapped {
		t.Fatalf("third=%+v, want wrapped to 4", m)
	}

	if _, err := e.FindNext("thread"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if _, err := e.FindNext(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}

func TestReplaceFirst(t *testing.T) {
	e := newEditor("banana")
	if err := e.ReplaceFirst("a", "b"); err != nil {
		t.Fatalf("ReplaceFirst: %v", err)
	}
	if e.Text() != "bbnana" {
		t.Fatalf("text=%q, want bbnana", e.Text())
	}

	// One undo step restores the original.
	if ok, _ := e.Undo(); !ok || e.Text() != "banana" {
		t.Fatalf("undo replace text=%q", e.Text())
	}
	if e.CanUndo() {
		t.Fatalf("replace should be a single undo record")
	}
}

func TestReplaceFirstValidation(t *testing.T) {
	tests := []struct {
		name        string
		find, repl  string
		wantErr     error
		wantInvalid bool
	}{
		{"empty find", "", "x", ErrEmptyFind, true},
		{"empty replacement", "a", "", ErrEmptyReplacement, true},
		{"not found", "z", "x", ErrNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor("banana")
			err := e.ReplaceFirst(tt.find, tt.repl)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v, want %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrInvalidInput) != tt.wantInvalid {
				t.Fatalf("ErrInvalidInput classification wrong for %v", err)
			}
			if e.Text() != "banana" || e.IsModified() {
				t.Fatalf("document changed on error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	text := "line one\r\nline two\n\ttabbed ü\n"

	e := newEditor("")
	if err := e.Insert(0, text); err != nil {
		t.Fatal(err)
	}
	if err := e.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if e.IsModified() || e.FilePath() != path {
		t.Fatalf("after save modified=%v path=%q", e.IsModified(), e.FilePath())
	}

	other := newEditor("stale")
	_ = other.Insert(0, "x")
	if err := other.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if other.Text() != text {
		t.Fatalf("round trip=%q, want %q", other.Text(), text)
	}
	if other.IsModified() || other.CanUndo() || other.Caret() != 0 {
		t.Fatalf("load should reset dirty flag, undo log and caret")
	}
}

func TestLoadFailureIsIOError(t *testing.T) {
	e := newEditor("keep")
	err := e.Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v, want ErrIO wrapping ErrNotExist", err)
	}
	if e.Text() != "keep" {
		t.Fatalf("failed load changed the document")
	}
}

func TestSaveCurrentWithoutPath(t *testing.T) {
	e := newEditor("x")
	if err := e.SaveCurrent(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("err=%v, want ErrNoPath", err)
	}
}

func TestSaveToBadPath(t *testing.T) {
	e := newEditor("x")
	bad := filepath.Join(t.TempDir(), "missing-dir", "f.txt")
	if err := e.Save(bad); !errors.Is(err, ErrIO) {
		t.Fatalf("err=%v, want ErrIO", err)
	}
	if e.FilePath() != "" {
		t.Fatalf("failed save must not adopt the path")
	}
}

func TestNew(t *testing.T) {
	e := newEditor("old")
	e.SetFilePath("/tmp/old.txt")
	_ = e.Insert(0, "x")
	e.New()
	if e.Text() != "" || e.FilePath() != "" || e.IsModified() || e.CanUndo() {
		t.Fatalf("New left state: text=%q path=%q", e.Text(), e.FilePath())
	}
}

func TestClipboardOps(t *testing.T) {
	e := newEditor("hello world")
	if ok, _ := e.Copy(); ok {
		t.Fatalf("copy without selection should report false")
	}

	e.Select(0, 5)
	if ok, err := e.Cut(); !ok || err != nil {
		t.Fatalf("Cut=%v,%v", ok, err)
	}
	if e.Text() != " world" {
		t.Fatalf("after cut=%q", e.Text())
	}

	e.MoveCaret(cursor.DocEnd, false)
	if ok, err := e.Paste(); !ok || err != nil {
		t.Fatalf("Paste=%v,%v", ok, err)
	}
	if e.Text() != " worldhello" || e.Caret() != 11 {
		t.Fatalf("after paste=%q caret=%d", e.Text(), e.Caret())
	}

	// Paste over a selection replaces it in one undo step.
	e.Select(0, 6)
	_, _ = e.Paste()
	if e.Text() != "hellohello" {
		t.Fatalf("paste over selection=%q", e.Text())
	}
	_, _ = e.Undo()
	if e.Text() != " worldhello" {
		t.Fatalf("undo paste=%q", e.Text())
	}
}

func TestSelectAllAndTyping(t *testing.T) {
	e := newEditor("abc")
	e.SelectAll()
	if got := e.SelectedText(); got != "abc" {
		t.Fatalf("SelectAll=%q", got)
	}
	if err := e.InsertText("z"); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "z" {
		t.Fatalf("typing over selection=%q", e.Text())
	}
	_ = e.Backspace()
	if e.Text() != "" {
		t.Fatalf("backspace=%q", e.Text())
	}
	_ = e.Backspace() // at start: no-op
}

func TestShiftSelection(t *testing.T) {
	e := newEditor("abcdef")
	e.SetCaret(1)
	e.MoveCaret(cursor.Right, true)
	e.MoveCaret(cursor.Right, true)
	if got := e.SelectedText(); got != "bc" {
		t.Fatalf("selection=%q", got)
	}
	e.MoveCaret(cursor.Right, false)
	if _, _, ok := e.Selection(); ok {
		t.Fatalf("plain motion should drop the selection")
	}
}

func TestFontToggles(t *testing.T) {
	e := newEditor("")
	before := e.Font()

	e.ToggleBold()
	if !e.Font().Bold() {
		t.Fatalf("bold not set")
	}
	e.ToggleBold()
	e.ToggleItalic()
	e.ToggleItalic()
	e.ToggleUnderline()
	e.ToggleUnderline()
	if e.Font() != before {
		t.Fatalf("double toggles should restore %+v, got %+v", before, e.Font())
	}
}

func TestFontSetters(t *testing.T) {
	e := newEditor("")
	if err := e.SetFontSize("18"); err != nil || e.Font().Size != 18 {
		t.Fatalf("SetFontSize=%v size=%d", err, e.Font().Size)
	}
	if err := e.SetFontSize("big"); !errors.Is(err, ErrInvalidInput) || !errors.Is(err, format.ErrBadSize) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
	if e.Font().Size != 18 {
		t.Fatalf("invalid size changed the style")
	}

	if err := e.SetFontFamily("Serif"); err != nil || e.Font().Family != "Serif" {
		t.Fatalf("SetFontFamily=%v", err)
	}
	if err := e.SetFontFamily("  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty family err=%v", err)
	}

	if err := e.SetForeground("#336699"); err != nil || e.Font().Fg.IsDefault() {
		t.Fatalf("SetForeground=%v", err)
	}
	if err := e.SetBackground("nope"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad colour err=%v", err)
	}
}

func TestEditorEvents(t *testing.T) {
	e := newEditor("")
	mgr := event.NewManager()
	e.SetEventManager(mgr)

	var seen []string
	for _, typ := range []event.Type{event.TypeBufferModified, event.TypeCaretMoved, event.TypeFormatChanged, event.TypeBufferSaved} {
		mgr.Subscribe(typ, func(ev event.Event) bool {
			seen = append(seen, ev.Type.String())
			return false
		})
	}

	_ = e.Insert(0, "hi")
	e.ToggleBold()
	_ = e.Save(filepath.Join(t.TempDir(), "a.txt"))

	got := strings.Join(seen, ",")
	want := "CaretMoved,BufferModified,FormatChanged,BufferSaved"
	if got != want {
		t.Fatalf("events=%s, want %s", got, want)
	}
}

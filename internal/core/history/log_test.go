package history

import (
	"testing"

	"github.com/bethropolis/tidepad/internal/buffer"
)

// apply performs change on buf and records it, mimicking an editor edit.
func apply(t *testing.T, l *Log, buf buffer.Buffer, c Change) {
	t.Helper()
	var err error
	switch c.Type {
	case InsertAction:
		_, err = buf.Insert(c.Offset, c.Text)
	case DeleteAction:
		c.Text, _, err = buf.Delete(c.Offset, c.textLen())
	case ReplaceAction:
		err = swap(buf, c.Offset, c.replacedLen(), c.Text)
	}
	if err != nil {
		t.Fatalf("apply %v: %v", c.Type, err)
	}
	l.Record(c)
}

func TestLog_UndoRedoInsert(t *testing.T) {
	buf := buffer.NewRuneBufferFromString("ac")
	l := NewLog(10)
	apply(t, l, buf, Change{Type: InsertAction, Offset: 1, Text: "b", CaretBefore: 1, CaretAfter: 2})

	c, ok, err := l.Undo(buf)
	if err != nil || !ok {
		t.Fatalf("Undo ok=%v err=%v", ok, err)
	}
	if buf.Text() != "ac" || c.CaretBefore != 1 {
		t.Fatalf("after undo text=%q caret=%d", buf.Text(), c.CaretBefore)
	}
	if !l.CanRedo() || l.CanUndo() {
		t.Fatalf("stacks wrong after undo")
	}

	c, ok, err = l.Redo(buf)
	if err != nil || !ok {
		t.Fatalf("Redo ok=%v err=%v", ok, err)
	}
	if buf.Text() != "abc" || c.CaretAfter != 2 {
		t.Fatalf("after redo text=%q caret=%d", buf.Text(), c.CaretAfter)
	}
}

func TestLog_UndoDeleteAndReplace(t *testing.T) {
	buf := buffer.NewRuneBufferFromString("hello world")
	l := NewLog(10)
	apply(t, l, buf, Change{Type: DeleteAction, Offset: 5, Text: " world"})
	apply(t, l, buf, Change{Type: ReplaceAction, Offset: 0, Text: "J", Replaced: "h"})
	if buf.Text() != "Jello" {
		t.Fatalf("setup text=%q", buf.Text())
	}

	if _, ok, _ := l.Undo(buf); !ok || buf.Text() != "hello" {
		t.Fatalf("undo replace text=%q", buf.Text())
	}
	if _, ok, _ := l.Undo(buf); !ok || buf.Text() != "hello world" {
		t.Fatalf("undo delete text=%q", buf.Text())
	}
	if _, ok, _ := l.Undo(buf); ok {
		t.Fatalf("expected nothing left to undo")
	}

	if _, ok, _ := l.Redo(buf); !ok || buf.Text() != "hello" {
		t.Fatalf("redo delete text=%q", buf.Text())
	}
	if _, ok, _ := l.Redo(buf); !ok || buf.Text() != "Jello" {
		t.Fatalf("redo replace text=%q", buf.Text())
	}
	if _, ok, _ := l.Redo(buf); ok {
		t.Fatalf("expected nothing left to redo")
	}
}

func TestLog_RecordClearsRedo(t *testing.T) {
	buf := buffer.NewRuneBuffer()
	l := NewLog(10)
	apply(t, l, buf, Change{Type: InsertAction, Offset: 0, Text: "a"})
	apply(t, l, buf, Change{Type: InsertAction, Offset: 1, Text: "b"})
	if _, _, err := l.Undo(buf); err != nil {
		t.Fatal(err)
	}
	apply(t, l, buf, Change{Type: InsertAction, Offset: 1, Text: "c"})

	if l.CanRedo() {
		t.Fatalf("new edit must clear redo")
	}
	if l.Len() != 2 {
		t.Fatalf("Len=%d, want 2", l.Len())
	}
	if buf.Text() != "ac" {
		t.Fatalf("text=%q", buf.Text())
	}
}

func TestLog_EvictsOldest(t *testing.T) {
	buf := buffer.NewRuneBuffer()
	l := NewLog(3)
	for i, s := range []string{"a", "b", "c", "d", "e"} {
		apply(t, l, buf, Change{Type: InsertAction, Offset: i, Text: s})
	}
	if l.Len() != 3 {
		t.Fatalf("Len=%d, want 3", l.Len())
	}
	undone := 0
	for l.CanUndo() {
		if _, _, err := l.Undo(buf); err != nil {
			t.Fatal(err)
		}
		undone++
	}
	if undone != 3 || buf.Text() != "ab" {
		t.Fatalf("undone=%d text=%q, want 3 and %q", undone, buf.Text(), "ab")
	}
}

func TestLog_Clear(t *testing.T) {
	buf := buffer.NewRuneBuffer()
	l := NewLog(0)
	apply(t, l, buf, Change{Type: InsertAction, Offset: 0, Text: "x"})
	l.Clear()
	if l.CanUndo() || l.CanRedo() || l.Len() != 0 {
		t.Fatalf("Clear left state behind")
	}
}

func TestLog_SavePoint(t *testing.T) {
	buf := buffer.NewRuneBuffer()
	l := NewLog(10)
	if !l.AtSavePoint() {
		t.Fatalf("fresh log should be at the save point")
	}
	apply(t, l, buf, Change{Type: InsertAction, Offset: 0, Text: "a"})
	l.MarkSaved()
	apply(t, l, buf, Change{Type: InsertAction, Offset: 1, Text: "b"})
	if l.AtSavePoint() {
		t.Fatalf("edit after save should leave the save point")
	}

	_, _, _ = l.Undo(buf)
	if !l.AtSavePoint() {
		t.Fatalf("undo back to the save should be at the save point")
	}
	_, _, _ = l.Undo(buf)
	if l.AtSavePoint() {
		t.Fatalf("undo past the save should not be at the save point")
	}

	// A new edit discards the branch holding the save point.
	apply(t, l, buf, Change{Type: InsertAction, Offset: 0, Text: "c"})
	_, _, _ = l.Undo(buf)
	for l.CanRedo() {
		_, _, _ = l.Redo(buf)
		if l.AtSavePoint() {
			t.Fatalf("discarded save point reached again")
		}
	}
}

func TestLog_SavePointEvicted(t *testing.T) {
	buf := buffer.NewRuneBuffer()
	l := NewLog(2)
	l.MarkSaved()
	for _, s := range []string{"a", "b", "c"} {
		apply(t, l, buf, Change{Type: InsertAction, Offset: buf.Len(), Text: s})
	}
	for l.CanUndo() {
		_, _, _ = l.Undo(buf)
		if l.AtSavePoint() {
			t.Fatalf("evicted save point reached at text %q", buf.Text())
		}
	}
}

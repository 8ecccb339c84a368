package core

import (
	"github.com/bethropolis/tidepad/internal/core/cursor"
	"github.com/bethropolis/tidepad/internal/logger"
)

// MoveCaret applies a caret motion. With extend the selection grows from
// the current caret; without it the selection is dropped.
func (e *Editor) MoveCaret(m cursor.Motion, extend bool) {
	from := e.caret
	to := cursor.Move(e.buffer, from, m, e.pageSize)
	if extend {
		e.selection.Extend(from, to)
	} else {
		e.selection.Clear()
	}
	e.setCaret(to)
}

// Selection returns the selected [start, end) range, if any.
func (e *Editor) Selection() (start, end int, ok bool) {
	return e.selection.Range()
}

// SelectedText returns the selected text, or "".
func (e *Editor) SelectedText() string {
	start, end, ok := e.selection.Range()
	if !ok {
		return ""
	}
	text, err := e.buffer.Slice(start, end)
	if err != nil {
		logger.Warnf("Editor: selection [%d,%d) outside document: %v", start, end, err)
		e.selection.Clear()
		return ""
	}
	return text
}

// Select selects [start, end) and puts the caret at end.
func (e *Editor) Select(start, end int) {
	e.selection.Set(start, end)
	e.setCaret(end)
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	e.Select(0, e.buffer.Len())
}

// ClearSelection drops the selection, keeping the caret.
func (e *Editor) ClearSelection() {
	e.selection.Clear()
}

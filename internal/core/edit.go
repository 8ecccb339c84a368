package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/core/history"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/types"
)

// Insert inserts text at offset, records it for undo and moves the caret
// to the end of the inserted text.
func (e *Editor) Insert(offset int, text string) error {
	before := e.caret
	info, err := e.buffer.Insert(offset, text)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	if info.NewLength == 0 {
		return nil
	}
	after := offset + info.NewLength
	e.history.Record(history.Change{
		Type:        history.InsertAction,
		Offset:      offset,
		Text:        text,
		CaretBefore: before,
		CaretAfter:  after,
	})
	e.afterEdit(info, after)
	return nil
}

// Delete removes length runes at offset and returns them.
func (e *Editor) Delete(offset, length int) (string, error) {
	before := e.caret
	removed, info, err := e.buffer.Delete(offset, length)
	if err != nil {
		return "", fmt.Errorf("delete: %w", err)
	}
	if removed == "" {
		return "", nil
	}
	e.history.Record(history.Change{
		Type:        history.DeleteAction,
		Offset:      offset,
		Text:        removed,
		CaretBefore: before,
		CaretAfter:  offset,
	})
	e.afterEdit(info, offset)
	return removed, nil
}

// replace swaps [start, end) for text as a single undo step.
func (e *Editor) replace(start, end int, text string) error {
	if start == end {
		return e.Insert(start, text)
	}
	if text == "" {
		_, err := e.Delete(start, end-start)
		return err
	}

	before := e.caret
	removed, _, err := e.buffer.Delete(start, end-start)
	if err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	if _, err := e.buffer.Insert(start, text); err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	n := utf8.RuneCountInString(text)
	e.history.Record(history.Change{
		Type:        history.ReplaceAction,
		Offset:      start,
		Text:        text,
		Replaced:    removed,
		CaretBefore: before,
		CaretAfter:  start + n,
	})
	e.afterEdit(types.EditInfo{Offset: start, OldLength: end - start, NewLength: n}, start+n)
	return nil
}

func (e *Editor) afterEdit(info types.EditInfo, caret int) {
	e.selection.Clear()
	e.searchMatches = nil
	e.setCaret(caret)
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: info})
}

// InsertText types text at the caret, replacing the selection if any.
func (e *Editor) InsertText(text string) error {
	if start, end, ok := e.selection.Range(); ok {
		return e.replace(start, end, text)
	}
	return e.Insert(e.caret, text)
}

// Backspace deletes the selection, or the rune before the caret.
func (e *Editor) Backspace() error {
	if start, end, ok := e.selection.Range(); ok {
		_, err := e.Delete(start, end-start)
		return err
	}
	if e.caret == 0 {
		return nil
	}
	_, err := e.Delete(e.caret-1, 1)
	return err
}

// DeleteForward deletes the selection, or the rune at the caret.
func (e *Editor) DeleteForward() error {
	if start, end, ok := e.selection.Range(); ok {
		_, err := e.Delete(start, end-start)
		return err
	}
	if e.caret >= e.buffer.Len() {
		return nil
	}
	_, err := e.Delete(e.caret, 1)
	return err
}

// Undo reverts the most recent edit and restores the caret from before it.
// The document is clean again once undo reaches the last save. It returns
// false when there is nothing to undo.
func (e *Editor) Undo() (bool, error) {
	change, ok, err := e.history.Undo(e.buffer)
	if err != nil || !ok {
		return false, err
	}
	e.buffer.SetModified(!e.history.AtSavePoint())
	e.afterEdit(inverseInfo(change), change.CaretBefore)
	return true, nil
}

// Redo reapplies the most recently undone edit.
func (e *Editor) Redo() (bool, error) {
	change, ok, err := e.history.Redo(e.buffer)
	if err != nil || !ok {
		return false, err
	}
	e.buffer.SetModified(!e.history.AtSavePoint())
	e.afterEdit(forwardInfo(change), change.CaretAfter)
	return true, nil
}

func forwardInfo(c history.Change) types.EditInfo {
	info := types.EditInfo{Offset: c.Offset}
	n := utf8.RuneCountInString(c.Text)
	switch c.Type {
	case history.InsertAction:
		info.NewLength = n
	case history.DeleteAction:
		info.OldLength = n
	case history.ReplaceAction:
		info.OldLength = utf8.RuneCountInString(c.Replaced)
		info.NewLength = n
	}
	return info
}

func inverseInfo(c history.Change) types.EditInfo {
	info := forwardInfo(c)
	info.OldLength, info.NewLength = info.NewLength, info.OldLength
	return info
}

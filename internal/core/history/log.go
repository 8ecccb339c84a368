package history

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/logger"
)

const DefaultMaxHistory = 100

// Log is a bounded undo/redo stack. Records before currentIndex form the
// undo stack; records from currentIndex on form the redo stack.
type Log struct {
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	savedIndex   int // currentIndex when the document was last saved; -1 if unreachable
	maxHistory   int
}

// NewLog creates a history log holding at most maxHistory changes.
func NewLog(maxHistory int) *Log {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Log{
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// Record adds a new change, clearing any redo history.
func (l *Log) Record(change Change) {
	if l.currentIndex < len(l.changes) {
		l.changes = l.changes[:l.currentIndex]
	}
	// A save point on the discarded redo branch can never be reached again.
	if l.savedIndex > l.currentIndex {
		l.savedIndex = -1
	}

	l.changes = append(l.changes, change)

	if len(l.changes) > l.maxHistory {
		// Evict the oldest.
		evicted := len(l.changes) - l.maxHistory
		l.changes = append(l.changes[:0], l.changes[evicted:]...)
		if l.savedIndex >= 0 {
			l.savedIndex -= evicted
			if l.savedIndex < 0 {
				l.savedIndex = -1
			}
		}
	}
	l.currentIndex = len(l.changes)

	logger.DebugTagf("history", "Recorded %v at %d. Index: %d, Count: %d", change.Type, change.Offset, l.currentIndex, len(l.changes))
}

// Undo reverts the last recorded change on buf. It returns the change so the
// caller can restore CaretBefore; ok is false when there is nothing to undo.
func (l *Log) Undo(buf buffer.Buffer) (change Change, ok bool, err error) {
	if l.currentIndex <= 0 {
		logger.DebugTagf("history", "Nothing to undo.")
		return Change{}, false, nil
	}

	change = l.changes[l.currentIndex-1]
	switch change.Type {
	case InsertAction:
		_, _, err = buf.Delete(change.Offset, change.textLen())
	case DeleteAction:
		_, err = buf.Insert(change.Offset, change.Text)
	case ReplaceAction:
		err = swap(buf, change.Offset, change.textLen(), change.Replaced)
	}
	if err != nil {
		return Change{}, false, fmt.Errorf("undo %v failed: %w", change.Type, err)
	}

	l.currentIndex--
	logger.DebugTagf("history", "Undid %v. Index: %d", change.Type, l.currentIndex)
	return change, true, nil
}

// Redo reapplies the last undone change on buf. The caller restores CaretAfter.
func (l *Log) Redo(buf buffer.Buffer) (change Change, ok bool, err error) {
	if l.currentIndex >= len(l.changes) {
		logger.DebugTagf("history", "Nothing to redo.")
		return Change{}, false, nil
	}

	change = l.changes[l.currentIndex]
	switch change.Type {
	case InsertAction:
		_, err = buf.Insert(change.Offset, change.Text)
	case DeleteAction:
		_, _, err = buf.Delete(change.Offset, change.textLen())
	case ReplaceAction:
		err = swap(buf, change.Offset, change.replacedLen(), change.Text)
	}
	if err != nil {
		return Change{}, false, fmt.Errorf("redo %v failed: %w", change.Type, err)
	}

	l.currentIndex++
	logger.DebugTagf("history", "Redid %v. Index: %d", change.Type, l.currentIndex)
	return change, true, nil
}

// swap replaces length runes at offset with text.
func swap(buf buffer.Buffer, offset, length int, text string) error {
	if _, _, err := buf.Delete(offset, length); err != nil {
		return err
	}
	_, err := buf.Insert(offset, text)
	return err
}

// MarkSaved records the current position as matching the file on disk.
func (l *Log) MarkSaved() {
	l.savedIndex = l.currentIndex
}

// AtSavePoint reports whether undo/redo has returned to the saved state.
func (l *Log) AtSavePoint() bool {
	return l.savedIndex == l.currentIndex
}

// Clear resets the history stack. Call this on file load.
func (l *Log) Clear() {
	l.changes = l.changes[:0]
	l.currentIndex = 0
	l.savedIndex = 0
	logger.DebugTagf("history", "Cleared.")
}

// CanUndo returns true if there are changes that can be undone.
func (l *Log) CanUndo() bool {
	return l.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (l *Log) CanRedo() bool {
	return l.currentIndex < len(l.changes)
}

// Len returns the number of recorded changes (undo and redo sides).
func (l *Log) Len() int {
	return len(l.changes)
}

// Package history provides undo/redo functionality via a change history stack.
package history

import "unicode/utf8"

// ActionType indicates how a change mutated the text.
type ActionType int

const (
	InsertAction ActionType = iota
	DeleteAction
	ReplaceAction
)

func (t ActionType) String() string {
	switch t {
	case InsertAction:
		return "insert"
	case DeleteAction:
		return "delete"
	case ReplaceAction:
		return "replace"
	}
	return "unknown"
}

// Change represents a single, reversible text operation. Offsets are runes.
type Change struct {
	Type     ActionType
	Offset   int    // Where the change began
	Text     string // Text inserted, deleted, or the replacement
	Replaced string // ReplaceAction only: the text that Text replaced

	CaretBefore int // Caret offset before the change was applied
	CaretAfter  int // Caret offset after the change was applied
}

// textLen is the rune length of Text.
func (c Change) textLen() int {
	return utf8.RuneCountInString(c.Text)
}

// replacedLen is the rune length of Replaced.
func (c Change) replacedLen() int {
	return utf8.RuneCountInString(c.Replaced)
}

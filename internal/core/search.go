package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/core/find"
	"github.com/bethropolis/tidepad/internal/logger"
)

// Find scans forward from offset for a literal occurrence of text, wrapping
// once to the beginning. It does not move the caret.
func (e *Editor) Find(text string, from int) (start, end int, ok bool) {
	m, ok := find.Forward(e.buffer.Text(), text, from)
	if !ok {
		return -1, -1, false
	}
	return m.Start, m.End, true
}

// FindNext searches from the end of the selection (or the caret), selects
// the match and remembers the term for highlighting.
func (e *Editor) FindNext(text string) (find.Match, error) {
	if text == "" {
		return find.Match{}, ErrEmptyFind
	}
	from := e.caret
	if _, end, ok := e.selection.Range(); ok {
		from = end
	}

	doc := e.buffer.Text()
	m, ok := find.Forward(doc, text, from)
	e.lastFind = text
	if !ok {
		e.searchMatches = nil
		return find.Match{}, fmt.Errorf("%q: %w", text, ErrNotFound)
	}
	e.searchMatches = find.All(doc, text)
	e.Select(m.Start, m.End)
	logger.DebugTagf("find", "Found %q at [%d,%d) wrapped=%v", text, m.Start, m.End, m.Wrapped)
	return m, nil
}

// SearchMatches returns every occurrence of the last found term, for
// highlighting. Edits clear it.
func (e *Editor) SearchMatches() []find.Match {
	return e.searchMatches
}

// ClearSearch drops the search highlights.
func (e *Editor) ClearSearch() {
	e.searchMatches = nil
}

// ReplaceFirst replaces the first occurrence of findText in the document
// with replacement as one undoable edit.
func (e *Editor) ReplaceFirst(findText, replacement string) error {
	if findText == "" {
		return ErrEmptyFind
	}
	if replacement == "" {
		return ErrEmptyReplacement
	}
	at := find.Index(e.buffer.Text(), findText, 0)
	if at < 0 {
		return fmt.Errorf("%q: %w", findText, ErrNotFound)
	}
	if err := e.replace(at, at+utf8.RuneCountInString(findText), replacement); err != nil {
		return err
	}
	logger.DebugTagf("find", "Replaced %q with %q at %d", findText, replacement, at)
	return nil
}

package core

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/logger"
)

// Copy puts the selection on the clipboard. It returns false when nothing
// is selected.
func (e *Editor) Copy() (bool, error) {
	text := e.SelectedText()
	if text == "" {
		return false, nil
	}
	if err := e.clipboard.Write(text); err != nil {
		return false, fmt.Errorf("copy: %w", err)
	}
	logger.DebugTagf("clipboard", "Copied %d bytes", len(text))
	return true, nil
}

// Cut copies the selection and deletes it as one undoable edit.
func (e *Editor) Cut() (bool, error) {
	start, end, ok := e.selection.Range()
	if !ok {
		return false, nil
	}
	if copied, err := e.Copy(); !copied || err != nil {
		return false, err
	}
	if _, err := e.Delete(start, end-start); err != nil {
		return false, fmt.Errorf("cut: %w", err)
	}
	return true, nil
}

// Paste inserts the clipboard at the caret, replacing any selection.
func (e *Editor) Paste() (bool, error) {
	text, err := e.clipboard.Read()
	if err != nil {
		return false, fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return false, nil
	}
	if err := e.InsertText(text); err != nil {
		return false, fmt.Errorf("paste: %w", err)
	}
	logger.DebugTagf("clipboard", "Pasted %d bytes", len(text))
	return true, nil
}

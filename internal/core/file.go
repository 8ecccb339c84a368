package core

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/logger"
)

// Load replaces the document with the contents of path. On failure the
// document is unchanged and the error wraps ErrIO.
func (e *Editor) Load(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := e.buffer.Load(path); err != nil {
		logger.Warnf("Editor: load '%s' failed: %v", path, err)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	e.resetState()
	logger.Infof("Editor: loaded '%s' (%d runes)", path, e.buffer.Len())
	e.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	return nil
}

// Save writes the document to path and adopts it as the file path.
func (e *Editor) Save(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := e.buffer.Save(path); err != nil {
		logger.Warnf("Editor: save '%s' failed: %v", path, err)
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	e.history.MarkSaved()
	logger.Infof("Editor: saved '%s'", path)
	e.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path})
	return nil
}

// SaveCurrent saves to the known file path, or fails with ErrNoPath.
func (e *Editor) SaveCurrent() error {
	return e.Save(e.buffer.FilePath())
}

// New discards the document and starts an empty, unnamed one.
func (e *Editor) New() {
	e.buffer.Reset()
	e.resetState()
	logger.Infof("Editor: new document")
	e.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{})
}

func (e *Editor) resetState() {
	e.history.Clear()
	e.selection.Clear()
	e.searchMatches = nil
	e.caret = 0
}

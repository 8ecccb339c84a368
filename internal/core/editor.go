// internal/core/editor.go
package core

import (
	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/core/clipboard"
	"github.com/bethropolis/tidepad/internal/core/find"
	"github.com/bethropolis/tidepad/internal/core/format"
	"github.com/bethropolis/tidepad/internal/core/history"
	"github.com/bethropolis/tidepad/internal/core/selection"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/utils"
)

// Options configures a new Editor. Zero values select defaults.
type Options struct {
	UndoLimit int
	Clipboard clipboard.Clipboard
	Font      format.FontStyle
}

// Editor owns the document and everything that edits it: the undo log, the
// caret and selection, the font style and the clipboard. It is not safe for
// concurrent use; the application touches it only from the event loop.
type Editor struct {
	buffer    buffer.Buffer
	history   *history.Log
	caret     int // Rune offset in [0, buffer.Len()]
	selection selection.Selection
	font      format.FontStyle
	clipboard clipboard.Clipboard

	eventManager *event.Manager
	pageSize     int // Lines moved by PageUp/PageDown

	// Find state
	lastFind      string
	searchMatches []find.Match
}

// NewEditor creates an Editor over buf. A nil buf starts an empty document.
func NewEditor(buf buffer.Buffer, opts Options) *Editor {
	if buf == nil {
		buf = buffer.NewRuneBuffer()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &clipboard.Register{}
	}
	def := format.Default()
	if opts.Font.Family == "" {
		opts.Font.Family = def.Family
	}
	if opts.Font.Size <= 0 {
		opts.Font.Size = def.Size
	}
	return &Editor{
		buffer:    buf,
		history:   history.NewLog(opts.UndoLimit),
		font:      opts.Font,
		clipboard: opts.Clipboard,
		pageSize:  1,
	}
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

// Buffer returns the document buffer. Mutate it only through the Editor.
func (e *Editor) Buffer() buffer.Buffer {
	return e.buffer
}

func (e *Editor) Text() string { return e.buffer.Text() }
func (e *Editor) FilePath() string { return e.buffer.FilePath() }
func (e *Editor) IsModified() bool { return e.buffer.IsModified() }
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }
func (e *Editor) LastFind() string { return e.lastFind }
func (e *Editor) Caret() int { return e.caret }
func (e *Editor) Clipboard() clipboard.Clipboard { return e.clipboard }

// SetFilePath names the document without touching the disk.
func (e *Editor) SetFilePath(path string) {
	e.buffer.SetFilePath(path)
}

// SetPageSize sets how many lines PageUp/PageDown move; the UI calls this
// with the text area height.
func (e *Editor) SetPageSize(lines int) {
	if lines < 1 {
		lines = 1
	}
	e.pageSize = lines
}

// SetCaret moves the caret to offset, clamped to the document, and drops
// the selection.
func (e *Editor) SetCaret(offset int) {
	e.selection.Clear()
	e.setCaret(offset)
}

func (e *Editor) setCaret(offset int) {
	offset = utils.Clamp(offset, 0, e.buffer.Len())
	if offset == e.caret {
		return
	}
	e.caret = offset
	pos, _ := e.buffer.OffsetToPosition(offset)
	e.dispatch(event.TypeCaretMoved, event.CaretMovedData{Offset: offset, Position: pos})
}

// CaretToLineColumn converts offset to a 1-based line and column. An offset
// outside the document yields (-1, -1) and buffer.ErrOutOfRange.
func (e *Editor) CaretToLineColumn(offset int) (line, col int, err error) {
	pos, err := e.buffer.OffsetToPosition(offset)
	if err != nil {
		logger.DebugTagf("core", "CaretToLineColumn(%d): %v", offset, err)
		return -1, -1, err
	}
	return pos.Line + 1, pos.Col + 1, nil
}

// CaretLineColumn reports the caret's 1-based line and column.
func (e *Editor) CaretLineColumn() (line, col int, err error) {
	return e.CaretToLineColumn(e.caret)
}

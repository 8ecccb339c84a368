// internal/buffer/rune_buffer.go
package buffer

import (
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
)

// RuneBuffer stores the document as a flat rune slice with a lazily rebuilt
// line index.
type RuneBuffer struct {
	content    []rune
	lineStarts []int // Offset of the first rune of each line; nil when stale
	filePath   string
	modified   bool // Track if buffer has unsaved changes
}

// NewRuneBuffer creates an empty RuneBuffer.
func NewRuneBuffer() *RuneBuffer {
	return &RuneBuffer{}
}

// NewRuneBufferFromString creates a clean buffer holding text.
func NewRuneBufferFromString(text string) *RuneBuffer {
	return &RuneBuffer{content: []rune(text)}
}

// Load reads a file into the buffer verbatim. Replaces existing content.
// On failure the buffer is left untouched.
func (rb *RuneBuffer) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	if !utf8.Valid(data) {
		// Invalid sequences decode as U+FFFD and are saved back as such.
		logger.Warnf("Buffer: '%s' is not valid UTF-8", filePath)
	}
	rb.content = []rune(string(data))
	rb.lineStarts = nil
	rb.filePath = filePath
	rb.modified = false
	return nil
}

// Save writes the buffer content to filePath, or to the stored path when
// filePath is empty.
func (rb *RuneBuffer) Save(filePath string) error {
	path := rb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return fmt.Errorf("no file path specified for saving")
	}

	if err := os.WriteFile(path, []byte(string(rb.content)), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	rb.filePath = path
	rb.modified = false
	return nil
}

// Text returns the whole document.
func (rb *RuneBuffer) Text() string {
	return string(rb.content)
}

// Len returns the document length in runes.
func (rb *RuneBuffer) Len() int {
	return len(rb.content)
}

// Slice returns the text in [start, end).
func (rb *RuneBuffer) Slice(start, end int) (string, error) {
	if start < 0 || end > len(rb.content) || start > end {
		return "", fmt.Errorf("slice [%d,%d) of %d runes: %w", start, end, len(rb.content), ErrOutOfRange)
	}
	return string(rb.content[start:end]), nil
}

// Insert inserts text at offset.
func (rb *RuneBuffer) Insert(offset int, text string) (types.EditInfo, error) {
	if offset < 0 || offset > len(rb.content) {
		return types.EditInfo{}, fmt.Errorf("insert at %d of %d runes: %w", offset, len(rb.content), ErrOutOfRange)
	}
	ins := []rune(text)
	if len(ins) == 0 {
		return types.EditInfo{Offset: offset}, nil
	}

	next := make([]rune, 0, len(rb.content)+len(ins))
	next = append(next, rb.content[:offset]...)
	next = append(next, ins...)
	next = append(next, rb.content[offset:]...)
	rb.content = next
	rb.lineStarts = nil
	rb.modified = true

	return types.EditInfo{Offset: offset, NewLength: len(ins)}, nil
}

// Delete removes length runes starting at offset and returns them.
func (rb *RuneBuffer) Delete(offset, length int) (string, types.EditInfo, error) {
	if length < 0 || offset < 0 || offset > len(rb.content) || length > len(rb.content)-offset {
		return "", types.EditInfo{}, fmt.Errorf("delete %d runes at %d of %d: %w", length, offset, len(rb.content), ErrOutOfRange)
	}
	if length == 0 {
		return "", types.EditInfo{Offset: offset}, nil
	}

	removed := string(rb.content[offset : offset+length])
	rb.content = append(rb.content[:offset:offset], rb.content[offset+length:]...)
	rb.lineStarts = nil
	rb.modified = true

	return removed, types.EditInfo{Offset: offset, OldLength: length}, nil
}

// lines rebuilds the line index when stale.
func (rb *RuneBuffer) lines() []int {
	if rb.lineStarts != nil {
		return rb.lineStarts
	}
	starts := []int{0}
	for i, r := range rb.content {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	rb.lineStarts = starts
	return starts
}

// LineCount returns the number of lines; an empty buffer has one.
func (rb *RuneBuffer) LineCount() int {
	return len(rb.lines())
}

// LineStart returns the offset of the first rune on line index (0-based).
func (rb *RuneBuffer) LineStart(index int) (int, error) {
	starts := rb.lines()
	if index < 0 || index >= len(starts) {
		return 0, fmt.Errorf("line index %d out of bounds (0-%d): %w", index, len(starts)-1, ErrOutOfRange)
	}
	return starts[index], nil
}

// lineEnd returns the offset of the newline ending line index, or Len().
func (rb *RuneBuffer) lineEnd(index int) int {
	starts := rb.lines()
	if index+1 < len(starts) {
		return starts[index+1] - 1
	}
	return len(rb.content)
}

// Line returns line index without its trailing newline.
func (rb *RuneBuffer) Line(index int) (string, error) {
	start, err := rb.LineStart(index)
	if err != nil {
		return "", err
	}
	return string(rb.content[start:rb.lineEnd(index)]), nil
}

// OffsetToPosition converts a rune offset to a 0-based line/column.
func (rb *RuneBuffer) OffsetToPosition(offset int) (types.Position, error) {
	if offset < 0 || offset > len(rb.content) {
		return types.Position{Line: -1, Col: -1}, fmt.Errorf("offset %d of %d runes: %w", offset, len(rb.content), ErrOutOfRange)
	}
	starts := rb.lines()
	// Last line whose start is <= offset.
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	return types.Position{Line: line, Col: offset - starts[line]}, nil
}

// PositionToOffset converts a line/column to an offset, clamping both to the
// document and the line length.
func (rb *RuneBuffer) PositionToOffset(pos types.Position) int {
	starts := rb.lines()
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(starts) {
		return len(rb.content)
	}
	start := starts[pos.Line]
	end := rb.lineEnd(pos.Line)
	col := pos.Col
	if col < 0 {
		col = 0
	}
	if start+col > end {
		return end
	}
	return start + col
}

// FilePath returns the active file path ("" until first load/save).
func (rb *RuneBuffer) FilePath() string {
	return rb.filePath
}

// SetFilePath records a path without touching the disk.
func (rb *RuneBuffer) SetFilePath(path string) {
	rb.filePath = path
}

// IsModified returns true if the buffer has unsaved changes.
func (rb *RuneBuffer) IsModified() bool {
	return rb.modified
}

// SetModified overrides the dirty flag.
func (rb *RuneBuffer) SetModified(modified bool) {
	rb.modified = modified
}

// Reset empties the buffer and forgets the path.
func (rb *RuneBuffer) Reset() {
	rb.content = nil
	rb.lineStarts = nil
	rb.filePath = ""
	rb.modified = false
}

// Ensure RuneBuffer satisfies the Buffer interface
var _ Buffer = (*RuneBuffer)(nil)

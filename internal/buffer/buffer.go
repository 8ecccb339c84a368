// internal/buffer/buffer.go
package buffer

import (
	"errors"

	"github.com/bethropolis/tidepad/internal/types"
)

// ErrOutOfRange is returned for offsets or lines outside the buffer.
var ErrOutOfRange = errors.New("position out of range")

// Buffer defines the interface for text buffer operations.
// Offsets are rune offsets in [0, Len()].
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	Text() string
	Len() int
	Slice(start, end int) (string, error)
	Insert(offset int, text string) (types.EditInfo, error)
	Delete(offset, length int) (string, types.EditInfo, error)
	LineCount() int
	Line(index int) (string, error)
	LineStart(index int) (int, error)
	OffsetToPosition(offset int) (types.Position, error)
	PositionToOffset(pos types.Position) int
	FilePath() string
	SetFilePath(path string)
	IsModified() bool
	SetModified(modified bool)
	Reset()
}

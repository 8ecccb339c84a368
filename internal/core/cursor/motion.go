// Package cursor computes caret motion over a buffer.
package cursor

import (
	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/types"
)

// Motion names a caret movement.
type Motion int

const (
	Left Motion = iota
	Right
	Up
	Down
	LineStart
	LineEnd
	PageUp
	PageDown
	DocStart
	DocEnd
)

// Move returns the caret offset after applying m to offset. page is the
// number of lines PageUp/PageDown travel. Left and Right wrap across line
// boundaries; vertical motion keeps the column, clamped to the target line.
func Move(buf buffer.Buffer, offset int, m Motion, page int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > buf.Len() {
		offset = buf.Len()
	}
	pos, err := buf.OffsetToPosition(offset)
	if err != nil {
		return offset
	}
	if page < 1 {
		page = 1
	}

	switch m {
	case Left:
		if offset > 0 {
			return offset - 1
		}
		return 0
	case Right:
		if offset < buf.Len() {
			return offset + 1
		}
		return offset
	case Up:
		return vertical(buf, pos, -1)
	case Down:
		return vertical(buf, pos, 1)
	case PageUp:
		return vertical(buf, pos, -page)
	case PageDown:
		return vertical(buf, pos, page)
	case LineStart:
		return buf.PositionToOffset(types.Position{Line: pos.Line, Col: 0})
	case LineEnd:
		line, _ := buf.Line(pos.Line)
		return buf.PositionToOffset(types.Position{Line: pos.Line, Col: len([]rune(line))})
	case DocStart:
		return 0
	case DocEnd:
		return buf.Len()
	}
	return offset
}

func vertical(buf buffer.Buffer, pos types.Position, delta int) int {
	target := pos.Line + delta
	if target < 0 {
		return 0
	}
	if target >= buf.LineCount() {
		return buf.Len()
	}
	return buf.PositionToOffset(types.Position{Line: target, Col: pos.Col})
}

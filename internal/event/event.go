// internal/event/event.go
package event

import "github.com/bethropolis/tidepad/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // Content changed (insert/delete/undo/redo)
	TypeBufferLoaded   // A file was opened or a new document started
	TypeBufferSaved    // The document was written to disk
	TypeCaretMoved     // The caret offset changed
	TypeFormatChanged  // The document font style changed

	// Application lifecycle
	TypeAppReady // Fired once the UI is up
	TypeAppQuit  // Fired just before the application exits

	TypeThemeChanged
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCaretMoved:
		return "CaretMoved"
	case TypeFormatChanged:
		return "FormatChanged"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	case TypeThemeChanged:
		return "ThemeChanged"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes a content change in rune offsets.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData carries the new document path ("" for a new document).
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData carries the path that was written.
type BufferSavedData struct {
	FilePath string
}

// CaretMovedData carries the new caret as an offset and a 0-based position.
type CaretMovedData struct {
	Offset   int
	Position types.Position
}

// FormatChangedData names what changed ("bold", "size", "fg", ...).
type FormatChangedData struct {
	What string
}

// ThemeChangedData carries the active theme name.
type ThemeChangedData struct {
	Name string
}

type AppQuitData struct{}

type AppReadyData struct{}

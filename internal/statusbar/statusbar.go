// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style // "[Modified]" indicator
	StyleMessage   tcell.Style // Temporary messages
	StyleError     tcell.Style // Temporary error messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorSilver).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// ConfigFromTheme takes the status bar styles from a theme.
func ConfigFromTheme(th *theme.Theme, timeout time.Duration) Config {
	return Config{
		StyleDefault:   th.GetStyle("StatusBar"),
		StyleModified:  th.GetStyle("StatusBarModified"),
		StyleMessage:   th.GetStyle("StatusBarMessage"),
		StyleError:     th.GetStyle("StatusBarError"),
		MessageTimeout: timeout,
	}
}

// StatusBar is the bottom line: caret position on the left, file name,
// modified flag and font on the right. Temporary messages replace the line
// until they expire.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	visible    bool
	filePath   string
	line, col  int // 1-based; -1 when the caret could not be resolved
	isModified bool
	font       string
	language   string

	tempMessage     string
	tempIsError     bool
	tempMessageTime time.Time

	now func() time.Time
}

// New creates a visible StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config:  config,
		visible: true,
		line:    1,
		col:     1,
		now:     time.Now,
	}
}

// SetConfig swaps styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// Visible reports whether the bar takes a screen row.
func (sb *StatusBar) Visible() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.visible
}

// SetVisible shows or hides the bar.
func (sb *StatusBar) SetVisible(visible bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.visible = visible
}

// ToggleVisible flips visibility and returns the new state.
func (sb *StatusBar) ToggleVisible() bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.visible = !sb.visible
	return sb.visible
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCaret updates the 1-based caret line and column.
func (sb *StatusBar) SetCaret(line, col int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line, sb.col = line, col
}

// SetFont updates the font summary.
func (sb *StatusBar) SetFont(summary string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.font = summary
}

// SetLanguage updates the syntax language name ("" for none).
func (sb *StatusBar) SetLanguage(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.language = name
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(false, format, args...)
}

// SetErrorMessage displays a temporary message in the error style.
func (sb *StatusBar) SetErrorMessage(format string, args ...interface{}) {
	sb.setMessage(true, format, args...)
}

func (sb *StatusBar) setMessage(isError bool, format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempIsError = isError
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, expiring it if stale.
func (sb *StatusBar) Message() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.activeMessage()
}

// activeMessage must be called with the write lock held.
func (sb *StatusBar) activeMessage() (string, bool) {
	if sb.tempMessageTime.IsZero() {
		return "", false
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return "", false
	}
	return sb.tempMessage, true
}

// PositionText is the caret part of the line, e.g. "Line: 3, Column: 7".
func (sb *StatusBar) PositionText() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return fmt.Sprintf("Line: %d, Column: %d", sb.line, sb.col)
}

// infoText builds the right-hand part. Caller holds a lock.
func (sb *StatusBar) infoText() string {
	name := "[No Name]"
	if sb.filePath != "" {
		name = filepath.Base(sb.filePath)
	}
	text := name
	if sb.isModified {
		text += " [Modified]"
	}
	if sb.language != "" {
		text += " | " + sb.language
	}
	if sb.font != "" {
		text += " | " + sb.font
	}
	return text
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	if !sb.visible {
		sb.mu.Unlock()
		return
	}
	msg, hasMsg := sb.activeMessage()
	cfg := sb.config
	isError := sb.tempIsError
	left := fmt.Sprintf("Line: %d, Column: %d", sb.line, sb.col)
	right := sb.infoText()
	modified := sb.isModified
	sb.mu.Unlock()

	style := cfg.StyleDefault
	if hasMsg {
		style = cfg.StyleMessage
		if isError {
			style = cfg.StyleError
		}
	}
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	if hasMsg {
		drawText(screen, 0, y, width, msg, style)
		return
	}

	drawText(screen, 0, y, width, left, style)
	rightStyle := style
	if modified {
		rightStyle = cfg.StyleModified
	}
	rightWidth := uniseg.StringWidth(right)
	start := width - rightWidth - 1
	leftEnd := uniseg.StringWidth(left) + 2
	if start < leftEnd {
		start = leftEnd
	}
	drawText(screen, start, y, width, right, rightStyle)
}

// drawText writes grapheme clusters from x until limit; returns the end x.
func drawText(screen tcell.Screen, x, y, limit int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > limit {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}

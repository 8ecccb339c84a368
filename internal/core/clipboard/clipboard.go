// Package clipboard provides the cut/copy/paste register.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/tidepad/internal/logger"
)

// Clipboard stores text between cut/copy and paste.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Register is an in-process clipboard.
type Register struct {
	text string
}

func (r *Register) Read() (string, error) { return r.text, nil }

func (r *Register) Write(text string) error {
	r.text = text
	return nil
}

// System uses the desktop clipboard and falls back to an internal register
// when the platform has no clipboard utility.
type System struct {
	fallback Register
	failed   bool
}

// Read returns the system clipboard contents, or the fallback register.
func (s *System) Read() (string, error) {
	if !s.failed {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text, nil
		}
		s.disable(err)
	}
	return s.fallback.Read()
}

// Write stores text in the system clipboard. The fallback register always
// receives a copy so a later failure doesn't lose it.
func (s *System) Write(text string) error {
	_ = s.fallback.Write(text)
	if s.failed {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		s.disable(err)
	}
	return nil
}

func (s *System) disable(err error) {
	logger.Warnf("Clipboard: system clipboard unavailable, using internal register: %v", err)
	s.failed = true
}

// New returns the system clipboard when requested and supported, otherwise
// an internal register.
func New(useSystem bool) Clipboard {
	if useSystem && !clipboard.Unsupported {
		logger.DebugTagf("clipboard", "Using system clipboard")
		return &System{}
	}
	logger.DebugTagf("clipboard", "Using internal register")
	return &Register{}
}

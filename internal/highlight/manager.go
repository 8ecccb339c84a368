package highlight

import (
	"context"
	"time"

	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/highlighter"
	"github.com/bethropolis/tidepad/internal/highlighter/lang"
	"github.com/bethropolis/tidepad/internal/logger"
)

// ParseTimeout bounds a single highlight pass on the event loop.
const ParseTimeout = 250 * time.Millisecond

// Document is what the manager reads from the editor.
type Document interface {
	Text() string
	FilePath() string
}

// Manager keeps the syntax highlights for the current document. Updates run
// synchronously on the caller's goroutine.
type Manager struct {
	doc         Document
	highlighter *highlighter.Highlighter
	enabled     bool

	language   *lang.Language
	highlights highlighter.HighlightResult
}

// NewManager creates a manager. Call Refresh or Subscribe to populate it.
func NewManager(doc Document, hl *highlighter.Highlighter, enabled bool) *Manager {
	return &Manager{
		doc:         doc,
		highlighter: hl,
		enabled:     enabled,
	}
}

// Subscribe recomputes highlights whenever the document is loaded or edited.
func (m *Manager) Subscribe(em *event.Manager) {
	refresh := func(e event.Event) bool {
		m.Refresh()
		return false
	}
	em.Subscribe(event.TypeBufferLoaded, refresh)
	em.Subscribe(event.TypeBufferModified, refresh)
	// Save As can change the extension.
	em.Subscribe(event.TypeBufferSaved, refresh)
}

// Enabled reports whether syntax colouring is on.
func (m *Manager) Enabled() bool { return m.enabled }

// SetEnabled switches colouring on or off and refreshes.
func (m *Manager) SetEnabled(enabled bool) {
	m.enabled = enabled
	m.Refresh()
}

// Toggle flips colouring and returns the new state.
func (m *Manager) Toggle() bool {
	m.SetEnabled(!m.enabled)
	return m.enabled
}

// Language returns the grammar matched to the current file, or nil.
func (m *Manager) Language() *lang.Language { return m.language }

// Highlights returns the current result; nil when disabled or unmatched.
func (m *Manager) Highlights() highlighter.HighlightResult { return m.highlights }

// Refresh re-parses the whole document.
func (m *Manager) Refresh() {
	m.highlights = nil
	m.language = nil
	if !m.enabled || m.highlighter == nil {
		return
	}

	m.language = m.highlighter.LanguageFor(m.doc.FilePath())
	if m.language == nil {
		logger.DebugTagf("highlight", "No language for '%s'", m.doc.FilePath())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ParseTimeout)
	defer cancel()

	result, err := m.highlighter.Highlight(ctx, m.doc.Text(), m.language)
	if err != nil {
		logger.Warnf("Highlighting '%s' failed: %v", m.doc.FilePath(), err)
		return
	}
	m.highlights = result
}

// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// CommandID is the View menu command this plugin adds.
const CommandID = "wordcount.count"

// WordCount reports line, word and character counts of the document.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() *WordCount {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers the Word Count command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand(CommandID, "Word Count", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register '%s' command: %w", CommandID, err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats holds document counts.
type Stats struct {
	Lines, Words, Characters int
}

// Count computes the stats of text. Words are runs of non-space runes.
func Count(text string) Stats {
	lines := 0
	if text != "" {
		lines = strings.Count(text, "\n") + 1
	}
	return Stats{
		Lines:      lines,
		Words:      len(strings.Fields(text)),
		Characters: utf8.RuneCountInString(text),
	}
}

func (p *WordCount) executeWordCount() error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	s := Count(p.api.GetBufferText())
	p.api.ShowMessage("Word Count",
		fmt.Sprintf("Lines:      %d", s.Lines),
		fmt.Sprintf("Words:      %d", s.Words),
		fmt.Sprintf("Characters: %d", s.Characters),
	)
	p.api.SetStatusMessage("Lines: %d, Words: %d, Characters: %d", s.Lines, s.Words, s.Characters)
	return nil
}

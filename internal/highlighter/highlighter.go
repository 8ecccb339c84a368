package highlighter

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/highlighter/lang"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/bethropolis/tidepad/internal/utils"
	sitter "github.com/smacker/go-tree-sitter"
)

// HighlightResult maps a 0-based line number to the styled ranges on it.
type HighlightResult map[int][]types.StyledRange

// Highlighter parses documents and runs highlight queries over them.
type Highlighter struct {
	parser *sitter.Parser
}

// NewHighlighter creates a highlighter and registers the built-in grammars.
func NewHighlighter() *Highlighter {
	RegisterLanguages()
	return &Highlighter{parser: sitter.NewParser()}
}

// LanguageFor returns the grammar for a file path, or nil.
func (h *Highlighter) LanguageFor(filePath string) *lang.Language {
	if filePath == "" {
		return nil
	}
	return lang.GetForFile(filePath)
}

// Highlight parses text with language and returns per-line styled ranges.
// The whole document is parsed on every call.
func (h *Highlighter) Highlight(ctx context.Context, text string, language *lang.Language) (HighlightResult, error) {
	if language == nil {
		return nil, fmt.Errorf("no language provided for highlighting")
	}
	query, err := language.Query()
	if err != nil {
		return nil, fmt.Errorf("query parse failed: %w", err)
	}

	h.parser.SetLanguage(language.TreeSitterLang)
	source := []byte(text)
	tree, err := h.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	lines := strings.Split(text, "\n")
	highlights := make(HighlightResult)

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			styleName := captureNameToStyleName(query.CaptureNameForId(capture.Index))
			addCapture(highlights, lines, capture.Node, styleName)
		}
	}

	logger.DebugTagf("highlight", "Highlight: %s produced ranges on %d lines", language.Name, len(highlights))
	return highlights, nil
}

// addCapture converts a node's byte points to rune columns, splitting
// captures that span lines into one range per line.
func addCapture(highlights HighlightResult, lines []string, node *sitter.Node, styleName string) {
	start, end := node.StartPoint(), node.EndPoint()
	startRow, endRow := int(start.Row), int(end.Row)
	if startRow >= len(lines) {
		return
	}
	if endRow >= len(lines) {
		endRow = len(lines) - 1
	}

	for row := startRow; row <= endRow; row++ {
		line := lines[row]
		startCol := 0
		if row == startRow {
			startCol = utils.ByteOffsetToRuneIndex(line, int(start.Column))
		}
		endCol := utf8.RuneCountInString(line)
		if row == int(end.Row) {
			endCol = utils.ByteOffsetToRuneIndex(line, int(end.Column))
		}
		if endCol <= startCol {
			continue
		}
		highlights[row] = append(highlights[row], types.StyledRange{
			StartCol:  startCol,
			EndCol:    endCol,
			StyleName: styleName,
		})
	}
}

// captureNameToStyleName strips a leading '@'. Dotted names are kept so
// themes can style "string.escape" apart from "string".
func captureNameToStyleName(captureName string) string {
	return strings.TrimPrefix(captureName, "@")
}

// StyleAt returns the last range on line covering col, which takes
// precedence over earlier ones.
func (r HighlightResult) StyleAt(line, col int) (string, bool) {
	ranges := r[line]
	for i := len(ranges) - 1; i >= 0; i-- {
		if col >= ranges[i].StartCol && col < ranges[i].EndCol {
			return ranges[i].StyleName, true
		}
	}
	return "", false
}

// Package find implements literal text search over rune offsets.
package find

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/utils"
)

// Match is a found occurrence as a rune range [Start, End).
type Match struct {
	Start   int
	End     int
	Wrapped bool // True if the search wrapped past the end to find it
}

// byteOffset converts a rune offset in s to a byte offset, clamping to len(s).
func byteOffset(s string, runeOffset int) int {
	if b := utils.RuneIndexToByteOffset(s, runeOffset); b >= 0 {
		return b
	}
	return len(s)
}

// Index returns the rune offset of the first occurrence of needle in text
// at or after from, or -1. A needle that is not valid UTF-8 never matches.
func Index(text, needle string, from int) int {
	if needle == "" || !utf8.ValidString(needle) {
		return -1
	}
	start := byteOffset(text, from)
	i := strings.Index(text[start:], needle)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(text[:start+i])
}

// Forward scans for needle starting at from. When nothing is found before
// the end it wraps once and scans from the beginning.
func Forward(text, needle string, from int) (Match, bool) {
	if needle == "" {
		return Match{}, false
	}
	length := utf8.RuneCountInString(needle)

	if from < 0 {
		from = 0
	}
	if at := Index(text, needle, from); at >= 0 {
		return Match{Start: at, End: at + length}, true
	}
	if from == 0 {
		return Match{}, false
	}
	if at := Index(text, needle, 0); at >= 0 {
		return Match{Start: at, End: at + length, Wrapped: true}, true
	}
	return Match{}, false
}

// All returns every non-overlapping occurrence of needle in text.
func All(text, needle string) []Match {
	if needle == "" || !utf8.ValidString(needle) {
		return nil
	}
	length := utf8.RuneCountInString(needle)
	var matches []Match
	runeBase := 0
	rest := text
	for {
		i := strings.Index(rest, needle)
		if i < 0 {
			return matches
		}
		start := runeBase + utf8.RuneCountInString(rest[:i])
		matches = append(matches, Match{Start: start, End: start + length})
		rest = rest[i+len(needle):]
		runeBase = start + length
	}
}

// Package selection tracks the anchored text selection.
package selection

// Selection is an anchor plus the caret end. An empty anchor-caret span is
// not a selection.
type Selection struct {
	active bool
	anchor int
	head   int
}

// Extend starts a selection anchored at from, or moves the head of the
// existing one, to head.
func (s *Selection) Extend(from, head int) {
	if !s.active {
		s.anchor = from
		s.active = true
	}
	s.head = head
}

// Set replaces the selection with [start, end).
func (s *Selection) Set(start, end int) {
	s.active = true
	s.anchor = start
	s.head = end
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.active = false
	s.anchor = 0
	s.head = 0
}

// Range returns the normalised [start, end) and whether it is non-empty.
func (s *Selection) Range() (start, end int, ok bool) {
	if !s.active || s.anchor == s.head {
		return 0, 0, false
	}
	if s.anchor < s.head {
		return s.anchor, s.head, true
	}
	return s.head, s.anchor, true
}

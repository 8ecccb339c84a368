package types

// StyledRange is a syntax-coloured span on a single line.
type StyledRange struct {
	StartCol  int // Rune index, inclusive
	EndCol    int // Rune index, exclusive
	StyleName string
}

// HighlightType distinguishes overlay regions.
type HighlightType int

const (
	HighlightSearch HighlightType = iota
)

// HighlightRegion is an overlay drawn on top of syntax colours, in rune offsets.
type HighlightRegion struct {
	Start int
	End   int
	Type  HighlightType
}

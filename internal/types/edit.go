package types

// EditInfo describes a single buffer mutation in rune offsets.
// Consumers (highlighter, plugins) use it to decide what to recompute.
type EditInfo struct {
	Offset    int // Start rune offset of the edit
	OldLength int // Runes removed
	NewLength int // Runes inserted
}

package pegcore

// EOI is returned by Buffer.CharAt for any index at or past the end of
// input, the same sentinel rune hucsmn/peg's context.readRune effectively
// tests for by checking the decoded byte count.
const EOI rune = -1

// Buffer is the external interface a Matcher Context reads from. The
// default implementation (peginput.RuneBuffer) materializes the whole input
// as a []rune up front; streaming input without random access is a
// Non-goal, so Buffer is defined purely in terms of random access by index.
type Buffer interface {
	// CharAt returns the rune at index i, or EOI if i is out of range.
	CharAt(i int) rune

	// Extract returns the text spanning [from, to).
	Extract(from, to int) string

	// Length returns the number of runes in the buffer.
	Length() int

	// PositionOf returns the 0-based line and column of index i.
	PositionOf(i int) (line, column int)
}

// Package peginput provides the default Buffer implementation consumed by
// the matcher context: a fully materialized rune slice fed by
// github.com/ianlewis/runeio, the same rune-at-a-time reader
// Chidwan3578/lexparse wraps around a bufio.Reader. Streaming input without
// random access is a Non-goal, so the buffer is always fully decoded before
// a parse begins.
package peginput

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/ianlewis/runeio"
)

// RuneBuffer is the default Buffer implementation: a []rune materialized up
// front, with a cached, binary-searched line-start table for PositionOf,
// adapted from hucsmn/peg's positionCalculator (which binary searches a
// byte-offset table; here the table and the indices it searches are both
// counted in runes, since the matcher context itself only ever deals in
// rune offsets).
type RuneBuffer struct {
	runes    []rune
	lineEnds []int
}

// NewRuneBuffer decodes all of r as UTF-8 and returns a ready RuneBuffer.
func NewRuneBuffer(r io.Reader) (*RuneBuffer, error) {
	rr := runeio.NewReader(bufio.NewReader(r))
	var runes []rune
	var lineEnds []int
	for {
		c, _, err := rr.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		runes = append(runes, c)
		if c == '\n' {
			lineEnds = append(lineEnds, len(runes))
		}
	}
	return &RuneBuffer{runes: runes, lineEnds: lineEnds}, nil
}

// NewRuneBufferFromString builds a RuneBuffer directly from a string,
// skipping the runeio.Reader round trip for callers that already hold the
// whole input in memory (the common case in tests and REPL-style tools).
func NewRuneBufferFromString(s string) *RuneBuffer {
	runes := []rune(s)
	var lineEnds []int
	for i, c := range runes {
		if c == '\n' {
			lineEnds = append(lineEnds, i+1)
		}
	}
	return &RuneBuffer{runes: runes, lineEnds: lineEnds}
}

// CharAt implements pegcore.Buffer.
func (b *RuneBuffer) CharAt(i int) rune {
	if i < 0 || i >= len(b.runes) {
		return -1 // pegcore.EOI
	}
	return b.runes[i]
}

// Extract implements pegcore.Buffer.
func (b *RuneBuffer) Extract(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(b.runes) {
		to = len(b.runes)
	}
	if from >= to {
		return ""
	}
	var sb strings.Builder
	sb.Grow(to - from)
	for _, r := range b.runes[from:to] {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Length implements pegcore.Buffer.
func (b *RuneBuffer) Length() int {
	return len(b.runes)
}

// PositionOf implements pegcore.Buffer.
func (b *RuneBuffer) PositionOf(i int) (line, column int) {
	if len(b.lineEnds) == 0 {
		return 0, i
	}
	ln := sort.Search(len(b.lineEnds), func(k int) bool {
		return b.lineEnds[k] > i
	})
	lineStart := 0
	if ln > 0 {
		lineStart = b.lineEnds[ln-1]
	}
	return ln, i - lineStart
}

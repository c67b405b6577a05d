package pegcore

import (
	"errors"
	"testing"

	"github.com/hucsmn/pegcore/peginput"
)

func TestGetMatchPreviousSibling(t *testing.T) {
	var got string
	var gotStart, gotEnd int
	m := Sequence(
		OneOrMore(CharRange('0', '9')),
		Action("check", func(ctx *MatcherContext) bool {
			got = ctx.GetMatch()
			gotStart = ctx.GetMatchStartIndex()
			gotEnd = ctx.GetMatchEndIndex()
			return true
		}),
	)

	buf := peginput.NewRuneBufferFromString("123")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Matched {
		t.Fatalf("expected match, errors=%v", result.Errors)
	}
	if got != "123" {
		t.Errorf("GetMatch() = %q, want %q", got, "123")
	}
	if gotStart != 0 || gotEnd != 3 {
		t.Errorf("GetMatchStartIndex/EndIndex = %d,%d, want 0,3", gotStart, gotEnd)
	}
}

func TestGetMatchFirstElementIsUsageError(t *testing.T) {
	m := Sequence(
		Action("first", func(ctx *MatcherContext) bool {
			ctx.GetMatch() // no previous sibling: must panic a UsageError
			return true
		}),
	)

	buf := peginput.NewRuneBufferFromString("x")
	_, err := NewParseRunner(m).Run(buf)
	if err == nil {
		t.Fatal("expected a runtime failure, got nil error")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("error chain does not contain a *UsageError: %v", err)
	}
}

func TestGetMatchOutsideSequenceIsUsageError(t *testing.T) {
	m := Action("bare", func(ctx *MatcherContext) bool {
		ctx.GetMatch() // root-level Action has no Sequence parent at all
		return true
	})

	buf := peginput.NewRuneBufferFromString("x")
	_, err := NewParseRunner(m).Run(buf)
	if err == nil {
		t.Fatal("expected a runtime failure, got nil error")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("error chain does not contain a *UsageError: %v", err)
	}
}

func TestFrameReuseAcrossSiblings(t *testing.T) {
	// Sequence's children share the same sub-context object; this just
	// exercises that reuse doesn't corrupt sibling-to-sibling state.
	m := Sequence(Char('a'), Char('b'), Char('c'))
	buf := peginput.NewRuneBufferFromString("abc")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v", result.Matched, err)
	}
	if result.RootNode.EndIndex != 3 {
		t.Errorf("EndIndex = %d, want 3", result.RootNode.EndIndex)
	}
}

func TestBacktrackRestoresPositionAndStack(t *testing.T) {
	pushOne := Action("push", func(ctx *MatcherContext) bool {
		ctx.Push(1)
		return true
	})
	// FirstOf's first alternative pushes, consumes the 'a', then fails on
	// the 'z' that never comes; its second alternative must see the stack
	// and the position exactly as they were before the first attempt ran.
	m := FirstOf(
		Sequence(pushOne, Char('a'), Char('z')),
		Action("check", func(ctx *MatcherContext) bool {
			return ctx.StackSize() == 0 && ctx.CurrentIndex() == 0
		}),
	)
	buf := peginput.NewRuneBufferFromString("a")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v", result.Matched, err)
	}
}

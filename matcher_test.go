package pegcore

import (
	"errors"
	"testing"

	"github.com/hucsmn/pegcore/peginput"
)

func TestGreedyRepetitionConsumesMaximalRun(t *testing.T) {
	m := Sequence(OneOrMore(Char('a')), Char('b'))
	buf := peginput.NewRuneBufferFromString("aaab")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
	if result.RootNode.EndIndex != 4 {
		t.Errorf("EndIndex = %d, want 4", result.RootNode.EndIndex)
	}
}

func TestZeroOrMoreAcceptsEmptyRun(t *testing.T) {
	m := Sequence(ZeroOrMore(Char('a')), Char('b'))
	buf := peginput.NewRuneBufferFromString("b")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
}

func TestNegativeLookaheadDoesNotConsumeInput(t *testing.T) {
	m := Sequence(TestNot(Char('a')), Char('b'))
	buf := peginput.NewRuneBufferFromString("b")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
	if result.RootNode.EndIndex != 1 {
		t.Errorf("EndIndex = %d, want 1 (lookahead consumed nothing)", result.RootNode.EndIndex)
	}
}

func TestNegativeLookaheadRejectsOnMatch(t *testing.T) {
	m := Sequence(TestNot(Char('a')), Any)
	buf := peginput.NewRuneBufferFromString("a")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Matched {
		t.Fatal("expected TestNot to reject when its child matches")
	}
}

func TestPositiveLookaheadRequiresMatchWithoutConsuming(t *testing.T) {
	m := Sequence(Test(Char('a')), Char('a'), Char('b'))
	buf := peginput.NewRuneBufferFromString("ab")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
}

func TestFirstOfPicksEarliestSuccessfulAlternative(t *testing.T) {
	m := FirstOf(String("ab"), String("a"))
	buf := peginput.NewRuneBufferFromString("ab")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
	if result.RootNode.EndIndex != 2 {
		t.Errorf("EndIndex = %d, want 2", result.RootNode.EndIndex)
	}
}

func TestOptionalNeverFails(t *testing.T) {
	m := Sequence(Optional(Char('x')), Char('y'))
	buf := peginput.NewRuneBufferFromString("y")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
}

func TestSuppressedHidesSubtreeFromNodeTree(t *testing.T) {
	m := Sequence(Suppressed(OneOrMore(Char(' '))), Char('x'))
	buf := peginput.NewRuneBufferFromString("  x")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
	for _, c := range result.RootNode.Children() {
		if c.StartIndex < 2 {
			t.Errorf("suppressed whitespace leaked a node: %+v", c)
		}
	}
}

func TestVarFramingScopesNamedRules(t *testing.T) {
	// digit and letter are reached only through Var lookups, resolved
	// against the nearest enclosing VarFraming scope.
	m := VarFraming(
		Sequence(Var("digit"), Var("letter")),
		map[string]Matcher{
			"digit":  CharRange('0', '9'),
			"letter": CharRange('a', 'z'),
		},
	)
	buf := peginput.NewRuneBufferFromString("1a")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
}

func TestVarOutsideAnyScopeIsUsageError(t *testing.T) {
	buf := peginput.NewRuneBufferFromString("x")
	_, err := NewParseRunner(Var("missing")).Run(buf)
	if err == nil {
		t.Fatal("expected a runtime failure for an unresolved Var lookup")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("error chain does not contain a *UsageError: %v", err)
	}
}

func TestProxyResolvesAfterSetTarget(t *testing.T) {
	p := NewProxy("digit")
	p.SetTarget(CharRange('0', '9'))
	buf := peginput.NewRuneBufferFromString("5")
	result, err := NewParseRunner(p).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
}

func TestProxyWithoutTargetIsUsageError(t *testing.T) {
	p := NewProxy("unresolved")
	buf := peginput.NewRuneBufferFromString("x")
	_, err := NewParseRunner(p).Run(buf)
	if err == nil {
		t.Fatal("expected a runtime failure for an unresolved Proxy")
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("error chain does not contain a *UsageError: %v", err)
	}
}

func TestCharMismatchFailsWithoutConsuming(t *testing.T) {
	m := Sequence(Char('a'), Char('c'))
	buf := peginput.NewRuneBufferFromString("ab")
	result, err := NewParseRunner(m).Run(buf)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Matched {
		t.Fatal("expected mismatch to fail")
	}
}

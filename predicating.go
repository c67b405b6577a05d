package pegcore

import "fmt"

// testMatcher and testNotMatcher generalize hucsmn/peg's predicating.go
// patternPredicate (Test/Not) from the teacher's ctx.predicates(ok) return
// path onto RunMatcher's own snapshot/restore machinery: position and
// value stack are always restored, and the child runs with node
// suppression forced on, matching spec.md §4.1's Test algorithm.
type (
	testMatcher struct {
		baseMatcher
		child Matcher
	}

	testNotMatcher struct {
		baseMatcher
		child Matcher
	}
)

// Test is a positive lookahead: succeeds iff child succeeds, consuming no
// input and retaining no node or value-stack effects.
func Test(child Matcher) Matcher {
	return &testMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("Test(%s)", child.Label())}, child: child}
}

// TestNot is a negative lookahead: succeeds iff child fails.
func TestNot(child Matcher) Matcher {
	return &testNotMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("TestNot(%s)", child.Label())}, child: child}
}

func (m *testMatcher) Match(ctx *MatcherContext) bool {
	return runPredicate(ctx, m.child)
}

func (m *testNotMatcher) Match(ctx *MatcherContext) bool {
	return !runPredicate(ctx, m.child)
}

// runPredicate snapshots position and value stack, runs child with node
// creation forced off, then restores position and stack unconditionally —
// spec.md §4.1: "Run child with node_suppressed := true. Restore position
// and stack regardless of outcome."
func runPredicate(ctx *MatcherContext, child Matcher) bool {
	beforeIndex := ctx.CurrentIndex()
	snapshot := ctx.run.Stack.TakeSnapshot()

	sub := ctx.GetSubContext(child)
	sub.nodeSuppressed = true
	matched := sub.RunMatcher()

	ctx.SetCurrentIndex(beforeIndex)
	ctx.run.Stack = snapshot
	return matched
}

func (m *testMatcher) Accept(v MatcherVisitor)    { v.VisitChildren(m, m.child) }
func (m *testNotMatcher) Accept(v MatcherVisitor) { v.VisitChildren(m, m.child) }

func (m *testMatcher) String() string    { return m.label }
func (m *testNotMatcher) String() string { return m.label }

package pegcore

import "fmt"

// ActionFunc is a user predicate evaluated against the context at the
// point Action appears in the grammar. It may read and mutate the value
// stack (via ctx.Push/Pop/Peek) and read the previous sibling's match
// (via ctx.GetMatch, when not the first child of its enclosing Sequence).
// Its boolean result is the match result; it never consumes input or
// produces sub-nodes.
type ActionFunc func(ctx *MatcherContext) bool

type actionMatcher struct {
	baseMatcher
	fn ActionFunc
}

// Action wraps fn as a matcher: consumes no input, builds no sub-nodes,
// and succeeds iff fn returns true.
func Action(label string, fn ActionFunc) Matcher {
	return &actionMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("Action(%s)", label)}, fn: fn}
}

func (m *actionMatcher) Match(ctx *MatcherContext) bool {
	return m.fn(ctx)
}

func (m *actionMatcher) Accept(v MatcherVisitor) { v.VisitChildren(m) }
func (m *actionMatcher) String() string          { return m.label }

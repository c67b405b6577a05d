package pegcore

// suppressedMatcher forces node suppression on an otherwise ordinary
// matcher, generalizing the forced suppression runPredicate applies to
// Test/TestNot's child (spec.md §4.1) into a reusable wrapper for
// grammars that want some terminal (typically inter-token whitespace)
// to consume input without ever showing up in the Node tree. Delegates
// on the same context frame, so it never appears as its own level in the
// matcher path, exactly like Proxy and VarFraming.
type suppressedMatcher struct {
	inner Matcher
}

// Suppressed wraps inner so that, wherever it appears, its match never
// produces a Node (and neither do its descendants, whose frames inherit
// the suppression flag in GetSubContext).
func Suppressed(inner Matcher) Matcher {
	return &suppressedMatcher{inner: inner}
}

func (m *suppressedMatcher) Label() string                  { return m.inner.Label() }
func (m *suppressedMatcher) IsNodeSuppressed() bool          { return true }
func (m *suppressedMatcher) IsNodeSkipped() bool             { return m.inner.IsNodeSkipped() }
func (m *suppressedMatcher) AreSubnodesSuppressed() bool     { return true }
func (m *suppressedMatcher) Match(ctx *MatcherContext) bool  { return m.inner.Match(ctx) }
func (m *suppressedMatcher) Accept(v MatcherVisitor)         { v.VisitChildren(m, m.inner) }
func (m *suppressedMatcher) String() string                  { return "~" + m.inner.Label() }

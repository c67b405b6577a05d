package pegcore

import "fmt"

// Repetition matchers, generalized from hucsmn/peg's combining.go
// qualifier family (patternQualifierAtLeast/patternQualifierOptional) onto
// the three repetition variants spec.md §3 names: OneOrMore, ZeroOrMore,
// Optional. The teacher's Qn(least, pat)/Q0n/Qmn generality is collapsed
// to exactly what the spec needs; grammars wanting bounded repetition
// build it from Sequence/Optional/ZeroOrMore the way a parboiled grammar
// author would compose rules rather than reach for a dedicated primitive.
type (
	oneOrMoreMatcher struct {
		baseMatcher
		child Matcher
	}

	zeroOrMoreMatcher struct {
		baseMatcher
		child Matcher
	}

	optionalMatcher struct {
		baseMatcher
		child Matcher
	}
)

// OneOrMore repeatedly matches child; succeeds iff it matches at least once.
func OneOrMore(child Matcher) Matcher {
	return &oneOrMoreMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("OneOrMore(%s)", child.Label())}, child: child}
}

// ZeroOrMore repeatedly matches child; always succeeds.
func ZeroOrMore(child Matcher) Matcher {
	return &zeroOrMoreMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("ZeroOrMore(%s)", child.Label())}, child: child}
}

// Optional attempts child once; always succeeds.
func Optional(child Matcher) Matcher {
	return &optionalMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("Optional(%s)", child.Label())}, child: child}
}

func (m *oneOrMoreMatcher) Match(ctx *MatcherContext) bool {
	before := ctx.CurrentIndex()
	if !ctx.GetSubContext(m.child).RunMatcher() {
		return false
	}
	if ctx.CurrentIndex() != before {
		for repeatOnce(ctx, m.child) {
		}
	}
	return true
}

func (m *zeroOrMoreMatcher) Match(ctx *MatcherContext) bool {
	for repeatOnce(ctx, m.child) {
	}
	return true
}

func (m *optionalMatcher) Match(ctx *MatcherContext) bool {
	sub := ctx.GetSubContext(m.child)
	sub.RunMatcher()
	return true
}

// repeatOnce runs child once at the current position, returning whether it
// both matched and consumed input — stopping on a non-consuming match
// prevents the infinite loop spec.md §5/§8 call out for greedy qualifiers
// nested around an empty-matching child.
func repeatOnce(ctx *MatcherContext, child Matcher) bool {
	before := ctx.CurrentIndex()
	sub := ctx.GetSubContext(child)
	if !sub.RunMatcher() {
		return false
	}
	return ctx.CurrentIndex() != before
}

func (m *oneOrMoreMatcher) Accept(v MatcherVisitor)  { v.VisitChildren(m, m.child) }
func (m *zeroOrMoreMatcher) Accept(v MatcherVisitor) { v.VisitChildren(m, m.child) }
func (m *optionalMatcher) Accept(v MatcherVisitor)   { v.VisitChildren(m, m.child) }

func (m *oneOrMoreMatcher) String() string  { return m.label }
func (m *zeroOrMoreMatcher) String() string { return m.label }
func (m *optionalMatcher) String() string   { return m.label }

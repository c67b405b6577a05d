package pegcore

import "fmt"

// Underlying types implementing Matcher, grounded on hucsmn/peg's rune.go
// (patternAnyRune, patternRuneSet, patternRuneRange), generalized from its
// Pattern.match(ctx *context) trampoline method to Matcher.Match(ctx
// *MatcherContext) bool driven by RunMatcher.
type (
	charMatcher struct {
		baseMatcher
		c rune
	}

	anyOfMatcher struct {
		baseMatcher
		set map[rune]bool
	}

	charRangeMatcher struct {
		baseMatcher
		lo, hi rune
	}

	anyMatcher struct {
		baseMatcher
	}

	nothingMatcher struct {
		baseMatcher
	}

	emptyMatcher struct {
		baseMatcher
	}
)

// Char matches one rune equal to c.
func Char(c rune) Matcher {
	return &charMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("Char(%q)", c)}, c: c}
}

// AnyOf matches one rune present in set.
func AnyOf(set string) Matcher {
	m := make(map[rune]bool, len(set))
	for _, r := range set {
		m[r] = true
	}
	return &anyOfMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("AnyOf(%q)", set)}, set: m}
}

// CharRange matches one rune in [lo, hi].
func CharRange(lo, hi rune) Matcher {
	return &charRangeMatcher{
		baseMatcher: baseMatcher{label: fmt.Sprintf("CharRange(%q..%q)", lo, hi)},
		lo:          lo, hi: hi,
	}
}

// Any matches any single non-EOI rune.
var Any Matcher = &anyMatcher{baseMatcher: baseMatcher{label: "Any"}}

// Nothing always fails, consuming nothing.
var Nothing Matcher = &nothingMatcher{baseMatcher: baseMatcher{label: "Nothing"}}

// EmptyString always succeeds, consuming nothing.
var EmptyString Matcher = &emptyMatcher{baseMatcher: baseMatcher{label: "Empty"}}

func (m *charMatcher) Match(ctx *MatcherContext) bool {
	if ctx.CurrentChar() != m.c {
		return false
	}
	ctx.AdvanceIndex(1)
	return true
}

func (m *anyOfMatcher) Match(ctx *MatcherContext) bool {
	c := ctx.CurrentChar()
	if c == EOI || !m.set[c] {
		return false
	}
	ctx.AdvanceIndex(1)
	return true
}

func (m *charRangeMatcher) Match(ctx *MatcherContext) bool {
	c := ctx.CurrentChar()
	if c == EOI || c < m.lo || c > m.hi {
		return false
	}
	ctx.AdvanceIndex(1)
	return true
}

func (m *anyMatcher) Match(ctx *MatcherContext) bool {
	if ctx.CurrentChar() == EOI {
		return false
	}
	ctx.AdvanceIndex(1)
	return true
}

func (m *nothingMatcher) Match(ctx *MatcherContext) bool { return false }
func (m *emptyMatcher) Match(ctx *MatcherContext) bool   { return true }

func (m *charMatcher) Accept(v MatcherVisitor)      { v.VisitChildren(m) }
func (m *anyOfMatcher) Accept(v MatcherVisitor)     { v.VisitChildren(m) }
func (m *charRangeMatcher) Accept(v MatcherVisitor) { v.VisitChildren(m) }
func (m *anyMatcher) Accept(v MatcherVisitor)       { v.VisitChildren(m) }
func (m *nothingMatcher) Accept(v MatcherVisitor)   { v.VisitChildren(m) }
func (m *emptyMatcher) Accept(v MatcherVisitor)     { v.VisitChildren(m) }

func (m *charMatcher) String() string      { return m.label }
func (m *anyOfMatcher) String() string     { return m.label }
func (m *charRangeMatcher) String() string { return m.label }
func (m *anyMatcher) String() string       { return m.label }
func (m *nothingMatcher) String() string   { return m.label }
func (m *emptyMatcher) String() string     { return m.label }

package pegcore

import (
	"fmt"
	"strings"
)

// sequenceMatcher and firstOfMatcher generalize hucsmn/peg's
// patternSequence/patternAlternative (combining.go) from the teacher's
// callstack-loop execution (ctx.locals.i, ctx.call/ctx.justReturned) to the
// frame-reuse model: each child runs in the parent's single reused
// sub-context, acquired fresh per child via GetSubContext.
type (
	sequenceMatcher struct {
		baseMatcher
		children []Matcher
	}

	firstOfMatcher struct {
		baseMatcher
		children []Matcher
	}
)

// Sequence matches each child in order, failing on the first child that
// fails. While running, ctx.IntTag() is the 1-based index of the child
// currently being attempted.
func Sequence(children ...Matcher) Matcher {
	if len(children) == 0 {
		return EmptyString
	}
	return &sequenceMatcher{baseMatcher: baseMatcher{label: labelChildren("Sequence", children)}, children: children}
}

// FirstOf tries each child in order, succeeding on the first success.
// Position and value stack are already restored between attempts by
// RunMatcher's retire-on-failure logic.
func FirstOf(children ...Matcher) Matcher {
	if len(children) == 0 {
		return Nothing
	}
	return &firstOfMatcher{baseMatcher: baseMatcher{label: labelChildren("FirstOf", children)}, children: children}
}

func labelChildren(name string, children []Matcher) string {
	strs := make([]string, len(children))
	for i, c := range children {
		strs[i] = c.Label()
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(strs, ", "))
}

func (m *sequenceMatcher) Match(ctx *MatcherContext) bool {
	for i, child := range m.children {
		ctx.intTag = i + 1
		sub := ctx.GetSubContext(child)
		if !sub.RunMatcher() {
			return false
		}
		ctx.prevMatchStart = sub.startIndex
		ctx.prevMatchEnd = sub.currentIndex
		ctx.prevMatchHasError = sub.hasError
	}
	return true
}

func (m *firstOfMatcher) Match(ctx *MatcherContext) bool {
	for _, child := range m.children {
		sub := ctx.GetSubContext(child)
		if sub.RunMatcher() {
			return true
		}
	}
	return false
}

func (m *sequenceMatcher) Accept(v MatcherVisitor) { v.VisitChildren(m, m.children...) }
func (m *firstOfMatcher) Accept(v MatcherVisitor)  { v.VisitChildren(m, m.children...) }

func (m *sequenceMatcher) String() string { return m.label }
func (m *firstOfMatcher) String() string  { return m.label }

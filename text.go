package pegcore

import "fmt"

// stringMatcher implements spec.md §3's String(s) variant: in fast mode an
// atomic literal compare, in slow mode behaves exactly as Sequence(Char...)
// so that reporting/recovering runs (which disable fast-string-matching
// per spec.md §4.4) still produce a matcher path through individual
// characters. Grounded on hucsmn/peg's text.go patternText, generalized
// from its single always-fast comparison into the spec's dual-mode design.
type stringMatcher struct {
	baseMatcher
	text  []rune
	asSeq Matcher // Sequence(Char...) built once at construction for slow mode
}

// String matches the literal text s. Fast mode is used unless the active
// run disabled it (ParseRunner's error-oriented passes do, per spec.md
// §4.4). asSeq is built here, not lazily on first slow match, since the
// matcher graph is shared across the independent goroutines ParseConcurrent
// fans a grammar out to (spec.md §5 forbids run-specific mutable state on a
// matcher) and two such runs can enter slow mode at the same time.
func String(s string) Matcher {
	if s == "" {
		return EmptyString
	}
	text := []rune(s)
	chars := make([]Matcher, len(text))
	for i, r := range text {
		chars[i] = Char(r)
	}
	return &stringMatcher{
		baseMatcher: baseMatcher{label: fmt.Sprintf("String(%q)", s)},
		text:        text,
		asSeq:       Sequence(chars...),
	}
}

func (m *stringMatcher) Match(ctx *MatcherContext) bool {
	if !ctx.run.fastMode {
		sub := ctx.GetSubContext(m.asSeq)
		return sub.RunMatcher()
	}
	start := ctx.CurrentIndex()
	for i, want := range m.text {
		if ctx.Buffer().CharAt(start+i) != want {
			return false
		}
	}
	ctx.SetCurrentIndex(start + len(m.text))
	return true
}

func (m *stringMatcher) Accept(v MatcherVisitor) { v.VisitChildren(m) }
func (m *stringMatcher) String() string          { return m.label }

package pegcore

import (
	"fmt"
	"strings"
)

// varFramingMatcher generalizes hucsmn/peg's Let (capturing.go's
// patternLet): push a namespace of named matchers, run the body, pop the
// namespace — except here the namespace is resolved through Proxy-style
// named lookups a grammar wires in directly rather than through the
// teacher's separate V/CV variable-invocation pattern, since spec.md §3
// only names a single VarFraming variant scoping "local grammar
// variables" around an inner matcher.
type varFramingMatcher struct {
	baseMatcher
	inner Matcher
	vars  map[string]Matcher
}

// VarFraming scopes vars around inner: while inner (and anything it calls
// into, including through Var references) is running, Var(name) resolves
// to vars[name] before falling through to any enclosing VarFraming scope.
func VarFraming(inner Matcher, vars map[string]Matcher) Matcher {
	for name, m := range vars {
		if m == nil {
			panic(errUndefinedVariable(name))
		}
	}
	return &varFramingMatcher{
		baseMatcher: baseMatcher{label: fmt.Sprintf("VarFraming(%s)", inner.Label())},
		inner:       inner,
		vars:        vars,
	}
}

// Match pushes the scope, delegates to inner on the SAME frame (transparent
// per spec.md §3/§4.1), then pops the scope regardless of outcome.
func (m *varFramingMatcher) Match(ctx *MatcherContext) bool {
	ctx.run.pushScope(m.vars)
	defer ctx.run.popScope()
	return m.inner.Match(ctx)
}

func (m *varFramingMatcher) IsNodeSuppressed() bool      { return m.inner.IsNodeSuppressed() }
func (m *varFramingMatcher) IsNodeSkipped() bool         { return m.inner.IsNodeSkipped() }
func (m *varFramingMatcher) AreSubnodesSuppressed() bool { return m.inner.AreSubnodesSuppressed() }

func (m *varFramingMatcher) Accept(v MatcherVisitor) { v.VisitChildren(m, m.inner) }
func (m *varFramingMatcher) String() string {
	names := make([]string, 0, len(m.vars))
	for name := range m.vars {
		names = append(names, name)
	}
	return fmt.Sprintf("let (%s) in %s", strings.Join(names, ", "), m.inner)
}

// varMatcher is the lookup half of VarFraming, generalizing hucsmn/peg's
// V(varname) (capturing.go's patternCaptureVariable without the capturing
// constructor): resolves a name against the nearest enclosing VarFraming
// scope at match time, so recursive rules can refer to each other by name
// without a Go-level initialization cycle.
type varMatcher struct {
	baseMatcher
	name string
}

// Var looks up name in the nearest enclosing VarFraming scope when matched.
// Panics with a UsageError if no enclosing scope defines name.
func Var(name string) Matcher {
	return &varMatcher{baseMatcher: baseMatcher{label: fmt.Sprintf("Var(%s)", name)}, name: name}
}

func (m *varMatcher) Match(ctx *MatcherContext) bool {
	target := ctx.run.lookup(m.name)
	if target == nil {
		panic(errUndefinedVariable(m.name))
	}
	sub := ctx.GetSubContext(target)
	return sub.RunMatcher()
}

func (m *varMatcher) Accept(v MatcherVisitor) { v.VisitChildren(m) }
func (m *varMatcher) String() string          { return m.label }

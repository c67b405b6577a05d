package pegcore

// Matcher is the tree representation of a Parsing Expression Grammar rule.
// The engine holds the matcher graph as a closed set of unexported types
// behind this interface, the same way hucsmn/peg keeps its Pattern values
// opaque; Proxy and VarFraming wrap an arbitrary Matcher, including ones
// supplied by an embedding grammar package, so Matcher stays an interface
// rather than a sum type.
type Matcher interface {
	// Label names the matcher for error paths and debug traces.
	Label() string

	// IsNodeSuppressed reports whether a successful match of this matcher
	// should not create its own parse tree node.
	IsNodeSuppressed() bool

	// IsNodeSkipped reports whether this matcher builds no node of its own;
	// the nodes its children produce attach to the nearest non-skipped
	// ancestor instead.
	IsNodeSkipped() bool

	// AreSubnodesSuppressed reports whether child nodes produced while
	// matching this matcher should be discarded rather than attached.
	AreSubnodesSuppressed() bool

	// Match runs this matcher against the given context, returning whether
	// it matched. Match must only be called through MatcherContext.RunMatcher.
	Match(ctx *MatcherContext) bool

	// Accept dispatches to a MatcherVisitor, used by grammar analysis and
	// debug tracing to walk the matcher graph without a type switch.
	Accept(v MatcherVisitor)

	String() string
}

// MatcherVisitor lets callers walk the closed matcher set without a type
// switch spilling into every package that inspects a grammar.
type MatcherVisitor interface {
	VisitChildren(m Matcher, children ...Matcher)
}

// Unwrap peels away Proxy and VarFraming wrappers, returning the innermost
// concrete matcher. It is idempotent and commutes over chains of wrappers,
// matching the unwrapping contract spec callers rely on to recognize, say,
// a Sequence hidden behind a Proxy used to break a construction cycle.
func Unwrap(m Matcher) Matcher {
	for {
		switch w := m.(type) {
		case *proxyMatcher:
			if w.target == nil {
				return m
			}
			m = w.target
		case *varFramingMatcher:
			m = w.inner
		default:
			return m
		}
	}
}

// baseMatcher centralizes the three node-shaping flags so each concrete
// matcher type only needs to embed it instead of repeating the same three
// trivial methods, mirroring how hucsmn/peg's pattern types share nothing
// but still keep uniform method sets.
type baseMatcher struct {
	label              string
	nodeSuppressed     bool
	nodeSkipped        bool
	subnodesSuppressed bool
}

func (b baseMatcher) Label() string               { return b.label }
func (b baseMatcher) IsNodeSuppressed() bool      { return b.nodeSuppressed }
func (b baseMatcher) IsNodeSkipped() bool         { return b.nodeSkipped }
func (b baseMatcher) AreSubnodesSuppressed() bool { return b.subnodesSuppressed }

package pegcore

// proxyMatcher is the forward-pointer wrapper spec.md §9 prescribes to
// break construction cycles in a recursive grammar: a Proxy is built
// first, wired into the cyclic rules that need to refer to a not-yet-built
// matcher, then pointed at its real target with SetTarget once
// construction finishes. Fully transparent after that: it delegates every
// static flag and Match to target, running the inner matcher on the *same*
// context frame rather than acquiring a new sub-context, so the proxy adds
// no level of its own to the matcher path or node tree (the frame carries
// the proxy's own label when it has one).
//
// Generalizes hucsmn/peg's V (capturing.go's patternCaptureVariable): a
// named, lazily-resolved forward reference used the same way to let
// recursive grammar rules invoke each other.
// Proxy is the exported handle NewProxy returns: callers outside this
// package need SetTarget to resolve a forward reference, which a bare
// Matcher interface value cannot expose.
type Proxy struct {
	target Matcher
	label  string
}

type proxyMatcher = Proxy

// NewProxy returns an unresolved Proxy. Call SetTarget before it is used
// in a parse; using it earlier is a UsageError.
func NewProxy(label string) *Proxy {
	return &Proxy{label: label}
}

// SetTarget resolves the proxy to m. Safe to call exactly once per proxy,
// after the recursive grammar it participates in has been fully built.
func (p *Proxy) SetTarget(m Matcher) {
	p.target = m
}

func (p *proxyMatcher) Label() string {
	if p.label != "" {
		return p.label
	}
	if p.target != nil {
		return p.target.Label()
	}
	return "Proxy(unresolved)"
}

func (p *proxyMatcher) requireTarget() Matcher {
	if p.target == nil {
		panic(errProxyWithoutTarget)
	}
	return p.target
}

func (p *proxyMatcher) IsNodeSuppressed() bool      { return p.requireTarget().IsNodeSuppressed() }
func (p *proxyMatcher) IsNodeSkipped() bool         { return p.requireTarget().IsNodeSkipped() }
func (p *proxyMatcher) AreSubnodesSuppressed() bool { return p.requireTarget().AreSubnodesSuppressed() }

// Match delegates to target on the SAME context frame: a proxy never
// appears as a distinguishable level in the matcher path or node tree.
func (p *proxyMatcher) Match(ctx *MatcherContext) bool {
	return p.requireTarget().Match(ctx)
}

func (p *proxyMatcher) Accept(v MatcherVisitor) {
	if p.target != nil {
		v.VisitChildren(p, p.target)
	} else {
		v.VisitChildren(p)
	}
}

func (p *proxyMatcher) String() string {
	return "&" + p.Label()
}

package pegcore

// MatchHandler is the strategy spec.md §4.3 specifies: a single operation
// invoked by a frame to actually run its matcher. Basic calls through
// directly; Reporting and Recovering interpose error detection and
// resynchronization around that same call.
type MatchHandler interface {
	Handle(ctx *MatcherContext) bool
}

// BasicHandler just calls through: return frame.matcher.match(frame).
type BasicHandler struct{}

func (BasicHandler) Handle(ctx *MatcherContext) bool {
	return ctx.matcher.Match(ctx)
}

// ReportingHandler runs the basic match; on overall parse failure with no
// errors collected, the Parse Runner falls back to reporting the deepest
// failed matcher path as a single ParseError (see ParseRunner.Run).
type ReportingHandler struct {
	deepest *ParseError
}

func (h *ReportingHandler) Handle(ctx *MatcherContext) bool {
	before := ctx.CurrentIndex()
	matched := ctx.matcher.Match(ctx)
	if !matched {
		pe := &ParseError{
			Position: positionAt(ctx.run.buffer, before),
			Path:     matcherPath(ctx),
			Expected: []string{ctx.matcher.Label()},
		}
		if h.deepest == nil || pe.Position.Offset >= h.deepest.Position.Offset {
			h.deepest = pe
		}
		ctx.MarkError()
	}
	return matched
}

// RecoveringHandler consults a label-derived recovery matcher on a failed
// match; if it succeeds, the error is recorded and matching continues from
// the recovered position; otherwise it skips one character and retries,
// per spec.md §4.3's Recovering contract.
type RecoveringHandler struct {
	Recovery map[string]Matcher
	Errors   *[]*ParseError
}

func (h *RecoveringHandler) Handle(ctx *MatcherContext) bool {
	before := ctx.CurrentIndex()
	if ctx.matcher.Match(ctx) {
		return true
	}

	recovery, ok := h.Recovery[ctx.matcher.Label()]
	if !ok {
		return h.skipOneAndRetry(ctx, before)
	}

	sub := ctx.GetSubContext(recovery)
	if sub.RunMatcher() {
		h.record(ctx, before)
		ctx.MarkError()
		return true
	}
	return h.skipOneAndRetry(ctx, before)
}

func (h *RecoveringHandler) skipOneAndRetry(ctx *MatcherContext, before int) bool {
	if ctx.CurrentChar() == EOI {
		h.record(ctx, before)
		return false
	}
	h.record(ctx, before)
	ctx.SetCurrentIndex(before + 1)
	ctx.MarkError()
	retry := ctx.matcher.Match(ctx)
	return retry
}

func (h *RecoveringHandler) record(ctx *MatcherContext, at int) {
	pe := &ParseError{
		Position: positionAt(ctx.run.buffer, at),
		Path:     matcherPath(ctx),
		Expected: []string{ctx.matcher.Label()},
	}
	*h.Errors = append(*h.Errors, pe)
}

func matcherPath(ctx *MatcherContext) []string {
	var path []string
	for c := ctx; c != nil; c = c.parent {
		if c.matcher != nil {
			path = append([]string{c.matcher.Label()}, path...)
		}
	}
	return path
}

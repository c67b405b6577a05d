package pegcore

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hucsmn/pegcore/pegstack"
)

// ParseResult is the Parse Runner's return value per spec.md §6.
type ParseResult struct {
	Matched     bool
	RootNode    *Node
	Errors      []*ParseError
	ResultValue interface{}
}

// ParseRunner drives a single parse: constructs the root context, calls
// into the Match Handler, and, on failure in richer modes, re-runs with
// progressively more error-aware handlers.
type ParseRunner struct {
	root Matcher
	opts runnerOptions
}

type runnerOptions struct {
	debug              *zap.Logger
	fastStringMatching bool
	recovery           map[string]Matcher
}

// Option configures a ParseRunner, in the functional-options style
// 32bitkid/pigeon's generated vm.Option uses (the pack's only example of a
// parser-runner options API): each Option both applies a setting and
// returns the Option that would undo it.
type Option func(*ParseRunner) Option

// Debug enables structured matcher-entry/exit tracing through zap,
// replacing pigeon's raw fmt.Fprintln debug dump with a real logger.
func Debug(logger *zap.Logger) Option {
	return func(r *ParseRunner) Option {
		prev := r.opts.debug
		r.opts.debug = logger
		return Debug(prev)
	}
}

// FastStringMatching toggles String's atomic-compare fast path. The first
// (basic) pass defaults to enabled; ParseRunner disables it automatically
// for any error-oriented (reporting/recovering) re-run, per spec.md §4.4.
func FastStringMatching(enabled bool) Option {
	return func(r *ParseRunner) Option {
		prev := r.opts.fastStringMatching
		r.opts.fastStringMatching = enabled
		return FastStringMatching(prev)
	}
}

// RecoveryMatchers supplies the label-keyed recovery grammar a
// RecoveringHandler consults. Recovery grammars are themselves an
// external-collaborator concern (spec.md §1); this only wires the
// mechanism to a caller-supplied catalog.
func RecoveryMatchers(recovery map[string]Matcher) Option {
	return func(r *ParseRunner) Option {
		prev := r.opts.recovery
		r.opts.recovery = recovery
		return RecoveryMatchers(prev)
	}
}

// NewParseRunner builds a runner for root, applying opts.
func NewParseRunner(root Matcher, opts ...Option) *ParseRunner {
	r := &ParseRunner{root: root, opts: runnerOptions{fastStringMatching: true}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run parses buf. It constructs the root context with level 0 and the
// basic handler first; on failure it escalates to reporting (to produce at
// least one ParseError), then to recovering if RecoveryMatchers was
// supplied, per spec.md §4.4.
func (r *ParseRunner) Run(buf Buffer) (result ParseResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			switch failure := rec.(type) {
			case *ParserRuntimeFailure:
				err = failure
			case *UsageError:
				err = failure
			default:
				panic(rec)
			}
		}
	}()

	if r.root == nil {
		return ParseResult{}, errNilRootMatcher
	}
	if r.root.IsNodeSkipped() {
		return ParseResult{}, errRootNodeSkipped
	}

	basic := r.newRun(buf, BasicHandler{}, r.opts.fastStringMatching)
	ctx := newRootContext(r.root, basic)
	if ctx.RunMatcher() {
		return r.finish(ctx, basic), nil
	}

	reporting := r.newRun(buf, &ReportingHandler{}, false)
	rctx := newRootContext(r.root, reporting)
	if rctx.RunMatcher() {
		return r.finish(rctx, reporting), nil
	}
	if h, ok := reporting.handler.(*ReportingHandler); ok && h.deepest != nil {
		reporting.Errors = append(reporting.Errors, h.deepest)
	}

	if r.opts.recovery == nil {
		return r.finish2(rctx, reporting, false), nil
	}

	recovering := r.newRun(buf, &RecoveringHandler{Recovery: r.opts.recovery, Errors: &[]*ParseError{}}, false)
	rcctx := newRootContext(r.root, recovering)
	matched := rcctx.RunMatcher()
	if h, ok := recovering.handler.(*RecoveringHandler); ok {
		recovering.Errors = *h.Errors
	}
	return r.finish2(rcctx, recovering, matched), nil
}

func (r *ParseRunner) newRun(buf Buffer, handler MatchHandler, fastMode bool) *runState {
	return &runState{
		buffer:   buf,
		handler:  handler,
		debug:    r.opts.debug,
		fastMode: fastMode,
		Stack:    pegstack.Empty,
	}
}

func (r *ParseRunner) finish(ctx *MatcherContext, run *runState) ParseResult {
	return r.finish2(ctx, run, true)
}

func (r *ParseRunner) finish2(ctx *MatcherContext, run *runState, matched bool) ParseResult {
	res := ParseResult{Matched: matched, RootNode: ctx.node, Errors: run.Errors}
	if matched && run.Stack.Size() > 0 {
		res.ResultValue = run.Stack.Peek()
	}
	return res
}

// ParseConcurrent runs the same grammar against multiple independent
// inputs, one goroutine per input, each with its own runner and context
// tree over the shared (immutable) matcher graph, per spec.md §5. No
// concurrency-helper library appears anywhere in the example pack, so this
// uses stdlib sync.WaitGroup rather than an ungrounded dependency like
// golang.org/x/sync/errgroup.
func ParseConcurrent(root Matcher, inputs []Buffer, opts ...Option) []ParseResultOrError {
	results := make([]ParseResultOrError, len(inputs))
	var wg sync.WaitGroup
	wg.Add(len(inputs))
	for i, buf := range inputs {
		go func(i int, buf Buffer) {
			defer wg.Done()
			runner := NewParseRunner(root, opts...)
			res, err := runner.Run(buf)
			results[i] = ParseResultOrError{Result: res, Err: err}
		}(i, buf)
	}
	wg.Wait()
	return results
}

// ParseResultOrError pairs a ParseResult with the error from its own
// independent run, since ParseConcurrent's goroutines cannot return a
// single shared error for all inputs.
type ParseResultOrError struct {
	Result ParseResult
	Err    error
}

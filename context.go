package pegcore

import (
	"go.uber.org/zap"

	"github.com/hucsmn/pegcore/pegstack"
)

// runState is shared by reference across every frame of one parse, the
// same way hucsmn/peg's context shares groups/capstack/callstack fields
// across every stackFrame of a single ctx.match() run: the Value Stack and
// the parse-error list are owned by the Parse Runner, never by a frame.
type runState struct {
	buffer   Buffer
	handler  MatchHandler
	debug    *zap.Logger
	fastMode bool

	Stack  *pegstack.Stack
	Errors []*ParseError

	scopes []map[string]Matcher
}

func (r *runState) pushScope(vars map[string]Matcher) {
	r.scopes = append(r.scopes, vars)
}

func (r *runState) popScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *runState) lookup(name string) Matcher {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if m, ok := r.scopes[i][name]; ok {
			return m
		}
	}
	return nil
}

// MatcherContext is the per-frame execution record spec.md §4.1 specifies:
// start/current index, current character, accumulated sub-nodes, error and
// suppression flags, an integer tag private to the active matcher, and a
// single reusable child frame. A depth-D parse allocates at most D+1 of
// these: get_sub_context never allocates a second child for a frame that
// already has one.
type MatcherContext struct {
	parent  *MatcherContext
	level   int
	matcher Matcher

	startIndex   int
	currentIndex int
	currentChar  rune

	node     *Node
	subNodes []*Node
	intTag   int

	hasError       bool
	nodeSuppressed bool

	subContext *MatcherContext
	run        *runState

	// prevMatch* resolve spec.md §9 Open Question (a): Sequence records its
	// previous child's span here, right after that child matches and before
	// the next child's sub-context overwrites the single reused frame's own
	// fields. See DESIGN.md.
	prevMatchStart    int
	prevMatchEnd      int
	prevMatchHasError bool
}

// newRootContext constructs the level-0 context: matcher is root with its
// resolved Proxy wrappers peeled away, node_suppressed is
// root.IsNodeSuppressed(). A VarFraming root stays the frame's matcher, so
// its Match pushes the scope that Var references inside it resolve against.
func newRootContext(root Matcher, run *runState) *MatcherContext {
	matcher := root
	for p, ok := matcher.(*proxyMatcher); ok && p.target != nil; p, ok = matcher.(*proxyMatcher) {
		matcher = p.target
	}
	ctx := &MatcherContext{
		level:          0,
		matcher:        matcher,
		startIndex:     0,
		currentIndex:   0,
		nodeSuppressed: root.IsNodeSuppressed(),
		run:            run,
	}
	ctx.currentChar = ctx.charAt(0)
	return ctx
}

func (ctx *MatcherContext) charAt(i int) rune {
	return ctx.run.buffer.CharAt(i)
}

// CurrentIndex returns the frame's current input position.
func (ctx *MatcherContext) CurrentIndex() int { return ctx.currentIndex }

// StartIndex returns the frame's start position.
func (ctx *MatcherContext) StartIndex() int { return ctx.startIndex }

// CurrentChar returns the rune at CurrentIndex, or EOI past the end.
func (ctx *MatcherContext) CurrentChar() rune { return ctx.currentChar }

// Buffer returns the input buffer backing this parse.
func (ctx *MatcherContext) Buffer() Buffer { return ctx.run.buffer }

// Level returns the frame's depth from the root.
func (ctx *MatcherContext) Level() int { return ctx.level }

// IntTag returns the matcher-private counter (Sequence's 1-based child
// index while it is running).
func (ctx *MatcherContext) IntTag() int { return ctx.intTag }

// HasError reports whether this frame or any descendant marked an error.
func (ctx *MatcherContext) HasError() bool { return ctx.hasError }

// SetCurrentIndex sets current_index and refreshes current_char.
func (ctx *MatcherContext) SetCurrentIndex(i int) {
	ctx.currentIndex = i
	ctx.currentChar = ctx.charAt(i)
}

// SetStartIndex sets start_index; panics (usage error) on a negative index.
func (ctx *MatcherContext) SetStartIndex(i int) {
	if i < 0 {
		panic(errNegativeIndex(i))
	}
	ctx.startIndex = i
}

// AdvanceIndex advances current_index by delta and refreshes current_char,
// unless the frame is already at EOI.
func (ctx *MatcherContext) AdvanceIndex(delta int) {
	if ctx.currentChar == EOI {
		return
	}
	ctx.SetCurrentIndex(ctx.currentIndex + delta)
}

// MarkError sets has_error and recurses to the parent only while it was
// not already set, so repeated marking along a shared path stays O(depth)
// overall rather than O(depth) per call.
func (ctx *MatcherContext) MarkError() {
	if ctx.hasError {
		return
	}
	ctx.hasError = true
	if ctx.parent != nil {
		ctx.parent.MarkError()
	}
}

// ClearNodeSuppression clears node_suppressed locally and on ancestors
// while each was itself suppressed, stopping at the first ancestor that
// was already unsuppressed.
func (ctx *MatcherContext) ClearNodeSuppression() {
	if !ctx.nodeSuppressed {
		return
	}
	ctx.nodeSuppressed = false
	if ctx.parent != nil {
		ctx.parent.ClearNodeSuppression()
	}
}

// InPredicate reports whether this frame or an ancestor is running as
// Test/TestNot's lookahead.
func (ctx *MatcherContext) InPredicate() bool {
	for c := ctx; c != nil; c = c.parent {
		if c.matcher == nil {
			continue
		}
		switch Unwrap(c.matcher).(type) {
		case *testMatcher, *testNotMatcher:
			return true
		}
	}
	return false
}

// Push, Pop and the rest of the value-stack surface operate on the shared
// run-level stack; every frame sees the same logical stack, snapshotted
// and restored around backtracking points by RunMatcher and Test/TestNot.
func (ctx *MatcherContext) Push(v interface{}) { ctx.run.Stack = ctx.run.Stack.Push(v) }

func (ctx *MatcherContext) Pop() interface{} {
	v, rest := ctx.run.Stack.Pop()
	ctx.run.Stack = rest
	return v
}

func (ctx *MatcherContext) Peek() interface{}        { return ctx.run.Stack.Peek() }
func (ctx *MatcherContext) PeekAt(i int) interface{} { return ctx.run.Stack.PeekAt(i) }
func (ctx *MatcherContext) StackSize() int           { return ctx.run.Stack.Size() }

// GetSubContext lazily creates the single child frame, then reinitializes
// it for matcher m per spec.md §4.1's get_sub_context algorithm.
func (ctx *MatcherContext) GetSubContext(m Matcher) *MatcherContext {
	if ctx.subContext == nil {
		ctx.subContext = &MatcherContext{parent: ctx, level: ctx.level + 1, run: ctx.run}
	}
	sub := ctx.subContext
	sub.matcher = m
	sub.startIndex = ctx.currentIndex
	sub.currentIndex = ctx.currentIndex
	sub.currentChar = ctx.currentChar
	sub.node = nil
	sub.subNodes = nil
	sub.intTag = 0
	sub.hasError = false
	sub.nodeSuppressed = ctx.nodeSuppressed || ctx.matcher.AreSubnodesSuppressed() || m.IsNodeSuppressed()
	return sub
}

// RunMatcher executes this frame's matcher through the run's Match Handler,
// implementing spec.md §4.1's run_matcher steps 1-6.
func (ctx *MatcherContext) RunMatcher() (ok bool) {
	snapshot := ctx.run.Stack.TakeSnapshot()

	defer func() {
		if r := recover(); r != nil {
			if failure, already := r.(*ParserRuntimeFailure); already {
				panic(failure.withFrame(ctx.matcher.Label()))
			}
			cause, isErr := r.(error)
			if !isErr {
				cause = unknownPanic{r}
			}
			panic(newParserRuntimeFailure(positionAt(ctx.run.buffer, ctx.currentIndex), ctx.matcher.Label(), cause))
		}
	}()

	if ctx.run.debug != nil {
		ctx.run.debug.Debug("enter",
			zap.String("matcher", ctx.matcher.Label()),
			zap.Int("level", ctx.level),
			zap.Int("pos", ctx.currentIndex))
	}

	matched := ctx.run.handler.Handle(ctx)

	if ctx.run.debug != nil {
		ctx.run.debug.Debug("exit",
			zap.String("matcher", ctx.matcher.Label()),
			zap.Int("level", ctx.level),
			zap.Bool("matched", matched))
	}

	if matched {
		ctx.createNode()
		if ctx.parent != nil {
			ctx.parent.SetCurrentIndex(ctx.currentIndex)
		}
		ctx.retire()
		return true
	}

	ctx.run.Stack = snapshot
	ctx.retire()
	return false
}

func (ctx *MatcherContext) retire() {
	ctx.matcher = nil
}

type unknownPanic struct{ value interface{} }

func (u unknownPanic) Error() string { return "panic: " + formatPanic(u.value) }

func formatPanic(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return "non-error panic value"
}

// createNode implements spec.md §4.1's create_node/add_child_node pair: a
// non-suppressed, non-skipped frame wraps its accumulated sub-nodes into a
// Node and attaches it to the nearest non-skipped ancestor; a skipped
// frame instead splices its own sub-nodes straight into that ancestor,
// transparently; a suppressed frame does neither.
func (ctx *MatcherContext) createNode() {
	if ctx.nodeSuppressed {
		return
	}

	dest := ctx.nearestNonSkippedAncestor()
	if ctx.matcher.IsNodeSkipped() {
		if dest != nil {
			dest.subNodes = append(dest.subNodes, ctx.subNodes...)
		}
		return
	}

	var top interface{}
	if ctx.run.Stack.Size() > 0 {
		top = ctx.run.Stack.Peek()
	}
	n := &Node{
		Label:      ctx.matcher.Label(),
		StartIndex: ctx.startIndex,
		EndIndex:   ctx.currentIndex,
		Value:      top,
		children:   ctx.subNodes,
	}
	ctx.node = n
	if dest != nil {
		dest.subNodes = append(dest.subNodes, n)
	}
}

// nearestNonSkippedAncestor walks up from ctx.parent while the ancestor's
// matcher is node-skipped. The root is never node-skipped (spec.md:
// "skipping may not reach the root"), so this always terminates.
func (ctx *MatcherContext) nearestNonSkippedAncestor() *MatcherContext {
	a := ctx.parent
	for a != nil && a.matcher != nil && a.matcher.IsNodeSkipped() {
		a = a.parent
	}
	return a
}

// GetMatch returns the previous sibling's matched text, usable only from
// within an Action that is not the first element of its enclosing
// Sequence. See DESIGN.md's resolution of spec.md §9 Open Question (a).
func (ctx *MatcherContext) GetMatch() string {
	start, end, _ := ctx.getPrevSequenceSpan()
	return ctx.run.buffer.Extract(start, end)
}

// GetMatchStartIndex returns the previous sibling's start index.
func (ctx *MatcherContext) GetMatchStartIndex() int {
	start, _, _ := ctx.getPrevSequenceSpan()
	return start
}

// GetMatchEndIndex returns the previous sibling's end index.
func (ctx *MatcherContext) GetMatchEndIndex() int {
	_, end, _ := ctx.getPrevSequenceSpan()
	return end
}

// GetMatchHasError reports whether the previous sibling was flagged
// erroneous by a recovering run.
func (ctx *MatcherContext) GetMatchHasError() bool {
	_, _, hasError := ctx.getPrevSequenceSpan()
	return hasError
}

func (ctx *MatcherContext) getPrevSequenceSpan() (start, end int, hasError bool) {
	parent := ctx.parent
	if parent == nil {
		panic(errGetMatchOutsideSequence)
	}
	if _, ok := Unwrap(parent.matcher).(*sequenceMatcher); !ok {
		panic(errGetMatchOutsideSequence)
	}
	if parent.intTag <= 1 {
		panic(errGetMatchFirstElement)
	}
	return parent.prevMatchStart, parent.prevMatchEnd, parent.prevMatchHasError
}

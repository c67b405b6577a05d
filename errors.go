package pegcore

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// UsageError reports misuse of the engine's API by the grammar or caller:
// an undefined variable, GetMatch called outside an eligible Action, a root
// matcher that is node-skipped. It is always a programmer error, never a
// property of the input text.
type UsageError struct {
	value string
}

func usageErrorf(format string, v ...interface{}) *UsageError {
	return &UsageError{fmt.Sprintf(format, v...)}
}

func (err *UsageError) Error() string {
	return "pegcore: " + err.value
}

// ParseError records one unmatched expectation at a single input position.
// A run that fails without recovering reports one of these, for the
// deepest failure; a recovering run records one for each failure it
// resynchronizes past, in the order they occurred.
type ParseError struct {
	Position Position
	Path     []string
	Expected []string
	Message  string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pegcore: parse error at %s", e.Position.String())
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ": expected %s", strings.Join(e.Expected, ", "))
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " (in %s)", strings.Join(e.Path, " > "))
	}
	return b.String()
}

// ParserRuntimeFailure wraps an exceptional, non-recoverable failure (a
// host panic surfacing from an Action, or an internal invariant violation)
// as it unwinds through nested RunMatcher frames. It is constructed once,
// at the innermost frame, then each ancestor frame's defer appends its own
// matcher label to Path before re-panicking unchanged, so "wrap once" holds
// regardless of how deep the matcher graph is.
type ParserRuntimeFailure struct {
	Position Position
	Path     []string
	cause    error
}

func newParserRuntimeFailure(pos Position, label string, cause error) *ParserRuntimeFailure {
	return &ParserRuntimeFailure{
		Position: pos,
		Path:     []string{label},
		cause:    xerrors.Errorf("pegcore: runtime failure in %s at %s: %w", label, pos.String(), cause),
	}
}

func (f *ParserRuntimeFailure) withFrame(label string) *ParserRuntimeFailure {
	f.Path = append(f.Path, label)
	return f
}

func (f *ParserRuntimeFailure) Error() string {
	return fmt.Sprintf("%s (path: %s)", f.cause.Error(), strings.Join(f.Path, " < "))
}

func (f *ParserRuntimeFailure) Unwrap() error {
	return xerrors.Unwrap(f.cause)
}

var (
	errUndefinedVariable = func(name string) error {
		return usageErrorf("variable %q is undefined in the enclosing VarFraming scope", name)
	}
	errProxyWithoutTarget = usageErrorf("Proxy matcher invoked before SetTarget was called")
	errGetMatchOutsideSequence = usageErrorf(
		"GetMatch called from an Action not hung directly off a Sequence child")
	errGetMatchFirstElement = usageErrorf(
		"GetMatch called from the first element of a Sequence, no previous sibling exists")
	errRootNodeSkipped = usageErrorf("root matcher must not be node-skipped")
	errNilRootMatcher  = usageErrorf("root matcher must not be nil")
	errNegativeIndex   = func(i int) error {
		return usageErrorf("negative buffer index %d", i)
	}
)

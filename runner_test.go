package pegcore

import (
	"testing"

	"go.uber.org/zap"

	"github.com/hucsmn/pegcore/peginput"
)

func TestRecoveryMatchersResynchronizeAfterError(t *testing.T) {
	// Each field is a digit followed by a comma; a garbled field is skipped
	// by the comma-seeking recovery matcher instead of aborting the parse.
	field := Sequence(CharRange('0', '9'), Char(','))
	m := Sequence(field, field, field)

	recovery := map[string]Matcher{
		field.Label(): ZeroOrMore(Sequence(TestNot(Char(',')), Any)),
	}

	buf := peginput.NewRuneBufferFromString("1,XX,3,")
	result, err := NewParseRunner(m, RecoveryMatchers(recovery)).Run(buf)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Error("expected at least one recorded ParseError from the garbled field")
	}
}

func TestDebugOptionAcceptsALogger(t *testing.T) {
	logger := zap.NewNop()
	m := Char('a')
	buf := peginput.NewRuneBufferFromString("a")
	result, err := NewParseRunner(m, Debug(logger)).Run(buf)
	if err != nil || !result.Matched {
		t.Fatalf("matched=%v err=%v errors=%v", result.Matched, err, result.Errors)
	}
}

func TestParseConcurrentRunsIndependentInputs(t *testing.T) {
	m := OneOrMore(CharRange('0', '9'))
	inputs := []Buffer{
		peginput.NewRuneBufferFromString("123"),
		peginput.NewRuneBufferFromString("abc"),
		peginput.NewRuneBufferFromString("456"),
	}
	results := ParseConcurrent(m, inputs)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	want := []bool{true, false, true}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("input %d: unexpected runtime failure: %v", i, r.Err)
		}
		if r.Result.Matched != want[i] {
			t.Errorf("input %d: matched=%v, want %v", i, r.Result.Matched, want[i])
		}
	}
}

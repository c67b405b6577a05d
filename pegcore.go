// Package pegcore implements a Parsing Expression Grammar matching engine
// modeled on parboiled's matcher graph: a fixed set of closed Matcher
// variants (Char, AnyOf, CharRange, Any, String, Sequence, FirstOf,
// OneOrMore, ZeroOrMore, Optional, Test, TestNot, Action, Proxy,
// VarFraming, Var, Nothing, EmptyString) composed into an immutable
// graph, driven depth-first by a MatcherContext that reuses exactly one
// child frame per recursion depth and an immutable value Stack that
// supports O(1) snapshot and restore.
//
// Overlook of matchers
//
// Single-rune and text matchers:
//     Char(c), AnyOf(set), CharRange(lo, hi), Any, String(s)
//     Nothing, EmptyString
// Combinators:
//     Sequence(children...), FirstOf(children...)
// Repetition:
//     OneOrMore(child), ZeroOrMore(child), Optional(child)
// Lookahead, consuming no input:
//     Test(child), TestNot(child)
// Escape hatches and grammar wiring:
//     Action(label, fn), NewProxy(label)+SetTarget, VarFraming(inner, vars), Var(name)
//
// A parse is driven by a ParseRunner: NewParseRunner(root, opts...).Run(buf)
// first tries a fast BasicHandler pass; on failure it re-runs with a
// ReportingHandler to synthesize at least one ParseError, and, if
// RecoveryMatchers was supplied, a final RecoveringHandler pass that
// resynchronizes past bad input instead of giving up outright.
//
// Common mistakes
//
// Greedy repetition:
//
// OneOrMore and ZeroOrMore are greedy and never backtrack into what they
// already consumed: Sequence(ZeroOrMore(CharRange('0','9')), AnyOf("02468"))
// can never succeed, since the digit run always eats the last digit first.
// Use Sequence(ZeroOrMore(Sequence(CharRange('0','9'), Test(CharRange('0','9')))), ...)
// to hold one digit back instead.
//
// Infinite loops:
//
// A child that can match zero-width input must never be nested directly
// inside OneOrMore or ZeroOrMore; repeatOnce refuses to iterate when the
// child matched without advancing, exactly once, to avoid looping forever.
//
// Left recursion:
//
// Matching is plain recursive descent with no memoization, so a rule that
// calls itself (directly or through Proxy/Var) before consuming at least
// one rune will recurse until the Go runtime's own stack gives out.
// Left-recursive grammars are not supported.
package pegcore // import "github.com/hucsmn/pegcore"

import (
	"github.com/hucsmn/pegcore/peginput"
)

// MatchedPrefix runs m against text with a default ParseRunner and returns
// the prefix spanned by the root node, or "", false if m does not match.
func MatchedPrefix(m Matcher, text string) (prefix string, ok bool) {
	buf := peginput.NewRuneBufferFromString(text)
	result, err := NewParseRunner(m).Run(buf)
	if err != nil || !result.Matched {
		return "", false
	}
	runes := []rune(text)
	end := result.RootNode.EndIndex
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[:end]), true
}

// IsFullMatched tells whether m matches the whole of text, not just a
// prefix of it. A FirstOf whose first alternative matches a strict prefix
// of a longer later alternative commits to the shorter one, so such a text
// is reported as not fully matched.
func IsFullMatched(m Matcher, text string) bool {
	buf := peginput.NewRuneBufferFromString(text)
	result, err := NewParseRunner(m).Run(buf)
	return err == nil && result.Matched && result.RootNode != nil &&
		result.RootNode.EndIndex == len([]rune(text))
}

// ParseString is a convenience one-shot entry point equivalent to
// NewParseRunner(m, opts...).Run(peginput.NewRuneBufferFromString(text)),
// for callers that already hold the whole input in memory.
func ParseString(m Matcher, text string, opts ...Option) (ParseResult, error) {
	buf := peginput.NewRuneBufferFromString(text)
	return NewParseRunner(m, opts...).Run(buf)
}

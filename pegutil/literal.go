package pegutil

import (
	"math"
	"strconv"
	"strings"

	"github.com/hucsmn/pegcore"
)

// Bare integers.
var (
	DecInteger = pegcore.OneOrMore(DecDigit)
	DecUint8   = DecIntegerBetween(0, math.MaxUint8)
	DecUint16  = DecIntegerBetween(0, math.MaxUint16)
	DecUint32  = DecIntegerBetween(0, math.MaxUint32)

	HexInteger = pegcore.OneOrMore(HexDigit)
	HexUint8   = HexIntegerBetween(0, math.MaxUint8)
	HexUint16  = HexIntegerBetween(0, math.MaxUint16)
	HexUint32  = HexIntegerBetween(0, math.MaxUint32)

	OctInteger = pegcore.OneOrMore(OctDigit)
	OctUint8   = OctIntegerBetween(0, math.MaxUint8)
	OctUint16  = OctIntegerBetween(0, math.MaxUint16)
)

// Numbers.
var (
	Integer = pegcore.FirstOf(
		pegcore.Sequence(pegcore.String("0x"), HexInteger),
		pegcore.Sequence(pegcore.String("0X"), HexInteger),
		DecInteger,
		pegcore.Sequence(pegcore.Char('0'), OctInteger))
	Decimal = pegcore.FirstOf(
		pegcore.Sequence(pegcore.ZeroOrMore(DecDigit), pegcore.Char('.'), pegcore.OneOrMore(DecDigit)),
		DecInteger)
	Float = pegcore.Sequence(
		Decimal,
		pegcore.Optional(
			pegcore.Sequence(
				pegcore.AnyOf("eE"),
				pegcore.Optional(pegcore.AnyOf("+-")),
				DecInteger)))
	Number = pegcore.FirstOf(
		pegcore.Sequence(pegcore.FirstOf(pegcore.String("0x"), pegcore.String("0X")), HexInteger),
		Float,
		pegcore.Sequence(pegcore.Char('0'), OctInteger))
)

// Identifier.
var Identifier = pegcore.Sequence(
	pegcore.FirstOf(Letter, pegcore.Char('_')),
	pegcore.ZeroOrMore(pegcore.FirstOf(LetterDigit, pegcore.Char('_'))))

// Spaces and newlines.
var (
	AnySpaces = pegcore.ZeroOrMore(Whitespace)
	Spaces    = pegcore.OneOrMore(Whitespace)
	Newline   = pegcore.FirstOf(pegcore.String("\r\n"), pegcore.AnyOf("\r\n"))
)

// String is a double-quoted literal with the common backslash escapes
// (\uXXXX, \xXX, octal, and the single-letter escapes), grounded on
// hucsmn/peg/pegutil's literal.go literalString.
var String = pegcore.Sequence(
	pegcore.Char('"'),
	pegcore.ZeroOrMore(pegcore.FirstOf(
		pegcore.Sequence(pegcore.String(`\U`), repeatExactly(8, HexDigit)),
		pegcore.Sequence(pegcore.String(`\u`), repeatExactly(4, HexDigit)),
		pegcore.Sequence(pegcore.String(`\x`), repeatExactly(2, HexDigit)),
		pegcore.Sequence(pegcore.Char('\\'), repeatExactly(3, OctDigit)),
		pegcore.Sequence(pegcore.Char('\\'), pegcore.AnyOf(`abfnrtv\'"`)),
		ASCIINotControlQuote)),
	pegcore.Char('"'))

// ASCIINotControlQuote matches one rune that is neither a double quote nor
// a line terminator, the string body's fallback alternative.
var ASCIINotControlQuote = pegutilNotOf(`"` + "\n\r")

func pegutilNotOf(set string) pegcore.Matcher {
	return &unicodeClassMatcher{label: "NotOf(" + set + ")", negated: pegcore.AnyOf(set)}
}

// repeatExactly matches child exactly n times, generalizing hucsmn/peg's
// Qnn into a Sequence of n identical children since pegcore's Matcher
// table has no bounded-count quantifier of its own (only OneOrMore,
// ZeroOrMore, Optional, per spec.md §3).
func repeatExactly(n int, child pegcore.Matcher) pegcore.Matcher {
	children := make([]pegcore.Matcher, n)
	for i := range children {
		children[i] = child
	}
	return pegcore.Sequence(children...)
}

// IntegerBetween matches an Integer in the range [m, n], truncating the
// raw bare-integer match down to the longest valid prefix the same way
// hucsmn/peg/pegutil's Inject-based IntegerBetween did, ported onto a
// dedicated Matcher instead of a post-hoc string injector.
func IntegerBetween(m, n uint64) pegcore.Matcher {
	return &rangeIntegerMatcher{label: "IntegerBetween", bare: Integer, injector: newIntegerInjector(m, n)}
}

// DecIntegerBetween matches a DecInteger in the range [m, n].
func DecIntegerBetween(m, n uint64) pegcore.Matcher {
	return &rangeIntegerMatcher{label: "DecIntegerBetween", bare: DecInteger, injector: newBareIntegerInjector(m, n, 10)}
}

// HexIntegerBetween matches a HexInteger in the range [m, n].
func HexIntegerBetween(m, n uint64) pegcore.Matcher {
	return &rangeIntegerMatcher{label: "HexIntegerBetween", bare: HexInteger, injector: newBareIntegerInjector(m, n, 16)}
}

// OctIntegerBetween matches an OctInteger in the range [m, n].
func OctIntegerBetween(m, n uint64) pegcore.Matcher {
	return &rangeIntegerMatcher{label: "OctIntegerBetween", bare: OctInteger, injector: newBareIntegerInjector(m, n, 8)}
}

// rangeIntegerMatcher runs bare, then truncates the match to the longest
// leading run of bare's text for which injector reports success.
type rangeIntegerMatcher struct {
	label    string
	bare     pegcore.Matcher
	injector func(s string) (int, bool)
}

func (m *rangeIntegerMatcher) Label() string                  { return m.label }
func (m *rangeIntegerMatcher) IsNodeSuppressed() bool         { return false }
func (m *rangeIntegerMatcher) IsNodeSkipped() bool            { return false }
func (m *rangeIntegerMatcher) AreSubnodesSuppressed() bool    { return false }
func (m *rangeIntegerMatcher) Accept(v pegcore.MatcherVisitor) { v.VisitChildren(m, m.bare) }
func (m *rangeIntegerMatcher) String() string                  { return m.label }

func (m *rangeIntegerMatcher) Match(ctx *pegcore.MatcherContext) bool {
	start := ctx.CurrentIndex()
	sub := ctx.GetSubContext(m.bare)
	if !sub.RunMatcher() {
		return false
	}
	end := ctx.CurrentIndex()
	s := ctx.Buffer().Extract(start, end)
	n, ok := m.injector(s)
	if !ok {
		ctx.SetCurrentIndex(start)
		return false
	}
	ctx.SetCurrentIndex(start + n)
	return true
}

// Helpers for integer literal validation, unchanged from
// hucsmn/peg/pegutil's literal.go.

func newIntegerInjector(m, n uint64) func(s string) (int, bool) {
	return func(s string) (int, bool) {
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			cnt, ok := newBareIntegerInjector(m, n, 16)(s[2:])
			if !ok {
				return 0, false
			}
			return cnt + 2, true
		}
		if s[0] == '0' {
			oct := true
			for _, r := range s {
				if !strings.ContainsRune("01234567", r) {
					oct = false
					break
				}
			}
			if oct {
				return newBareIntegerInjector(m, n, 8)(s)
			}
		}
		return newBareIntegerInjector(m, n, 10)(s)
	}
}

func newBareIntegerInjector(m, n uint64, base int) func(s string) (int, bool) {
	if m > n {
		m, n = n, m
	}
	dm := countDigits(m, base)
	dn := countDigits(n, base)

	return func(s string) (int, bool) {
		var zeroes int
		var r rune
		for zeroes, r = range s {
			if r != '0' {
				break
			}
		}
		if s[zeroes:] == "" {
			s = s[zeroes-1:]
		} else {
			s = s[zeroes:]
		}

		if len(s) > dn {
			s = s[:dn]
		}
		for len(s) >= dm {
			x, err := strconv.ParseUint(s, base, 64)
			if err == nil && x >= m && x <= n {
				return zeroes + len(s), true
			}
			s = s[:len(s)-1]
		}
		return 0, false
	}
}

func countDigits(x uint64, base int) (n int) {
	b := uint64(base)
	n = 1
	for x >= b {
		x /= b
		n++
	}
	return
}

package pegutil

import (
	"unicode"

	"github.com/hucsmn/pegcore"
)

// Digits.
var (
	OctDigit = pegcore.CharRange('0', '7')
	DecDigit = pegcore.CharRange('0', '9')
	HexDigit = pegcore.FirstOf(
		pegcore.CharRange('0', '9'),
		pegcore.CharRange('a', 'f'),
		pegcore.CharRange('A', 'F'))
)

// ASCII runes.
var (
	ASCIIWhitespace    = pegcore.AnyOf(" \t\n\r\v\f")
	ASCIINotWhitespace = negate("ASCIINotWhitespace", pegcore.AnyOf(" \t\n\r\v\f"))
	ASCIIDigit         = pegcore.CharRange('0', '9')
	ASCIILetter        = pegcore.FirstOf(pegcore.CharRange('a', 'z'), pegcore.CharRange('A', 'Z'))
	ASCIILower         = pegcore.CharRange('a', 'z')
	ASCIIUpper         = pegcore.CharRange('A', 'Z')
	ASCIILetterDigit   = pegcore.FirstOf(ASCIILetter, ASCIIDigit)
	ASCIIControl       = pegcore.FirstOf(pegcore.CharRange('\x00', '\x1f'), pegcore.Char('\x7f'))
	ASCIINotControl    = pegcore.CharRange('\x20', '\x7e')
)

// Unicode runes, classified via the standard library's unicode range
// tables rather than a bespoke range-table matcher: unicodeClassMatcher
// below wraps a *unicode.RangeTable the same way the teacher's U(name)
// wrapped its own appendUnicodeRanges lookup, but draws on stdlib tables
// instead of carrying a private copy of the Unicode Character Database.
var (
	Whitespace    = unicodeClass("Whitespace", unicode.White_Space, false)
	NotWhitespace = unicodeClass("NotWhitespace", unicode.White_Space, true)
	Digit         = unicodeClass("Digit", unicode.Digit, false)
	Letter        = unicodeClass("Letter", unicode.Letter, false)
	Lower         = unicodeClass("Lower", unicode.Lower, false)
	Upper         = unicodeClass("Upper", unicode.Upper, false)
	Title         = unicodeClass("Title", unicode.Title, false)
	LetterDigit   = pegcore.FirstOf(Letter, Digit)
	Control       = unicodeClass("Control", unicode.Control, false)
	NotControl    = unicodeClass("NotControl", unicode.Control, true)
	Printable     = unicodeClass("Printable", unicode.PrintRanges[0], false)
	NotPrintable  = unicodeClass("NotPrintable", unicode.PrintRanges[0], true)
	Graphic       = unicodeClass("Graphic", unicode.Graphic, false)
	NotGraphic    = unicodeClass("NotGraphic", unicode.Graphic, true)
)

// New line.
var (
	NewlineRune    = pegcore.AnyOf("\n\r")
	NotNewlineRune = negate("NotNewlineRune", pegcore.AnyOf("\n\r"))
)

func negate(label string, of pegcore.Matcher) pegcore.Matcher {
	m := unicodeClass(label, nil, false)
	m.negated = of
	return m
}

// unicodeClassMatcher matches a single rune against a unicode.RangeTable,
// optionally inverted, or (when negated is set) against the complement of
// an existing character-set Matcher.
type unicodeClassMatcher struct {
	label   string
	table   *unicode.RangeTable
	negate  bool
	negated pegcore.Matcher
}

func unicodeClass(label string, table *unicode.RangeTable, neg bool) *unicodeClassMatcher {
	return &unicodeClassMatcher{label: label, table: table, negate: neg}
}

func (m *unicodeClassMatcher) Label() string                  { return m.label }
func (m *unicodeClassMatcher) IsNodeSuppressed() bool          { return false }
func (m *unicodeClassMatcher) IsNodeSkipped() bool             { return false }
func (m *unicodeClassMatcher) AreSubnodesSuppressed() bool     { return false }
func (m *unicodeClassMatcher) Accept(v pegcore.MatcherVisitor) { v.VisitChildren(m) }
func (m *unicodeClassMatcher) String() string                  { return m.label }

func (m *unicodeClassMatcher) Match(ctx *pegcore.MatcherContext) bool {
	if m.negated != nil {
		before := ctx.CurrentIndex()
		sub := ctx.GetSubContext(m.negated)
		if sub.RunMatcher() {
			ctx.SetCurrentIndex(before)
			return false
		}
		if ctx.CurrentChar() == pegcore.EOI {
			return false
		}
		ctx.AdvanceIndex(1)
		return true
	}

	c := ctx.CurrentChar()
	if c == pegcore.EOI {
		return false
	}
	in := unicode.Is(m.table, c)
	if m.negate {
		in = !in
	}
	if !in {
		return false
	}
	ctx.AdvanceIndex(1)
	return true
}

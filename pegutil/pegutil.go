// Package pegutil provides extra, ready-made matchers built on pegcore.
//
// Following categories of utils are provided by this package:
//     Rune sets (including *Digit, ASCII*, <common unicode rune sets>)
//     Bare integers (including *Integer, *Uint*)
//     Integer helpers (*IntegerBetween)
//     Simple literals (including Float, Identifier, String, Newline, ...)
// TCP/IP and URI address literals are out of scope here: grammars that
// need them compose their own from the rune sets and literals below.
// This package's API is currently volatile.
package pegutil

import "github.com/hucsmn/pegcore"

// Scope contains all the variables defined in this package, keyed by
// name, for grammars that want to resolve pegutil matchers dynamically
// (e.g. through pegcore.VarFraming).
var Scope = map[string]pegcore.Matcher{
	"OctDigit": OctDigit,
	"DecDigit": DecDigit,
	"HexDigit": HexDigit,

	"ASCIIWhitespace":    ASCIIWhitespace,
	"ASCIINotWhitespace": ASCIINotWhitespace,
	"ASCIIDigit":         ASCIIDigit,
	"ASCIILetter":        ASCIILetter,
	"ASCIILower":         ASCIILower,
	"ASCIIUpper":         ASCIIUpper,
	"ASCIILetterDigit":   ASCIILetterDigit,
	"ASCIIControl":       ASCIIControl,
	"ASCIINotControl":    ASCIINotControl,

	"Whitespace":    Whitespace,
	"NotWhitespace": NotWhitespace,
	"Digit":         Digit,
	"Letter":        Letter,
	"Lower":         Lower,
	"Upper":         Upper,
	"Title":         Title,
	"LetterDigit":   LetterDigit,
	"Control":       Control,
	"NotControl":    NotControl,
	"Printable":     Printable,
	"NotPrintable":  NotPrintable,
	"Graphic":       Graphic,
	"NotGraphic":    NotGraphic,

	"NewlineRune":    NewlineRune,
	"NotNewlineRune": NotNewlineRune,

	"ASCIINotControlQuote": ASCIINotControlQuote,

	"DecInteger": DecInteger,
	"DecUint8":   DecUint8,
	"DecUint16":  DecUint16,
	"DecUint32":  DecUint32,

	"HexInteger": HexInteger,
	"HexUint8":   HexUint8,
	"HexUint16":  HexUint16,
	"HexUint32":  HexUint32,

	"OctInteger": OctInteger,
	"OctUint8":   OctUint8,
	"OctUint16":  OctUint16,

	"Integer":    Integer,
	"Decimal":    Decimal,
	"Float":      Float,
	"Number":     Number,
	"Identifier": Identifier,
	"AnySpaces":  AnySpaces,
	"Spaces":     Spaces,
	"Newline":    Newline,
	"String":     String,
}

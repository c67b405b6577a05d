package pegutil

import (
	"testing"

	"github.com/hucsmn/pegcore"
	"github.com/hucsmn/pegcore/peginput"
)

func fullMatch(t *testing.T, m pegcore.Matcher, s string) bool {
	t.Helper()
	result, err := pegcore.NewParseRunner(m).Run(peginput.NewRuneBufferFromString(s))
	if err != nil {
		t.Fatalf("Run(%q): %v", s, err)
	}
	return result.Matched && result.RootNode != nil && result.RootNode.EndIndex == len([]rune(s))
}

func TestDigits(t *testing.T) {
	cases := []struct {
		m    pegcore.Matcher
		s    string
		want bool
	}{
		{DecDigit, "5", true},
		{DecDigit, "a", false},
		{HexDigit, "f", true},
		{HexDigit, "F", true},
		{HexDigit, "g", false},
		{OctDigit, "7", true},
		{OctDigit, "8", false},
	}
	for _, c := range cases {
		if got := fullMatch(t, c.m, c.s); got != c.want {
			t.Errorf("%s on %q: got %v, want %v", c.m.Label(), c.s, got, c.want)
		}
	}
}

func TestIdentifier(t *testing.T) {
	for _, s := range []string{"x", "_foo", "camelCase1", "日本語"} {
		if !fullMatch(t, Identifier, s) {
			t.Errorf("Identifier rejected %q", s)
		}
	}
	for _, s := range []string{"1abc", ""} {
		if fullMatch(t, Identifier, s) {
			t.Errorf("Identifier accepted %q", s)
		}
	}
}

func TestIntegerBetween(t *testing.T) {
	m := DecIntegerBetween(10, 20)
	for _, s := range []string{"10", "15", "20"} {
		if !fullMatch(t, m, s) {
			t.Errorf("DecIntegerBetween(10,20) rejected %q", s)
		}
	}
	for _, s := range []string{"9", "21", "100"} {
		if fullMatch(t, m, s) {
			t.Errorf("DecIntegerBetween(10,20) accepted %q", s)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{`"hello"`, true},
		{`"with \n escape"`, true},
		{`"é"`, true},
		{`"unterminated`, false},
		{"\"has\nnewline\"", false},
	}
	for _, c := range cases {
		if got := fullMatch(t, String, c.s); got != c.want {
			t.Errorf("String on %q: got %v, want %v", c.s, got, c.want)
		}
	}
}

func TestWhitespace(t *testing.T) {
	if !fullMatch(t, Spaces, "   \t\n") {
		t.Error("Spaces rejected run of whitespace")
	}
	if fullMatch(t, Spaces, "") {
		t.Error("Spaces (one-or-more) accepted empty input")
	}
	if !fullMatch(t, AnySpaces, "") {
		t.Error("AnySpaces (zero-or-more) rejected empty input")
	}
}

func TestNumberKinds(t *testing.T) {
	for _, s := range []string{"0", "42", "3.14", "1e10", "0x1F", "0x1f"} {
		if !fullMatch(t, Number, s) {
			t.Errorf("Number rejected %q", s)
		}
	}
}

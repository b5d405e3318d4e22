package token

import (
	"strings"
)

type ScalarKind int

const (
	PlainScalar ScalarKind = iota
	NullScalar
	TrueScalar
	FalseScalar
	IntScalar
	DecimalScalar
	QuotedScalar
	EmptyArrayScalar
	EmptyObjectScalar
)

func (k ScalarKind) String() string {
	return map[ScalarKind]string{
		PlainScalar:       "PlainScalar",
		NullScalar:        "NullScalar",
		TrueScalar:        "TrueScalar",
		FalseScalar:       "FalseScalar",
		IntScalar:         "IntScalar",
		DecimalScalar:     "DecimalScalar",
		QuotedScalar:      "QuotedScalar",
		EmptyArrayScalar:  "EmptyArrayScalar",
		EmptyObjectScalar: "EmptyObjectScalar",
	}[k]
}

// ClassifyScalar decides what bare value text denotes. Anything not
// recognized is a PlainScalar, i.e. the text itself as a string.
func ClassifyScalar(text string) ScalarKind {
	switch text {
	case "true", "True", "TRUE":
		return TrueScalar
	case "false", "False", "FALSE":
		return FalseScalar
	case "null", "Null", "~", "":
		return NullScalar
	case "[]":
		return EmptyArrayScalar
	case "{}":
		return EmptyObjectScalar
	}
	switch {
	case isInt(text):
		return IntScalar
	case isDecimal(text):
		return DecimalScalar
	case IsQuoted(text):
		return QuotedScalar
	}
	return PlainScalar
}

// IsQuoted reports whether text starts and ends with the same quote
// character.
func IsQuoted(text string) bool {
	if len(text) < 2 {
		return false
	}
	q := text[0]
	return (q == '"' || q == '\'') && text[len(text)-1] == q
}

// IsQuotedScalar reports whether the whole of text is one quoted scalar,
// so that a colon inside it does not start a mapping entry. `"a: b"` is one
// scalar, `"a": "b"` is not.
func IsQuotedScalar(text string) bool {
	n := quotedPrefix(text)
	return n > 0 && n == len(text)
}

// quotedPrefix returns the length of the quoted scalar text starts with,
// closing quote included, or 0. Inside double quotes a backslash escapes
// the next byte, except that a final quote always closes.
func quotedPrefix(text string) int {
	if len(text) < 2 {
		return 0
	}
	q := text[0]
	if q != '"' && q != '\'' {
		return 0
	}
	for i := 1; i < len(text); i++ {
		switch {
		case q == '"' && text[i] == '\\':
			i++
		case text[i] == q:
			return i + 1
		}
	}
	if text[len(text)-1] == q {
		return len(text)
	}
	return 0
}

// Unquote strips the outer quotes of a quoted scalar. Escape sequences
// inside are left as they are.
func Unquote(text string) string {
	if !IsQuoted(text) {
		return text
	}
	return text[1 : len(text)-1]
}

// NeedsQuote reports whether s must be written quoted so that the line
// structure survives: it contains a newline, a colon or a '#', or starts
// with a space.
func NeedsQuote(s string) bool {
	return strings.ContainsAny(s, "\n\r:#") || strings.HasPrefix(s, " ")
}

// Ambiguous reports whether s written bare would read back as something
// other than the string s: a literal such as true, null, 12 or [], a
// quoted-looking or empty string, a sequence marker, or surrounding
// whitespace.
func Ambiguous(s string) bool {
	if ClassifyScalar(s) != PlainScalar {
		return true
	}
	if s == "-" || strings.HasPrefix(s, "- ") {
		return true
	}
	return strings.TrimSpace(s) != s
}

// Quote wraps s in double quotes. Embedded double quotes are written as \"
// and line breaks as \n and \r so the result stays on one line.
func Quote(s string) string {
	r := strings.NewReplacer(`"`, `\"`, "\n", `\n`, "\r", `\r`)
	return `"` + r.Replace(s) + `"`
}

func isInt(text string) bool {
	text = strings.TrimPrefix(text, "-")
	return text != "" && asciiDigits(text) == len(text)
}

func isDecimal(text string) bool {
	text = strings.TrimPrefix(text, "-")
	whole, frac, ok := strings.Cut(text, ".")
	if !ok || whole == "" || frac == "" {
		return false
	}
	return asciiDigits(whole) == len(whole) && asciiDigits(frac) == len(frac)
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

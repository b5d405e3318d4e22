package token

import (
	"strings"
)

type LineKind int

const (
	BlankLine LineKind = iota
	SeqItem
	MapEntry
	ScalarLine
)

func (k LineKind) String() string {
	switch k {
	case BlankLine:
		return "BlankLine"
	case SeqItem:
		return "SeqItem"
	case MapEntry:
		return "MapEntry"
	case ScalarLine:
		return "ScalarLine"
	default:
		return "<unknown line kind>"
	}
}

// Line is one source line.
type Line struct {
	Num    int    // 1-based line number
	Indent int    // count of leading blanks
	Text   string // content with surrounding whitespace trimmed
	Kind   LineKind
}

// Lex splits d into lines. "\n", "\r\n" and "\r" all end a line.
func Lex(d []byte) []Line {
	s := strings.ReplaceAll(string(d), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return LexLines(strings.Split(s, "\n"))
}

// LexLines classifies already split lines.
func LexLines(raw []string) []Line {
	res := make([]Line, len(raw))
	for i, ln := range raw {
		res[i] = NewLine(i+1, ln)
	}
	return res
}

func NewLine(num int, raw string) Line {
	text := strings.TrimSpace(raw)
	indent := len(raw) - len(strings.TrimLeft(raw, " \t"))
	if text == "" {
		// blank lines have no content to measure from
		indent = len(raw)
	}
	return Line{
		Num:    num,
		Indent: indent,
		Text:   text,
		Kind:   Classify(text),
	}
}

// Classify decides the kind of a trimmed line: a "- " prefix (or a lone
// "-") is a sequence item, otherwise any colon makes a mapping entry,
// except when the whole text is one quoted scalar.
func Classify(text string) LineKind {
	switch {
	case text == "":
		return BlankLine
	case text == "-" || strings.HasPrefix(text, "- "):
		return SeqItem
	case IsQuotedScalar(text):
		return ScalarLine
	case strings.Contains(text, ":"):
		return MapEntry
	default:
		return ScalarLine
	}
}

func (l Line) IsBlank() bool {
	return l.Kind == BlankLine
}

// Item returns the text following the marker of a sequence item line, and
// the column at which that text starts.
func (l Line) Item() (string, int) {
	after := l.Text[1:]
	rest := strings.TrimLeft(after, " \t")
	return rest, l.Indent + 1 + len(after) - len(rest)
}

// Entry splits a mapping line at its first colon into the trimmed key and
// value text. A key written as a quoted scalar directly followed by the
// colon is unquoted, and colons inside it do not split.
func (l Line) Entry() (key, val string, ok bool) {
	if n := quotedPrefix(l.Text); n > 0 {
		rest := strings.TrimLeft(l.Text[n:], " \t")
		if after, found := strings.CutPrefix(rest, ":"); found {
			return Unquote(l.Text[:n]), strings.TrimSpace(after), true
		}
	}
	key, val, ok = strings.Cut(l.Text, ":")
	return strings.TrimSpace(key), strings.TrimSpace(val), ok
}

// IsKeyValue reports whether the text after a sequence marker opens a
// mapping: "key:" or "key: value", not one quoted scalar.
func IsKeyValue(text string) bool {
	if text == "" || IsQuotedScalar(text) {
		return false
	}
	return strings.HasSuffix(text, ":") || strings.Contains(text, ": ")
}

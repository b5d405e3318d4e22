package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

func (o Op) Prefix() string {
	switch o {
	case OpDelete:
		return "-"
	case OpInsert:
		return "+"
	default:
		return " "
	}
}

// Edit is one line of a line diff.
type Edit struct {
	Op   Op
	Line string
}

// Lines diffs a and b line by line. A missing final newline is not a
// difference.
func Lines(a, b string) []Edit {
	a, b = withNL(a), withNL(b)
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(ca, cb, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Edit
	for i := range diffs {
		diff := &diffs[i]
		op := OpEqual
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = OpDelete
		case diffpatch.DiffInsert:
			op = OpInsert
		}
		for _, ln := range splitLines(diff.Text) {
			res = append(res, Edit{Op: op, Line: ln})
		}
	}
	return res
}

func withNL(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Changed reports whether any edit is not OpEqual.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != OpEqual {
			return true
		}
	}
	return false
}

// Unified renders the line diff of a and b with full context under a
// "---"/"+++" header. It is empty when a and b have the same lines.
func Unified(a, b, nameA, nameB string) string {
	edits := Lines(a, b)
	if !Changed(edits) {
		return ""
	}
	buf := &strings.Builder{}
	buf.WriteString("--- " + nameA + "\n")
	buf.WriteString("+++ " + nameB + "\n")
	for _, e := range edits {
		buf.WriteString(e.Op.Prefix() + e.Line + "\n")
	}
	return buf.String()
}

package parse

import (
	"errors"
	"testing"
)

type strictTest struct {
	in   string
	err  error
	line int
	col  int
}

func TestStrict(t *testing.T) {
	tests := []strictTest{
		{in: "a: 1\n  b: 2\n", err: ErrIndent, line: 2, col: 3},
		{in: "- x\n   - y\n", err: ErrIndent, line: 2, col: 4},
		{in: "a: 1\n- b\n", err: ErrSyntax, line: 2, col: 1},
		{in: "a: 1\njunk\n", err: ErrSyntax, line: 2, col: 1},
		{in: "- x\nb: 1\n", err: ErrSyntax, line: 2, col: 1},
		{in: "x\ny\n", err: ErrSyntax, line: 2, col: 1},
	}
	for _, st := range tests {
		_, err := ParseString(st.in, Strict(true))
		if !errors.Is(err, st.err) {
			t.Errorf("%q: got %v, want %v", st.in, err, st.err)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap ErrParse", st.in, err)
		}
		var pErr *Error
		if !errors.As(err, &pErr) {
			t.Errorf("%q: %T is not *Error", st.in, err)
			continue
		}
		if pErr.Line != st.line || pErr.Col != st.col {
			t.Errorf("%q: got %d:%d, want %d:%d", st.in, pErr.Line, pErr.Col, st.line, st.col)
		}
		// lenient parsing of the same input succeeds with a partial tree
		if _, err := ParseString(st.in); err != nil {
			t.Errorf("%q: lenient: %v", st.in, err)
		}
	}
}

func TestStrictAccepts(t *testing.T) {
	ins := []string{
		"name: demo\nfeatures:\n  - fast\n  - free\n",
		"- a: 1\n  b: 2\n- - x\n  - y\n",
		"\n\na: 1\n\nb: 2\n\n",
	}
	for _, in := range ins {
		if _, err := ParseString(in, Strict(true)); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

package patch

import (
	"errors"
	"testing"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/parse"
	"github.com/google/go-cmp/cmp"
)

func block(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return node
}

type applyTest struct {
	doc string
	ops string
	out string
}

func TestApplyJSON(t *testing.T) {
	tests := []applyTest{
		{
			doc: "name: demo\nport: 80\nzone: a",
			ops: `[{"op": "replace", "path": "/port", "value": 8080}]`,
			out: "name: demo\nport: 8080\nzone: a",
		},
		{
			doc: "name: demo\ntags:\n  - x",
			ops: `[{"op": "add", "path": "/tags/-", "value": "y"}, {"op": "add", "path": "/debug", "value": false}]`,
			out: "name: demo\ntags:\n  - x\n  - y\ndebug: false",
		},
		{
			doc: "z: 1\na: 2\nm:\n  y: 1\n  b: 2",
			ops: `[{"op": "remove", "path": "/a"}, {"op": "replace", "path": "/m/b", "value": 3}]`,
			out: "z: 1\nm:\n  y: 1\n  b: 3",
		},
	}
	for _, at := range tests {
		got, err := ApplyJSON(block(t, at.doc), []byte(at.ops))
		if err != nil {
			t.Errorf("%s: %v", at.ops, err)
			continue
		}
		if diff := cmp.Diff(at.out, encode.Serialize(got)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", at.ops, diff)
		}
	}
}

func TestApply(t *testing.T) {
	ops := block(t, "- op: remove\n  path: /b")
	got, err := Apply(block(t, "b: 1\nc: 2"), ops)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("c: 2", encode.Serialize(got)); diff != "" {
		t.Error(diff)
	}
	if _, err := Apply(got, block(t, "op: remove")); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v, want ErrPatch", err)
	}
}

func TestApplyErrors(t *testing.T) {
	doc := block(t, "a: 1")
	for _, ops := range []string{
		`{"op": "remove"}`,
		`[{"op": "add", "path": "/x/y", "value": 1}]`,
		`[{"op": "test", "path": "/a", "value": 2}]`,
	} {
		if _, err := ApplyJSON(doc, []byte(ops)); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: got %v, want ErrPatch", ops, err)
		}
	}
}

func TestMerge(t *testing.T) {
	doc := block(t, "name: demo\ndb:\n  host: localhost\n  port: 5432\nold: x")
	m := block(t, "db:\n  port: 6432\n  user: admin\nold: null")
	got, err := Merge(doc, m)
	if err != nil {
		t.Fatal(err)
	}
	want := "name: demo\ndb:\n  host: localhost\n  port: 6432\n  user: admin"
	if diff := cmp.Diff(want, encode.Serialize(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

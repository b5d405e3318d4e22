package eval

import (
	"errors"
	"testing"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/parse"
	"github.com/google/go-cmp/cmp"
)

const evalDoc = `name: demo
features:
  - fast
  - free
database:
  host: localhost
  port: 5432
getpath: shadowed
`

type evalTest struct {
	expr string
	out  string
}

func TestEval(t *testing.T) {
	doc, err := parse.ParseString(evalDoc)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("BLOCKCONV_TEST_ZONE", "eu")
	tests := []evalTest{
		{expr: `name`, out: "demo"},
		{expr: `database.port + 1`, out: "5433"},
		{expr: `doc.database.host`, out: "localhost"},
		{expr: `len(features)`, out: "2"},
		{expr: `features[1]`, out: "free"},
		{expr: `getpath("$.database.port") > 5000`, out: "true"},
		{expr: `listpath("$.features[*]")`, out: "- fast\n- free"},
		{expr: `getenv("BLOCKCONV_TEST_ZONE")`, out: "eu"},
		{expr: `doc.getpath`, out: "shadowed"},
		{expr: `{"a": 1}`, out: "a: 1"},
		{expr: `nil`, out: "null"},
	}
	for _, et := range tests {
		got, err := Eval(doc, et.expr)
		if err != nil {
			t.Errorf("%s: %v", et.expr, err)
			continue
		}
		if diff := cmp.Diff(et.out, encode.Serialize(got)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", et.expr, diff)
		}
	}
}

func TestEvalScalarDoc(t *testing.T) {
	got, err := Eval(ir.FromNumber(2), `doc * 3`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NumberType || got.Number != 6 {
		t.Errorf("got %s", encode.Serialize(got))
	}
}

func TestEvalErrors(t *testing.T) {
	doc, err := parse.ParseString(evalDoc)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range []string{`missing + 1`, `name +`, `getpath("$.nope")`} {
		if _, err := Eval(doc, e); !errors.Is(err, ErrEval) {
			t.Errorf("%s: got %v, want ErrEval", e, err)
		}
	}
}

package parse

import (
	"errors"
	"testing"

	"github.com/dehok/blockconv/ir"
)

// obj builds an object from alternating keys and values.
func obj(kvs ...any) *ir.Node {
	res := ir.EmptyObject()
	for i := 0; i < len(kvs); i += 2 {
		res.Set(kvs[i].(string), kvs[i+1].(*ir.Node))
	}
	return res
}

func arr(vs ...*ir.Node) *ir.Node {
	return ir.FromSlice(vs)
}

func str(s string) *ir.Node {
	return ir.FromString(s)
}

func num(f float64) *ir.Node {
	return ir.FromNumber(f)
}

func checkNode(t *testing.T, in string, got, want *ir.Node) {
	t.Helper()
	if ir.Equal(got, want) {
		return
	}
	g, _ := ir.ToJSON(got, "")
	w, _ := ir.ToJSON(want, "")
	t.Errorf("parse %q:\ngot  %s\nwant %s", in, g, w)
}

type parseTest struct {
	in  string
	out *ir.Node
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `name: demo
features:
  - fast
  - free
database:
  host: localhost
  port: 5432
`,
			out: obj(
				"name", str("demo"),
				"features", arr(str("fast"), str("free")),
				"database", obj("host", str("localhost"), "port", num(5432)),
			),
		},
		{
			in:  "flag: true",
			out: obj("flag", ir.FromBool(true)),
		},
		{
			in:  "parent:\nchild: 1",
			out: obj("parent", ir.Null(), "child", num(1)),
		},
		{
			in:  "parent:\n  child: 1",
			out: obj("parent", obj("child", num(1))),
		},
		{
			in:  "a:\n  b:\n    c:\n      d: x",
			out: obj("a", obj("b", obj("c", obj("d", str("x"))))),
		},
		{
			in:  "- a\n\n- b\n",
			out: arr(str("a"), str("b")),
		},
		{
			in:  "- 1\n    - junk\n- 2",
			out: arr(num(1), num(2)),
		},
		{
			in:  "- a: 1\n  b: 2\n- a: 3",
			out: arr(obj("a", num(1), "b", num(2)), obj("a", num(3))),
		},
		{
			in:  "- - 1\n  - 2\n- - 3",
			out: arr(arr(num(1), num(2)), arr(num(3))),
		},
		{
			in:  "-\n  x: 1\n-\n- z",
			out: arr(obj("x", num(1)), ir.Null(), str("z")),
		},
		{
			in:  "- a:\n    b: 1",
			out: arr(obj("a", obj("b", num(1)))),
		},
		{
			in:  "items: []\nmeta: {}",
			out: obj("items", ir.EmptyArray(), "meta", ir.EmptyObject()),
		},
		{
			in:  `msg: "a: b"`,
			out: obj("msg", str("a: b")),
		},
		{
			in:  `- "x: y"`,
			out: arr(str("x: y")),
		},
		{
			in:  "name: demo\n\"port\": \"8080\"",
			out: obj("name", str("demo"), "port", str("8080")),
		},
		{
			in:  `'a': 'b'`,
			out: obj("a", str("b")),
		},
		{
			in:  `"x:y": 1`,
			out: obj("x:y", num(1)),
		},
		{
			in:  "- \"k\": v\n  x: 1\n- k: 'v'",
			out: arr(obj("k", str("v"), "x", num(1)), obj("k", str("v"))),
		},
		{
			in:  "outer:\n  'inner': \"a: b\"",
			out: obj("outer", obj("inner", str("a: b"))),
		},
		{
			in:  `'single'`,
			out: str("single"),
		},
		{
			in:  "url: http://example.com",
			out: obj("url", str("http://example.com")),
		},
		{
			in:  "a: 1\n  b: 2\nc: 3",
			out: obj("a", num(1), "c", num(3)),
		},
		{
			in:  "a:\n\n  b: 2",
			out: obj("a", obj("b", num(2))),
		},
		{
			in:  "a: 1\na: 2",
			out: obj("a", num(2)),
		},
		{
			in:  "\n\n   x: 1\n   y: 2\n",
			out: obj("x", num(1), "y", num(2)),
		},
		{
			in:  "a: 1\r\nb: 2\r\n",
			out: obj("a", num(1), "b", num(2)),
		},
		{
			in:  "hello world",
			out: str("hello world"),
		},
		{
			in:  "-12",
			out: num(-12),
		},
		{
			in:  "",
			out: ir.Null(),
		},
		{
			in:  "\n  \n",
			out: ir.Null(),
		},
	}
	for _, pt := range pts {
		got, err := ParseString(pt.in)
		if err != nil {
			t.Errorf("parse %q: %v", pt.in, err)
			continue
		}
		checkNode(t, pt.in, got, pt.out)
	}
}

func TestParseLines(t *testing.T) {
	got, err := ParseLines([]string{"a:", "  - 1", "  - 2"})
	if err != nil {
		t.Fatal(err)
	}
	checkNode(t, "lines", got, obj("a", arr(num(1), num(2))))
}

func TestParseFormats(t *testing.T) {
	got, err := Parse([]byte(`{"b": 1, "a": [true, null]}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	checkNode(t, "json", got, obj("b", num(1), "a", arr(ir.FromBool(true), ir.Null())))

	got, err = Parse([]byte("b: 1\na:\n- x\n"), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	checkNode(t, "yaml", got, obj("b", num(1), "a", arr(str("x"))))

	_, err = Parse([]byte(`{"a": }`), ParseJSON())
	if !errors.Is(err, ir.ErrMalformedInput) {
		t.Errorf("got %v, want ErrMalformedInput", err)
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]int{}
	node, err := ParseString("a: 1\nb:\n  - x\n  - y\n", ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	b := node.Get("b")
	want := map[*ir.Node]int{
		node:          1,
		node.Get("a"): 1,
		b:             3,
		b.Values[0]:   3,
		b.Values[1]:   4,
	}
	for n, line := range want {
		if pos[n] != line {
			t.Errorf("%s: got line %d, want %d", n.Path(), pos[n], line)
		}
	}
}

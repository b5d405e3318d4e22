package ir

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromJSONOrder(t *testing.T) {
	node, err := FromJSON([]byte(`{"z": 1, "a": {"y": true, "b": null}, "m": [1.5, "s"]}`))
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for _, kv := range node.KeyVals() {
		keys = append(keys, kv.Key)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, keys); diff != "" {
		t.Error(diff)
	}
	d, err := ToJSON(node, "")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"z":1,"a":{"y":true,"b":null},"m":[1.5,"s"]}`, string(d)); diff != "" {
		t.Error(diff)
	}
}

func TestFromJSONDuplicate(t *testing.T) {
	node, err := FromJSON([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	d, _ := ToJSON(node, "")
	if string(d) != `{"a":3,"b":2}` {
		t.Errorf("got %s", d)
	}
}

type malformedTest struct {
	in   string
	line int
}

func TestFromJSONMalformed(t *testing.T) {
	tests := []malformedTest{
		{in: `{"a": }`, line: 1},
		{in: "{\n  \"a\": 1,\n  \"b\": ]\n}", line: 3},
		{in: `[1, 2`, line: 1},
		{in: "{\"a\": 1}\n\n{}", line: 3},
		{in: `[1,]`, line: 1},
		{in: ``, line: 1},
	}
	for _, mt := range tests {
		_, err := FromJSON([]byte(mt.in))
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%q: got %v, want ErrMalformedInput", mt.in, err)
			continue
		}
		var mErr *MalformedInputError
		if !errors.As(err, &mErr) {
			t.Errorf("%q: %T", mt.in, err)
			continue
		}
		if mErr.Line != mt.line || mErr.Col < 1 {
			t.Errorf("%q: got %d:%d, want line %d", mt.in, mErr.Line, mErr.Col, mt.line)
		}
	}
}

func TestToJSONIndent(t *testing.T) {
	node := EmptyObject().Set("a", FromSlice([]*Node{FromInt(1)})).Set("b", EmptyObject())
	d, err := ToJSON(node, "  ")
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1\n  ],\n  \"b\": {}\n}"
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Error(diff)
	}
}

func TestToJSONNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		node := EmptyArray().Append(FromNumber(f))
		if _, err := ToJSON(node, ""); !errors.Is(err, ErrEncoding) {
			t.Errorf("%v: got %v, want ErrEncoding", f, err)
		}
	}
}

func TestJSONStrings(t *testing.T) {
	node := FromString("<a & \"b\">\n")
	d, err := ToJSON(node, "")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`"<a & \"b\">\n"`, string(d)); diff != "" {
		t.Error(diff)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if back.String != node.String {
		t.Errorf("got %q", back.String)
	}
}

func TestNodeMarshaler(t *testing.T) {
	type doc struct {
		Name string `json:"name"`
		Body *Node  `json:"body"`
	}
	var v doc
	if err := json.Unmarshal([]byte(`{"name": "x", "body": {"k": [1, 2], "a": "b"}}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Body.Type != ObjectType || v.Body.Fields[0].String != "k" {
		t.Fatalf("got %+v", v.Body)
	}
	if v.Body.Values[0].Parent != v.Body {
		t.Error("children not attached to the unmarshaled node")
	}
	d, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"name":"x","body":{"k":[1,2],"a":"b"}}`, string(d)); diff != "" {
		t.Error(diff)
	}
}

package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetKeepsPosition(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromInt(3)},
	})
	var got []string
	for _, kv := range obj.KeyVals() {
		got = append(got, kv.Key+"="+kv.Val.Path())
	}
	if diff := cmp.Diff([]string{"a=$.a", "b=$.b"}, got); diff != "" {
		t.Error(diff)
	}
	if obj.Get("a").Number != 3 {
		t.Errorf("got %v", obj.Get("a").Number)
	}
	if obj.Get("missing") != nil {
		t.Error("missing key found")
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{"c": Null(), "a": Null(), "b": Null()})
	var got []string
	for _, f := range obj.Fields {
		got = append(got, f.String)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Error(diff)
	}
	if len(ToMap(obj)) != 3 || ToMap(FromInt(1)) != nil {
		t.Error("ToMap")
	}
}

func TestCloneDetached(t *testing.T) {
	arr := FromSlice([]*Node{EmptyObject().Set("k", FromString("v"))})
	c := arr.Values[0].Clone()
	if c.Parent != nil {
		t.Error("clone keeps parent")
	}
	if c.Values[0].Parent != c || c.Values[0].Root() != c {
		t.Error("clone children not attached to clone")
	}
	c.Values[0].String = "changed"
	if arr.Values[0].Values[0].String != "v" {
		t.Error("clone shares nodes")
	}
}

func TestIsCollection(t *testing.T) {
	tests := map[*Node]bool{
		EmptyArray():                   false,
		EmptyObject():                  false,
		FromSlice([]*Node{Null()}):     true,
		EmptyObject().Set("a", Null()): true,
		FromString("x"):                false,
	}
	for n, want := range tests {
		if got := n.IsCollection(); got != want {
			t.Errorf("%s: got %t", n.Type, got)
		}
	}
}

func TestTruth(t *testing.T) {
	for _, n := range []*Node{Null(), FromBool(false), FromInt(0), FromString(""), EmptyArray(), EmptyObject()} {
		if Truth(n) {
			t.Errorf("%s should be false", n.Type)
		}
	}
	for _, n := range []*Node{FromBool(true), FromInt(2), FromString("x"), FromSlice([]*Node{Null()})} {
		if !Truth(n) {
			t.Errorf("%s should be true", n.Type)
		}
	}
}

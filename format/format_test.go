package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"b", "block", "BLOCK"} {
		f, err := ParseFormat(in)
		if err != nil || f != BlockFormat {
			t.Errorf("ParseFormat(%q) = %v, %v", in, f, err)
		}
	}
	if f, err := ParseFormat("j"); err != nil || !f.IsJSON() {
		t.Errorf("got %v, %v", f, err)
	}
	if f, err := ParseFormat("yaml"); err != nil || !f.IsYAML() {
		t.Errorf("got %v, %v", f, err)
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s: got %s", f, g)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		f    Format
		ok   bool
	}{
		{"a/b.json", JSONFormat, true},
		{"x.YML", YAMLFormat, true},
		{"conf.block", BlockFormat, true},
		{"README", BlockFormat, false},
	}
	for _, tt := range tests {
		f, ok := FromPath(tt.path)
		if f != tt.f || ok != tt.ok {
			t.Errorf("FromPath(%q) = %s, %t", tt.path, f, ok)
		}
	}
	if BlockFormat.Other() != JSONFormat || YAMLFormat.Other() != BlockFormat {
		t.Error("Other")
	}
}

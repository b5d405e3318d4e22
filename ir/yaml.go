package ir

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dehok/blockconv/format"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes a single YAML document, keeping mapping key order.
// Non-string keys are converted to their text form.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, malformedYAML(err)
	}
	return FromAny(v)
}

// ToYAML encodes node as a YAML document.
func ToYAML(node *Node) ([]byte, error) {
	d, err := yaml.MarshalWithOptions(ToOrdered(node), yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return d, nil
}

var yamlErrPos = regexp.MustCompile(`^\[(\d+):(\d+)\]\s*(.*)$`)

func malformedYAML(err error) error {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	res := &MalformedInputError{Format: format.YAMLFormat, Msg: msg}
	if m := yamlErrPos.FindStringSubmatch(msg); m != nil {
		res.Line, _ = strconv.Atoi(m[1])
		res.Col, _ = strconv.Atoi(m[2])
		res.Msg = m[3]
	}
	return res
}

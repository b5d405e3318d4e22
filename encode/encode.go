package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/token"
)

var ErrEncoding = ir.ErrEncoding

type EncState struct {
	depth, indent  int
	quoteAmbiguous bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w in the format chosen by the options, block by
// default, followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	var out string
	switch es.format {
	case format.JSONFormat:
		d, err := ir.ToJSON(node, strings.Repeat(" ", es.indent))
		if err != nil {
			return err
		}
		out = string(d) + "\n"
	case format.YAMLFormat:
		d, err := ir.ToYAML(node)
		if err != nil {
			return err
		}
		out = string(d)
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
	default:
		out = serialize(node, es) + "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

// Serialize renders node as block format text without a trailing newline.
func Serialize(node *ir.Node, opts ...EncodeOption) string {
	return serialize(node, newEncState(opts))
}

func serialize(node *ir.Node, es *EncState) string {
	lines := es.render(node, es.depth*es.indent)
	buf := &strings.Builder{}
	for i, ln := range lines {
		if i != 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(" ", ln.col))
		buf.WriteString(ln.text)
	}
	return buf.String()
}

// line is one output line whose text starts at column col.
type line struct {
	col  int
	text string
}

func (es *EncState) render(node *ir.Node, col int) []line {
	switch node.Type {
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return []line{{col, es.color(ir.ArrayType, ValueColor, "[]")}}
		}
		return es.renderArray(node, col)
	case ir.ObjectType:
		if len(node.Values) == 0 {
			return []line{{col, es.color(ir.ObjectType, ValueColor, "{}")}}
		}
		return es.renderObject(node, col)
	}
	return []line{{col, es.scalar(node)}}
}

// renderArray writes each element after a "- " marker. Collections are
// laid out at the column following the marker and the marker is joined to
// their first line.
func (es *EncState) renderArray(node *ir.Node, col int) []line {
	marker := es.color(ir.ArrayType, SepColor, "-") + " "
	res := make([]line, 0, len(node.Values))
	for _, v := range node.Values {
		sub := es.render(v, col+2)
		sub[0] = line{col, marker + sub[0].text}
		res = append(res, sub...)
	}
	return res
}

func (es *EncState) renderObject(node *ir.Node, col int) []line {
	sep := es.color(ir.ObjectType, SepColor, ":")
	res := make([]line, 0, len(node.Values))
	for i, f := range node.Fields {
		v := node.Values[i]
		name := f.String
		if token.NeedsQuote(name) {
			name = token.Quote(name)
		}
		key := es.color(ir.ObjectType, FieldColor, name) + sep
		if v.IsCollection() {
			res = append(res, line{col, key})
			res = append(res, es.render(v, col+es.indent)...)
			continue
		}
		sub := es.render(v, col)
		res = append(res, line{col, key + " " + sub[0].text})
	}
	return res
}

func (es *EncState) scalar(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return es.color(ir.NullType, ValueColor, "null")
	case ir.BoolType:
		if node.Bool {
			return es.color(ir.BoolType, ValueColor, "true")
		}
		return es.color(ir.BoolType, ValueColor, "false")
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, token.FormatNumber(node.Number))
	}
	s := node.String
	if token.NeedsQuote(s) || (es.quoteAmbiguous && token.Ambiguous(s)) {
		return es.color(ir.StringType, QuotedColor, token.Quote(s))
	}
	return es.color(ir.StringType, ValueColor, s)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

package libdiff

import (
	"strconv"
	"strings"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "<unknown kind>"
	}
}

// Change is one structural difference. From is nil for Added and To is nil
// for Removed. Path locates the node in the first document, or in the
// second one for Added.
type Change struct {
	Path string
	Kind Kind
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return "+ " + c.Path + ": " + brief(c.To)
	case Removed:
		return "- " + c.Path + ": " + brief(c.From)
	default:
		return "~ " + c.Path + ": " + brief(c.From) + " -> " + brief(c.To)
	}
}

func brief(node *ir.Node) string {
	d, err := ir.ToJSON(node, "")
	if err != nil {
		return encode.Serialize(node)
	}
	return string(d)
}

// Nodes lists the differences between a and b in document order.
func Nodes(a, b *ir.Node) []Change {
	return diffNode(nil, a, b)
}

func diffNode(dst []Change, from, to *ir.Node) []Change {
	if from.Type != to.Type {
		return append(dst, Change{Path: from.Path(), Kind: Changed, From: from, To: to})
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(dst, from, to)
	case ir.ArrayType:
		return diffArray(dst, from, to)
	}
	if !ir.Equal(from, to) {
		dst = append(dst, Change{Path: from.Path(), Kind: Changed, From: from, To: to})
	}
	return dst
}

func diffObject(dst []Change, from, to *ir.Node) []Change {
	for i, f := range from.Fields {
		fv := from.Values[i]
		tv := to.Get(f.String)
		if tv == nil {
			dst = append(dst, Change{Path: fv.Path(), Kind: Removed, From: fv})
			continue
		}
		dst = diffNode(dst, fv, tv)
	}
	for i, f := range to.Fields {
		if from.Get(f.String) == nil {
			tv := to.Values[i]
			dst = append(dst, Change{Path: tv.Path(), Kind: Added, To: tv})
		}
	}
	return dst
}

// diffArray aligns the elements of from and to by a summary of each
// element, so that an insertion does not show up as a change of every
// following element. Aligned elements are compared recursively; a deleted
// run followed by an inserted one is paired up element by element.
func diffArray(dst []Change, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var deleted []*ir.Node
	flush := func() {
		for _, v := range deleted {
			dst = append(dst, Change{Path: v.Path(), Kind: Removed, From: v})
		}
		deleted = deleted[:0]
	}
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			deleted = append(deleted, from.Values[fi:fi+n]...)
			fi += n
		case diffpatch.DiffInsert:
			for _, tv := range to.Values[ti : ti+n] {
				if len(deleted) != 0 {
					dst = diffNode(dst, deleted[0], tv)
					deleted = deleted[1:]
					continue
				}
				dst = append(dst, Change{Path: tv.Path(), Kind: Added, To: tv})
			}
			ti += n
		case diffpatch.DiffEqual:
			flush()
			for j := 0; j < n; j++ {
				dst = diffNode(dst, from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		}
	}
	flush()
	return dst
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr identifies scalars by value and collections by type only, so
// that collections are always compared element-wise.
func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		return node.Type.String() + "-" + strconv.FormatFloat(node.Number, 'g', -1, 64)
	default:
		return node.Type.String()
	}
}

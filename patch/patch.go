package patch

import (
	"errors"
	"fmt"

	"github.com/dehok/blockconv/debug"
	"github.com/dehok/blockconv/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply applies the JSON patch ops, an array of operation objects, to doc.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	if ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: operations must be an array, got %s", ErrPatch, ops.Type)
	}
	d, err := ir.ToJSON(ops, "")
	if err != nil {
		return nil, err
	}
	return ApplyJSON(doc, d)
}

// ApplyJSON applies the JSON patch text ops to doc.
func ApplyJSON(doc *ir.Node, ops []byte) (*ir.Node, error) {
	jOps, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := ir.ToJSON(doc, "")
	if err != nil {
		return nil, err
	}
	if debug.Codec() {
		debug.Logf("patch: applying %d operations to %s\n", len(jOps), doc.Path())
	}
	jOut, err := jOps.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return decode(doc, jOut)
}

// Merge applies mergeDoc to doc as a merge patch: objects merge key by key,
// null values delete keys and anything else replaces.
func Merge(doc, mergeDoc *ir.Node) (*ir.Node, error) {
	d, err := ir.ToJSON(doc, "")
	if err != nil {
		return nil, err
	}
	m, err := ir.ToJSON(mergeDoc, "")
	if err != nil {
		return nil, err
	}
	jOut, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return decode(doc, jOut)
}

func decode(orig *ir.Node, d []byte) (*ir.Node, error) {
	res, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	return keepOrder(orig, res), nil
}

// keepOrder returns res with the keys of each object ordered as in the
// object at the same place in orig.
func keepOrder(orig, res *ir.Node) *ir.Node {
	switch {
	case orig.Type == ir.ObjectType && res.Type == ir.ObjectType:
		out := ir.EmptyObject()
		for _, kv := range orig.KeyVals() {
			if v := res.Get(kv.Key); v != nil {
				out.Set(kv.Key, keepOrder(kv.Val, v))
			}
		}
		for _, kv := range res.KeyVals() {
			if orig.Get(kv.Key) == nil {
				out.Set(kv.Key, kv.Val)
			}
		}
		return out
	case orig.Type == ir.ArrayType && res.Type == ir.ArrayType:
		out := ir.EmptyArray()
		for i, v := range res.Values {
			if i < len(orig.Values) {
				v = keepOrder(orig.Values[i], v)
			}
			out.Append(v)
		}
		return out
	}
	return res
}

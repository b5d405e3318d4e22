// Package ir provides the in-memory value tree shared by the block format
// parser and serializer and the JSON and YAML codecs.
//
// # Overview
//
// A document is a tree of *Node. Every node has a Type and keeps its
// payload in the field matching that type:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Number (float64; integers and decimals are not distinguished)
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields[i] is the string key of Values[i], in insertion order
//
// Object keys are unique. Setting a key that already exists replaces its
// value in place, keeping the position of the first occurrence.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("demo")},
//	    {Key: "port", Val: ir.FromInt(5432)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})
//
// Children record their Parent, ParentIndex and ParentField so that any
// node can report its location with Path().
//
// # Codecs
//
//	node, err := ir.FromJSON(data)   // ordered keys, positioned errors
//	d, err := ir.ToJSON(node, "  ")
//	node, err = ir.FromYAML(data)
//	d, err = ir.ToYAML(node)
//
// Invalid JSON or YAML fails with an error wrapping ErrMalformedInput; use
// errors.As with *MalformedInputError to get the line and column.
//
// # Thread Safety
//
// Nodes are not synchronized. Trees are built once and then only read;
// concurrent readers need no coordination.
package ir

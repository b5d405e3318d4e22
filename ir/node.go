package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Bool   bool
	Number float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromNumber(f float64) *Node {
	return &Node{Type: NumberType, Number: f}
}

func FromInt(v int64) *Node {
	return FromNumber(float64(v))
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// EmptyArray returns an array node with no elements.
func EmptyArray() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

// EmptyObject returns an object node with no fields.
func EmptyObject() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

func FromSlice(vs []*Node) *Node {
	res := EmptyArray()
	for _, v := range vs {
		res.Append(v)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs. A repeated key
// replaces the earlier value at the earlier position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := EmptyObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object from a map with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := EmptyObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Set(k, m[k])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f.String] = node.Values[i]
	}
	return res
}

// KeyVals returns the entries of an object node in order.
func (y *Node) KeyVals() []KeyVal {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f.String, Val: y.Values[i]}
	}
	return res
}

// Append adds v as the last element of the array y.
func (y *Node) Append(v *Node) *Node {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
	return y
}

// Set stores v under key in the object y. An existing key keeps its
// position and gets the new value.
func (y *Node) Set(key string, v *Node) *Node {
	v.Parent = y
	v.ParentField = key
	if i := y.index(key); i >= 0 {
		v.ParentIndex = i
		y.Values[i] = v
		return y
	}
	i := len(y.Fields)
	v.ParentIndex = i
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      key,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
	})
	y.Values = append(y.Values, v)
	return y
}

// Get returns the value stored under key, or nil.
func (y *Node) Get(key string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	if i := y.index(key); i >= 0 {
		return y.Values[i]
	}
	return nil
}

func (y *Node) index(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

// IsCollection reports whether y is an array or object with at least one
// element.
func (y *Node) IsCollection() bool {
	switch y.Type {
	case ArrayType, ObjectType:
		return len(y.Values) != 0
	}
	return false
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	switch y.Type {
	case ArrayType:
		res.Values = make([]*Node, 0, len(y.Values))
		for _, v := range y.Values {
			res.Append(v.Clone())
		}
	case ObjectType:
		res.Fields = make([]*Node, 0, len(y.Fields))
		res.Values = make([]*Node, 0, len(y.Values))
		for i, f := range y.Fields {
			res.Set(f.String, y.Values[i].Clone())
		}
	}
	return res
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

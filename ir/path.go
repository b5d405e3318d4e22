package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the location of y in its tree, e.g. "$.database.hosts[0]".
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + pathField(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// Path is one parsed segment of a path; segments are chained through Next.
// A segment with no Field, Index or IndexAll denotes the root.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + pathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		if frag[1:i] == "*" {
			parent.IndexAll = true
		} else {
			u64, err := strconv.ParseUint(frag[1:i], 10, 31)
			if err != nil {
				return err
			}
			index := int(u64)
			parent.Index = &index
		}
		rest = frag[i+1:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if rest == "" {
		return nil
	}
	parent.Next = &Path{}
	return parseFrag(rest, parent.Next)
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at path p. Wildcards are not allowed; a missing
// field or index is an error.
func (y *Node) GetPath(p string) (*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := y
	for x := yp; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return nil, fmt.Errorf("%w: wildcard in get %q", ErrPath, p)
		case x.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: %s: expected array, got %s", ErrPath, res.Path(), res.Type)
			}
			if *x.Index >= len(res.Values) {
				return nil, fmt.Errorf("%w: %s: index %d out of bounds (len %d)", ErrPath, res.Path(), *x.Index, len(res.Values))
			}
			res = res.Values[*x.Index]
		case x.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: %s: expected object, got %s", ErrPath, res.Path(), res.Type)
			}
			v := res.Get(*x.Field)
			if v == nil {
				return nil, fmt.Errorf("%w: %s: no field %q", ErrPath, res.Path(), *x.Field)
			}
			res = v
		}
	}
	return res, nil
}

// ListPath appends to dst every node matching p, which may contain [*].
// Missing fields and indices match nothing.
func (y *Node) ListPath(dst []*Node, p string) ([]*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y)
	}
	switch {
	case yp.IndexAll:
		if y.Type != ArrayType && y.Type != ObjectType {
			return dst
		}
		for _, v := range y.Values {
			dst = v.listPath(dst, yp.Next)
		}
	case yp.Index != nil:
		if y.Type == ArrayType && *yp.Index < len(y.Values) {
			dst = y.Values[*yp.Index].listPath(dst, yp.Next)
		}
	case yp.Field != nil:
		if v := y.Get(*yp.Field); v != nil {
			dst = v.listPath(dst, yp.Next)
		}
	default:
		dst = y.listPath(dst, yp.Next)
	}
	return dst
}

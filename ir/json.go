package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/token"
)

// FromJSON decodes a single JSON value keeping object key order. Repeated
// keys keep the last value. Invalid or trailing text fails with a
// *MalformedInputError.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec)
	if err != nil {
		return nil, malformedJSON(d, dec, err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected %v after top-level value", tok)
		}
		return nil, malformedJSON(d, dec, err)
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return FromAny(tok)
	}
	switch delim {
	case '{':
		res := EmptyObject()
		for dec.More() {
			kTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected object key, got %v", kTok)
			}
			v, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			res.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return res, nil
	case '[':
		res := EmptyArray()
		for dec.More() {
			v, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			res.Append(v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unexpected %v", delim)
	}
}

func malformedJSON(d []byte, dec *json.Decoder, err error) error {
	off := dec.InputOffset()
	msg := err.Error()
	var syn *json.SyntaxError
	switch {
	case errors.As(err, &syn):
		off = syn.Offset
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		off = int64(len(d))
		msg = "unexpected end of input"
	}
	line, col := lineCol(d, off)
	return &MalformedInputError{
		Format: format.JSONFormat,
		Offset: off,
		Line:   line,
		Col:    col,
		Msg:    msg,
	}
}

// ToJSON encodes node as JSON with object keys in order. A non-empty indent
// produces multi-line output indented by that string per level.
func ToJSON(node *Node, indent string) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encodeJSON(node, buf); err != nil {
		return nil, err
	}
	if indent == "" {
		return buf.Bytes(), nil
	}
	out := bytes.NewBuffer(nil)
	if err := json.Indent(out, buf.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return out.Bytes(), nil
}

func encodeJSON(node *Node, buf *bytes.Buffer) error {
	switch node.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		if node.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case NumberType:
		if math.IsNaN(node.Number) || math.IsInf(node.Number, 0) {
			return fmt.Errorf("%w: %s: %v is not representable in json", ErrEncoding, node.Path(), node.Number)
		}
		buf.WriteString(token.FormatNumber(node.Number))
	case StringType:
		return writeJSONString(buf, node.String)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(v, buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f.String); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encodeJSON(node.Values[i], buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	tmp := bytes.NewBuffer(nil)
	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return ToJSON(y, "")
}

func (y *Node) UnmarshalJSON(d []byte) error {
	n, err := FromJSON(d)
	if err != nil {
		return err
	}
	*y = *n
	y.Parent = nil
	for _, v := range y.Values {
		v.Parent = y
	}
	for _, f := range y.Fields {
		f.Parent = y
	}
	return nil
}

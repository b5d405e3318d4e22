package parse

import (
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/token"
)

// Scalar coerces bare value text to a leaf node.
func Scalar(text string) *ir.Node {
	switch token.ClassifyScalar(text) {
	case token.NullScalar:
		return ir.Null()
	case token.TrueScalar:
		return ir.FromBool(true)
	case token.FalseScalar:
		return ir.FromBool(false)
	case token.IntScalar, token.DecimalScalar:
		f, err := token.ParseNumber(text)
		if err != nil {
			return ir.FromString(text)
		}
		return ir.FromNumber(f)
	case token.QuotedScalar:
		return ir.FromString(token.Unquote(text))
	case token.EmptyArrayScalar:
		return ir.EmptyArray()
	case token.EmptyObjectScalar:
		return ir.EmptyObject()
	default:
		return ir.FromString(text)
	}
}

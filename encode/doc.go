// Package encode encodes IR nodes to block format text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("demo")},
//	    {Key: "port", Val: ir.FromInt(5432)},
//	})
//	text := encode.Serialize(node) // "name: demo\nport: 5432"
//
//	// Write with a trailing newline
//	err := encode.Encode(node, os.Stdout)
//
//	// Other formats and options
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//	text = encode.Serialize(node, encode.Indent(4), encode.QuoteAmbiguous(true))
//
// Serialize never fails. Strings are only quoted when they contain a
// newline, a colon or a '#', or start with a space, so a string such as
// "true" or "12" reads back as a bool or number unless QuoteAmbiguous is
// set.
//
// # Related Packages
//
//   - github.com/dehok/blockconv/ir - IR representation
//   - github.com/dehok/blockconv/parse - Parse text to IR
package encode

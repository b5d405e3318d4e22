// Package format names the document formats blockconv reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.Suffix()) // ".json"
//
// The block format is the indentation sensitive text format handled by
// the parse and encode packages. JSON and YAML are the interchange formats
// handled by the codecs in the ir package.
//
// # Related Packages
//
//   - github.com/dehok/blockconv/parse - Parse text to IR
//   - github.com/dehok/blockconv/encode - Encode IR to text
package format

// Package parse parses block format text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("name: demo\nport: 5432\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err = parse.ParseString("- a\n- b")
//
//	// Reject misindented or leftover lines instead of skipping them
//	node, err = parse.Parse(data, parse.Strict(true))
//
//	// JSON and YAML go through the ir codecs
//	node, err = parse.Parse(data, parse.ParseJSON())
//
// # Leniency
//
// By default the block parser never fails. Lines whose indentation does
// not fit the surrounding run are skipped, a key with nothing nested below
// it gets null, and text that is not a recognized literal becomes a
// string, as does a digit string too large for a float64. Callers that
// show results to people should treat an unexpectedly empty or null result
// as a sign of confusing input. Set BLOCKCONV_DEBUG_PARSE=1 to have skipped
// lines reported on stderr, or use Strict to get them as errors.
//
// # Related Packages
//
//   - github.com/dehok/blockconv/ir - IR representation
//   - github.com/dehok/blockconv/encode - Encode IR to text
//   - github.com/dehok/blockconv/token - Line and scalar rules
package parse

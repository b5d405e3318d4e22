// Package eval evaluates expressions against documents.
//
// Expressions use the expr language (github.com/expr-lang/expr). The whole
// document is bound to doc and, when the document is an object, each of its
// top-level keys is bound as a variable of its own:
//
//	node, err := eval.Eval(doc, `database.port + 1`)
//	node, err = eval.Eval(doc, `len(getpath("$.features"))`)
//
// Functions available in expressions:
//
//   - getpath(path): the value at a path such as "$.a.b[0]"
//   - listpath(path): the values matching a path with [*] wildcards
//   - getenv(name): an environment variable
package eval

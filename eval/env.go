package eval

import (
	"github.com/dehok/blockconv/ir"
)

type Env map[string]any

// DocVar names the variable bound to the whole document.
const DocVar = "doc"

// NewEnv binds doc and its top-level keys. Keys naming one of the
// expression functions are only reachable through doc.
func NewEnv(doc *ir.Node) Env {
	env := Env{}
	if doc.Type == ir.ObjectType {
		for _, kv := range doc.KeyVals() {
			if funcNames[kv.Key] {
				continue
			}
			env[kv.Key] = ir.ToAny(kv.Val)
		}
	}
	env[DocVar] = ir.ToAny(doc)
	return env
}

package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/ir"
)

// Logf writes to stderr. *ir.Node arguments are rendered in the block
// format and maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			args[i] = encode.Serialize(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

package encode

import (
	"bytes"
	"strings"

	"github.com/dehok/blockconv/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

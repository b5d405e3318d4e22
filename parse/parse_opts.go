package parse

import (
	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"
)

type parseOpts struct {
	format    format.Format
	strict    bool
	positions map[*ir.Node]int
}

type ParseOption func(*parseOpts)

func ParseBlock() ParseOption {
	return ParseFormat(format.BlockFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// Strict makes the block parser return an error wherever it would
// otherwise skip a line.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// ParsePositions records the 1-based source line of every node the block
// parser produces into m.
func ParsePositions(m map[*ir.Node]int) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

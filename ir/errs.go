package ir

import (
	"errors"
	"fmt"

	"github.com/dehok/blockconv/format"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrEncoding       = errors.New("encoding error")
	ErrPath           = errors.New("path error")
	ErrBadFormat      = format.ErrBadFormat
)

// MalformedInputError reports invalid JSON or YAML text. Line and Col are
// 1-based; they are 0 when the underlying decoder gave no position.
type MalformedInputError struct {
	Format format.Format
	Offset int64
	Line   int
	Col    int
	Msg    string
}

func (e *MalformedInputError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s: %s", ErrMalformedInput, e.Format, e.Msg)
	}
	return fmt.Sprintf("%s: %s: line %d, col %d: %s", ErrMalformedInput, e.Format, e.Line, e.Col, e.Msg)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// lineCol converts a byte offset in d to 1-based line and column.
func lineCol(d []byte, off int64) (int, int) {
	off = min(max(off, 0), int64(len(d)))
	line, col := 1, 1
	for _, c := range d[:off] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

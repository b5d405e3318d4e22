package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse  = errors.New("parse error")
	ErrIndent = fmt.Errorf("%w: bad indentation", ErrParse)
	ErrSyntax = fmt.Errorf("%w: unexpected line", ErrParse)
)

// Error is a strict mode failure at a 1-based line and column.
type Error struct {
	Line, Col int
	Msg       string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: line %d, col %d: %s", e.Err, e.Line, e.Col, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

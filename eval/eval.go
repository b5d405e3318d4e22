package eval

import (
	"errors"
	"fmt"

	"github.com/dehok/blockconv/debug"
	"github.com/dehok/blockconv/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Eval evaluates expression against doc and converts the result to a node.
func Eval(doc *ir.Node, expression string) (*ir.Node, error) {
	env := NewEnv(doc)
	opts := append(exprOpts(doc), expr.Env(env))
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, expression, err)
	}
	val, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q on %s gave %v\n", expression, doc.Path(), val)
	}
	res, err := ir.FromAny(val)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, expression, err)
	}
	return res, nil
}

package main

import (
	"fmt"

	"github.com/dehok/blockconv/eval"
	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	expression := args[0]
	falsy := false
	out := func(*input) format.Format { return cfg.outFormat(format.BlockFormat) }
	err = eachDoc(cfg.MainConfig, cc, args[1:], out, func(_ *input, node *ir.Node) (*ir.Node, error) {
		res, err := eval.Eval(node, expression)
		if err != nil {
			return nil, err
		}
		if !ir.Truth(res) {
			falsy = true
		}
		return res, nil
	})
	if err != nil {
		return err
	}
	if cfg.Test && falsy {
		return cli.ExitCodeErr(1)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	out := func(*input) format.Format { return cfg.outFormat(format.BlockFormat) }
	return eachDoc(cfg.MainConfig, cc, args[1:], out, func(_ *input, node *ir.Node) (*ir.Node, error) {
		return node.GetPath(path)
	})
}

package main

import (
	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	out := func(in *input) format.Format {
		return cfg.outFormat(in.format.Other())
	}
	return eachDoc(cfg.MainConfig, cc, args, out, func(_ *input, node *ir.Node) (*ir.Node, error) {
		return node, nil
	})
}

package main

import (
	"fmt"

	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/parse"
	"github.com/dehok/blockconv/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := readPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	out := func(in *input) format.Format { return cfg.outFormat(in.format) }
	return eachDoc(cfg.MainConfig, cc, args[1:], out, func(_ *input, node *ir.Node) (*ir.Node, error) {
		if cfg.Merge {
			return patch.Merge(node, p)
		}
		return patch.Apply(node, p)
	})
}

// readPatch reads a patch file. Without a known suffix it is taken to be
// JSON.
func readPatch(cfg *PatchConfig, cc *cli.Context, path string) (*ir.Node, error) {
	in, err := readInput(cfg.MainConfig, cc, path)
	if err != nil {
		return nil, err
	}
	f, ok := format.FromPath(path)
	if !ok {
		f = format.JSONFormat
	}
	node, err := parse.Parse(in.data, cfg.parseOpts(f)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", path, err)
	}
	return node, nil
}

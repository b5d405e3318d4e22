package main

import (
	"fmt"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/parse"
	"github.com/dehok/blockconv/samples"

	"github.com/scott-cotton/cli"
)

func sample(cfg *SampleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sample.Parse(cc, args)
	if err != nil {
		cfg.Sample.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch len(args) {
	case 0:
		for _, name := range samples.Names() {
			if _, err := fmt.Fprintln(cc.Out, name); err != nil {
				return err
			}
		}
		return nil
	case 1:
	default:
		return fmt.Errorf("%w: sample takes at most one name, got %v", cli.ErrUsage, args)
	}
	text, err := samples.Get(args[0], format.BlockFormat)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	node, err := parse.ParseString(text)
	if err != nil {
		return err
	}
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out, cfg.outFormat(format.BlockFormat))...)
}

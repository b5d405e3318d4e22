package main

import (
	"fmt"
	"io"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	differs, err := diffInputs(cfg, cc.Out, args[0], args[1], y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, nameA, nameB string, a, b *ir.Node) (bool, error) {
	changes := libdiff.Nodes(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	colors := cfg.colors(w)
	for _, c := range changes {
		ln := c.String()
		if colors {
			ln = changeColor(c.Kind)(ln)
		}
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return false, err
		}
	}
	if cfg.Brief {
		return true, nil
	}
	u := libdiff.Unified(encode.Serialize(a), encode.Serialize(b), nameA, nameB)
	if _, err := io.WriteString(w, u); err != nil {
		return false, err
	}
	return true, nil
}

func changeColor(k libdiff.Kind) func(string, ...any) string {
	var f func(string, ...any) string
	switch k {
	case libdiff.Added:
		f = color.GreenString
	case libdiff.Removed:
		f = color.RedString
	default:
		f = color.YellowString
	}
	return func(s string, _ ...any) string {
		return f("%s", s)
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/libdiff"
	"github.com/dehok/blockconv/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		in, err := readInput(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		node, err := in.parse(cfg.MainConfig)
		if err != nil {
			return err
		}
		ok, err := checkRoundTrip(cfg, cc.Out, file, node)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if !ok {
			failed++
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkRoundTrip serializes node to block text, parses the text and
// reports to w whether the value came back unchanged.
func checkRoundTrip(cfg *CheckConfig, w io.Writer, name string, node *ir.Node) (bool, error) {
	var opts []encode.EncodeOption
	if cfg.Indent > 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	opts = append(opts, encode.QuoteAmbiguous(cfg.Safe))
	text := encode.Serialize(node, opts...)
	back, err := parse.ParseString(text, cfg.parseOpts(format.BlockFormat)...)
	if err != nil {
		return false, err
	}
	if ir.Equal(node, back) {
		if !cfg.Quiet {
			_, err := fmt.Fprintf(w, "ok %s\n", name)
			return true, err
		}
		return true, nil
	}
	if _, err := fmt.Fprintf(w, "FAIL %s\n", name); err != nil {
		return false, err
	}
	u := libdiff.Unified(text, encode.Serialize(back, opts...), name, name+" (re-parsed)")
	if _, err := io.WriteString(w, u); err != nil {
		return false, err
	}
	for _, c := range libdiff.Nodes(node, back) {
		if _, err := fmt.Fprintf(w, "%s\n", c); err != nil {
			return false, err
		}
	}
	return false, nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/parse"

	"github.com/scott-cotton/cli"
)

// input is one document read from a file or stdin.
type input struct {
	name   string
	format format.Format
	data   []byte
}

func readInput(cfg *MainConfig, cc *cli.Context, path string) (*input, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return &input{name: path, format: cfg.inFormat(path), data: d}, nil
}

func (in *input) parse(cfg *MainConfig) (*ir.Node, error) {
	node, err := parse.Parse(in.data, cfg.parseOpts(in.format)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s as %s: %w", in.name, in.format, err)
	}
	return node, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	in, err := readInput(cfg, cc, path)
	if err != nil {
		return nil, err
	}
	return in.parse(cfg)
}

// eachDoc parses each file, or stdin when there are none, and writes what
// f makes of it in format out, separating documents by "---".
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, out func(*input) format.Format, f func(*input, *ir.Node) (*ir.Node, error)) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		in, err := readInput(cfg, cc, file)
		if err != nil {
			return err
		}
		node, err := in.parse(cfg)
		if err != nil {
			return err
		}
		res, err := f(in, node)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, out(in))...); err != nil {
			return fmt.Errorf("error encoding result for %s: %w", file, err)
		}
	}
	return nil
}

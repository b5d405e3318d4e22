package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dehok/blockconv/encode"
	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='fail on misindented or unexpected block lines'"`
	Safe   bool `cli:"name=safe desc='quote strings that would read back as another value'"`
	Indent int  `cli:"name=indent desc='block indentation per level (default 2)'"`

	B bool `cli:"name=b aliases=block desc='do i/o in block format'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// shorthand returns the format given by -b, -j or -y.
func (cfg *MainConfig) shorthand() (format.Format, bool) {
	switch {
	case cfg.B:
		return format.BlockFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return format.BlockFormat, false
}

// inFormat decides the format of the input named path: -I, then the
// shorthands, then the file suffix, then block.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.shorthand(); ok {
		return f
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.BlockFormat
}

// outFormat decides the output format: -O, then the shorthands, then def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.shorthand(); ok {
		return f
	}
	return def
}

func (cfg *MainConfig) parseOpts(f format.Format) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(f),
		parse.Strict(cfg.Strict),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.QuoteAmbiguous(cfg.Safe),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors reports whether output to w is colored: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Brief bool `cli:"name=brief desc='only list structural changes'"`

	Diff *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Test bool `cli:"name=test desc='exit with status 1 unless every result is true'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as a merge patch'"`

	Patch *cli.Command
}

type SampleConfig struct {
	*MainConfig

	Sample *cli.Command
}

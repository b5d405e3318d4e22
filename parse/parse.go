package parse

import (
	"strings"

	"github.com/dehok/blockconv/debug"
	"github.com/dehok/blockconv/format"
	"github.com/dehok/blockconv/ir"
	"github.com/dehok/blockconv/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	switch pOpts.format {
	case format.JSONFormat:
		return ir.FromJSON(d)
	case format.YAMLFormat:
		return ir.FromYAML(d)
	}
	return parseBlockLines(token.Lex(d), pOpts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseLines parses already split lines. Lines must not contain line
// breaks.
func ParseLines(lines []string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	if !pOpts.format.IsBlock() {
		return Parse([]byte(strings.Join(lines, "\n")), opts...)
	}
	return parseBlockLines(token.LexLines(lines), pOpts)
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.BlockFormat}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

type parser struct {
	lines []token.Line
	// lines re-read from the column after a sequence marker
	over map[int]token.Line
	opts *parseOpts
}

func parseBlockLines(lines []token.Line, opts *parseOpts) (*ir.Node, error) {
	p := &parser{lines: lines, over: map[int]token.Line{}, opts: opts}
	i := p.nextNonBlank(0)
	if i == len(lines) {
		return ir.Null(), nil
	}
	res, err := p.parseBlock(&i, lines[i].Indent)
	if err != nil {
		return nil, err
	}
	if j := p.nextNonBlank(i); j < len(lines) {
		if err := p.skip(j, ErrSyntax, "content after top level value"); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (p *parser) line(i int) token.Line {
	if ln, ok := p.over[i]; ok {
		return ln
	}
	return p.lines[i]
}

func (p *parser) nextNonBlank(i int) int {
	for i < len(p.lines) && p.line(i).IsBlank() {
		i++
	}
	return i
}

// parseBlock parses the run of lines starting at *pi whose indentation is
// base, leaving *pi at the first line not consumed.
func (p *parser) parseBlock(pi *int, base int) (*ir.Node, error) {
	if *pi >= len(p.lines) {
		return ir.Null(), nil
	}
	ln := p.line(*pi)
	switch ln.Kind {
	case token.SeqItem:
		return p.parseSeq(pi, base)
	case token.MapEntry:
		return p.parseMap(pi, base)
	}
	res := Scalar(ln.Text)
	p.track(res, ln)
	*pi++
	return res, nil
}

func (p *parser) parseSeq(pi *int, base int) (*ir.Node, error) {
	res := ir.EmptyArray()
	p.track(res, p.line(*pi))
	for *pi < len(p.lines) {
		ln := p.line(*pi)
		if ln.IsBlank() {
			*pi++
			continue
		}
		if ln.Indent < base {
			break
		}
		if ln.Indent != base {
			if err := p.skip(*pi, ErrIndent, "sequence item not aligned"); err != nil {
				return nil, err
			}
			*pi++
			continue
		}
		if ln.Kind != token.SeqItem {
			break
		}
		item, err := p.parseItem(pi, ln)
		if err != nil {
			return nil, err
		}
		res.Append(item)
	}
	return res, nil
}

// parseItem parses the value of the sequence item at *pi.
func (p *parser) parseItem(pi *int, ln token.Line) (*ir.Node, error) {
	rest, col := ln.Item()
	switch {
	case rest == "":
		j := p.nextNonBlank(*pi + 1)
		if j < len(p.lines) && p.line(j).Indent > ln.Indent {
			*pi = j
			return p.parseBlock(pi, p.line(j).Indent)
		}
		res := ir.Null()
		p.track(res, ln)
		*pi++
		return res, nil
	case token.IsKeyValue(rest) || token.Classify(rest) == token.SeqItem:
		i := *pi
		p.over[i] = token.Line{
			Num:    ln.Num,
			Indent: col,
			Text:   rest,
			Kind:   token.Classify(rest),
		}
		defer delete(p.over, i)
		return p.parseBlock(pi, col)
	}
	res := Scalar(rest)
	p.track(res, ln)
	*pi++
	return res, nil
}

func (p *parser) parseMap(pi *int, base int) (*ir.Node, error) {
	res := ir.EmptyObject()
	p.track(res, p.line(*pi))
	for *pi < len(p.lines) {
		ln := p.line(*pi)
		if ln.IsBlank() {
			*pi++
			continue
		}
		if ln.Indent < base {
			break
		}
		if ln.Indent > base {
			if err := p.skip(*pi, ErrIndent, "line deeper than mapping"); err != nil {
				return nil, err
			}
			*pi++
			continue
		}
		if ln.Kind != token.MapEntry {
			if err := p.skip(*pi, ErrSyntax, "expected key: value"); err != nil {
				return nil, err
			}
			*pi++
			continue
		}
		key, val, _ := ln.Entry()
		if val != "" {
			v := Scalar(val)
			p.track(v, ln)
			p.set(res, key, v, ln)
			*pi++
			continue
		}
		j := p.nextNonBlank(*pi + 1)
		if j < len(p.lines) && p.line(j).Indent > base {
			*pi = j
			v, err := p.parseBlock(pi, p.line(j).Indent)
			if err != nil {
				return nil, err
			}
			p.set(res, key, v, ln)
			continue
		}
		v := ir.Null()
		p.track(v, ln)
		p.set(res, key, v, ln)
		*pi++
	}
	return res, nil
}

func (p *parser) set(obj *ir.Node, key string, v *ir.Node, ln token.Line) {
	if debug.Parse() && obj.Get(key) != nil {
		debug.Logf("parse: line %d: key %q repeated, keeping last value\n", ln.Num, key)
	}
	obj.Set(key, v)
}

// skip reports the line at i as ignored. In strict mode it is an error.
func (p *parser) skip(i int, kind error, msg string) error {
	ln := p.line(i)
	if p.opts.strict {
		return &Error{Line: ln.Num, Col: ln.Indent + 1, Msg: msg, Err: kind}
	}
	if debug.Parse() {
		debug.Logf("parse: line %d: skipping %q: %s\n", ln.Num, ln.Text, msg)
	}
	return nil
}

func (p *parser) track(node *ir.Node, ln token.Line) {
	if p.opts.positions != nil {
		p.opts.positions[node] = ln.Num
	}
}

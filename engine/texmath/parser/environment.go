package parser

import (
	"fmt"

	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/scanner"
)

// environment parses \begin{name}…\end{name}, starting after \begin.
func (p *Parser) environment(begin scanner.Token) (atom.Atom, error) {
	name, err := p.envName(begin)
	if err != nil {
		return nil, err
	}
	p.envs.Push(name)
	defer p.envs.Pop()
	if !atom.IsTabular(name) {
		p.enter(DisplayMode)
		defer p.leave()
		body, err := p.parseSequence(stopAt(scanner.End), endOf(name))
		if err != nil {
			return nil, err
		}
		if err = p.endEnvironment(p.sc.Next()); err != nil {
			return nil, err
		}
		return &atom.Group{Mode: atom.Display, Env: name, Body: body}, nil
	}
	if atom.IsAlignEnv(name) {
		p.enter(AlignMode)
		defer p.leave()
	}
	rows := [][][]atom.Atom{}
	row := [][]atom.Atom{}
	for {
		cell, err := p.parseSequence(stopAt(scanner.AlignSep, scanner.RowSep, scanner.End), endOf(name))
		if err != nil {
			return nil, err
		}
		row = append(row, cell)
		sep := p.sc.Next()
		if sep.Kind == scanner.AlignSep {
			continue
		}
		if sep.Kind == scanner.RowSep {
			rows = append(rows, row)
			row = [][]atom.Atom{}
			continue
		}
		if err = p.endEnvironment(sep); err != nil {
			return nil, err
		}
		if len(rows) == 0 || len(row) > 1 || len(row[0]) > 0 {
			rows = append(rows, row)
		} // else drop the empty row after a final \\
		break
	}
	tracer().Debugf("environment %s with %d rows", name, len(rows))
	return &atom.Matrix{Env: name, Rows: rows}, nil
}

// envName reads {name} after \begin or \end.
func (p *Parser) envName(cmd scanner.Token) (string, error) {
	name, tok, err := p.braced(cmd)
	if err != nil {
		return "", err
	}
	if !atom.IsEnvironment(name) {
		return "", p.errorf(ErrUnknownEnvironment, tok, "unknown environment %q", name)
	}
	return name, nil
}

// endEnvironment checks \end{name} against the innermost open environment.
func (p *Parser) endEnvironment(end scanner.Token) error {
	name, err := p.envName(end)
	if err != nil {
		return err
	}
	open, _ := p.envs.Peek()
	if name != open {
		return p.errorf(ErrMismatchedEnvironment, end, "%s does not match \\begin{%s}", endOf(name), open)
	}
	return nil
}

func endOf(name string) string {
	return fmt.Sprintf(`\end{%s}`, name)
}

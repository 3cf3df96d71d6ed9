package parser

import (
	"strings"
	"sync"

	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/scanner"
	"github.com/npillmayer/uax/grapheme"
)

var graphemesOnce sync.Once

// parseText parses running text until a stop token, which is left unconsumed.
// White space is significant in text mode.
func (p *Parser) parseText(stop stopper, expected string) ([]atom.Atom, error) {
	seq := []atom.Atom{}
	space := func() {
		if len(seq) > 0 {
			if _, ok := seq[len(seq)-1].(*atom.Space); ok {
				return
			}
		}
		seq = append(seq, &atom.Space{})
	}
	for {
		tok := p.sc.PeekRaw()
		if stop(tok) {
			return seq, nil
		}
		switch tok.Kind {
		case scanner.EOF:
			return nil, p.errorf(ErrExpected, tok, "expected %s", expected)
		case scanner.Space:
			p.sc.NextRaw()
			space()
		case scanner.Char:
			seq = append(seq, p.textRun()...)
		case scanner.MathShift, scanner.DisplayOpen:
			p.sc.NextRaw()
			g, err := p.mathGroup(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, g)
		case scanner.Begin:
			p.sc.NextRaw()
			g, err := p.displayEnvironment(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, g)
		case scanner.GroupOpen:
			p.sc.NextRaw()
			inner, err := p.parseText(stopAt(scanner.GroupClose), "}")
			if err != nil {
				return nil, err
			}
			p.sc.NextRaw()
			seq = append(seq, inner...)
		case scanner.Command:
			p.sc.NextRaw()
			a, err := p.textCommand(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, a)
		case scanner.RowSep:
			p.sc.NextRaw()
			tracer().Debugf("ignoring line break in text mode at %v", tok)
			space()
		default:
			return nil, p.errorf(ErrExpected, tok, "unexpected %s in text mode, expected %s", tok.Kind, expected)
		}
	}
}

// textRun reads consecutive characters and splits them into grapheme
// clusters, one text symbol each.
func (p *Parser) textRun() []atom.Atom {
	var sb strings.Builder
	for p.sc.PeekRaw().Kind == scanner.Char {
		sb.WriteString(p.sc.NextRaw().Text)
	}
	graphemesOnce.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(sb.String())
	run := make([]atom.Atom, 0, gstr.Len())
	for i := 0; i < gstr.Len(); i++ {
		run = append(run, textSymbol(gstr.Nth(i)))
	}
	return run
}

func textSymbol(s string) *atom.Symbol {
	return &atom.Symbol{Class: atom.Ord, Text: s, Fonts: mainFont, Flags: atom.Text}
}

var textEscapes = map[string]bool{"{": true, "}": true, "$": true, "&": true, "%": true, "#": true, "_": true}

func (p *Parser) textCommand(tok scanner.Token) (atom.Atom, error) {
	if textEscapes[tok.Text] {
		return textSymbol(tok.Text), nil
	}
	if tok.Text == "ref" {
		return p.reference(tok)
	}
	if cmd, ok := atom.LookupCommand(tok.Text); ok && cmd.Class == atom.SpaceCmd {
		return &atom.Space{Mu: cmd.Mu, Source: tok.Source()}, nil
	}
	return nil, p.unknownCommand(tok)
}

// mathGroup parses $…$ or \[…\] from text mode, starting after the opening token.
func (p *Parser) mathGroup(open scanner.Token) (*atom.Group, error) {
	mode, closing, expected := InlineMode, scanner.MathShift, "$"
	if open.Kind == scanner.DisplayOpen {
		mode, closing, expected = DisplayMode, scanner.DisplayClose, `\]`
	}
	p.enter(mode)
	defer p.leave()
	body, err := p.parseSequence(stopAt(closing), expected)
	if err != nil {
		return nil, err
	}
	p.sc.Next()
	g := &atom.Group{Mode: atom.Inline, Body: body}
	if mode == DisplayMode {
		g.Mode = atom.Display
	}
	return g, nil
}

// displayEnvironment parses a display environment started from text mode.
func (p *Parser) displayEnvironment(begin scanner.Token) (*atom.Group, error) {
	next := p.sc.Peek()
	env, err := p.environment(begin)
	if err != nil {
		return nil, err
	}
	switch a := env.(type) {
	case *atom.Group:
		return a, nil
	case *atom.Matrix:
		if atom.IsDisplayEnv(a.Env) {
			return &atom.Group{Mode: atom.Display, Env: a.Env, Body: []atom.Atom{a}}, nil
		}
		return nil, p.errorf(ErrUnknownEnvironment, next, "environment %s needs math mode", a.Env)
	}
	return nil, p.errorf(ErrExpected, next, "unexpected environment")
}

package parser

import (
	"fmt"
	"unicode"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/scanner"
)

// Mode is a parser mode.
type Mode int8

const (
	TextMode    Mode = iota // running text
	InlineMode              // math between $…$
	DisplayMode             // display math
	AlignMode               // display math with aligned equations
)

func (m Mode) String() string {
	switch m {
	case TextMode:
		return "text"
	case InlineMode:
		return "inline"
	case DisplayMode:
		return "display"
	case AlignMode:
		return "align"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Parser reads atoms from a token stream. A parser is used for a single
// source text.
type Parser struct {
	sc    *scanner.Scanner
	modes *arraystack.Stack // of Mode
	envs  *arraystack.Stack // of environment names
}

func newParser(src string, mode Mode) *Parser {
	p := &Parser{
		sc:    scanner.New(src),
		modes: arraystack.New(),
		envs:  arraystack.New(),
	}
	p.modes.Push(mode)
	return p
}

// ParseMath parses a formula in math mode, as if enclosed in $…$.
func ParseMath(src string) (*atom.Tree, error) {
	p := newParser(src, InlineMode)
	seq, err := p.parseSequence(stopAt(scanner.EOF), "end of input")
	if err != nil {
		return nil, err
	}
	return atom.NewTree(seq), nil
}

// ParseDocument parses running text with embedded math.
func ParseDocument(src string) (*atom.Tree, error) {
	p := newParser(src, TextMode)
	seq, err := p.parseText(stopAt(scanner.EOF), "end of input")
	if err != nil {
		return nil, err
	}
	if p.mode() != TextMode || !p.envs.Empty() {
		return nil, p.errorf(ErrExpected, p.sc.Peek(), "unexpected end of input in %s mode", p.mode())
	}
	return atom.NewTree(seq), nil
}

func (p *Parser) mode() Mode {
	m, ok := p.modes.Peek()
	if !ok {
		return TextMode
	}
	return m.(Mode)
}

func (p *Parser) enter(m Mode) {
	tracer().Debugf("%s → %s", p.mode(), m)
	p.modes.Push(m)
}

func (p *Parser) leave() {
	p.modes.Pop()
}

// stopper tells a sequence parser where to stop, without consuming the token.
type stopper func(scanner.Token) bool

func stopAt(kinds ...scanner.Kind) stopper {
	return func(tok scanner.Token) bool {
		for _, k := range kinds {
			if tok.Kind == k {
				return true
			}
		}
		return false
	}
}

// parseSequence parses math atoms until a stop token, which is left unconsumed.
// The result is never nil.
func (p *Parser) parseSequence(stop stopper, expected string) ([]atom.Atom, error) {
	seq := []atom.Atom{}
	for {
		tok := p.sc.Peek()
		if stop(tok) {
			return seq, nil
		}
		if tok.Kind == scanner.EOF {
			return nil, p.errorf(ErrExpected, tok, "expected %s", expected)
		}
		var err error
		if seq, err = p.parseAtom(seq, expected); err != nil {
			return nil, err
		}
	}
}

// parseAtom consumes the next token and appends the atom it starts to seq.
// Scripts modify the last atom of seq instead.
func (p *Parser) parseAtom(seq []atom.Atom, expected string) ([]atom.Atom, error) {
	tok := p.sc.Next()
	switch tok.Kind {
	case scanner.Char:
		return append(seq, mathChar(tok, seq)), nil
	case scanner.Command:
		return p.command(tok, seq)
	case scanner.GroupOpen:
		body, err := p.parseSequence(stopAt(scanner.GroupClose), "}")
		if err != nil {
			return nil, err
		}
		p.sc.Next()
		return append(seq, &atom.Group{Mode: atom.Braced, Body: body}), nil
	case scanner.Sup, scanner.Sub:
		return p.script(tok, seq)
	case scanner.Left:
		lr, err := p.leftRight(tok)
		if err != nil {
			return nil, err
		}
		return append(seq, lr), nil
	case scanner.Begin:
		env, err := p.environment(tok)
		if err != nil {
			return nil, err
		}
		return append(seq, env), nil
	}
	return nil, p.errorf(ErrExpected, tok, "unexpected %s, expected %s", tok.Kind, expected)
}

var mainFont = []string{atom.MainRegular}

var mathChars = map[rune]atom.Kind{
	'=': atom.Rel, '<': atom.Rel, '>': atom.Rel, ':': atom.Rel,
	',': atom.Punct, ';': atom.Punct,
	'(': atom.Open, '[': atom.Open,
	')': atom.Close, ']': atom.Close, '!': atom.Close, '?': atom.Close,
	'*': atom.Bin,
}

// mathChar classifies a single character in math mode.
func mathChar(tok scanner.Token, seq []atom.Atom) *atom.Symbol {
	r := []rune(tok.Text)[0]
	switch {
	case r == '+' || r == '-':
		sym := &atom.Symbol{Class: atom.Bin, Text: "+", Fonts: mainFont}
		if r == '-' {
			sym.Text, sym.Source = "−", "-"
		}
		if unarySign(seq) {
			sym.Class = atom.Ord
		}
		return sym
	case unicode.IsLetter(r):
		return &atom.Symbol{Class: atom.Ord, Text: tok.Text, Fonts: []string{atom.MathItalic}, Flags: atom.Italic}
	case unicode.IsDigit(r):
		return &atom.Symbol{Class: atom.Ord, Text: tok.Text, Fonts: mainFont}
	}
	return &atom.Symbol{Class: mathChars[r], Text: tok.Text, Fonts: mainFont}
}

// unarySign checks if a sign following seq is unary, i.e., if there is
// no previous atom or it is of kind bin, op, rel, open or punct. Explicit
// spaces are skipped.
func unarySign(seq []atom.Atom) bool {
	for i := len(seq) - 1; i >= 0; i-- {
		if _, ok := seq[i].(*atom.Space); ok {
			continue
		}
		switch seq[i].Kind() {
		case atom.Bin, atom.Op, atom.Rel, atom.Open, atom.Punct:
			return true
		}
		return false
	}
	return true
}

func (p *Parser) command(tok scanner.Token, seq []atom.Atom) ([]atom.Atom, error) {
	cmd, ok := atom.LookupCommand(tok.Text)
	if !ok {
		return nil, p.unknownCommand(tok)
	}
	tracer().Debugf("command %s", tok.Source())
	switch cmd.Class {
	case atom.SymbolCmd:
		return append(seq, cmd.NewSymbol()), nil
	case atom.SpaceCmd:
		return append(seq, &atom.Space{Mu: cmd.Mu, Source: tok.Source()}), nil
	case atom.AccentCmd:
		body, err := p.argument(tok)
		if err != nil {
			return nil, err
		}
		acc := []rune(cmd.Text)[0]
		return append(seq, &atom.Accent{Body: body, Accent: acc, Source: tok.Source()}), nil
	}
	return p.structure(cmd, tok, seq)
}

func (p *Parser) unknownCommand(tok scanner.Token) error {
	return wrap(&Error{
		Kind:        ErrUnknownCommand,
		Token:       tok,
		Pos:         tok.Pos,
		Msg:         fmt.Sprintf("unknown command %s", tok.Source()),
		Suggestions: atom.Suggest(tok.Text, 3),
	})
}

func (p *Parser) structure(cmd *atom.Command, tok scanner.Token, seq []atom.Atom) ([]atom.Atom, error) {
	switch cmd.Name {
	case "text":
		if next := p.sc.Peek(); next.Kind != scanner.GroupOpen {
			return nil, p.errorf(ErrMissingArgument, next, "missing argument for %s", tok.Source())
		}
		p.sc.Next()
		p.enter(TextMode)
		body, err := p.parseText(stopAt(scanner.GroupClose), "}")
		p.leave()
		if err != nil {
			return nil, err
		}
		p.sc.NextRaw()
		return append(seq, &atom.Group{Mode: atom.TextRun, Body: body}), nil
	case "rule":
		w, err := p.dimension(tok)
		if err != nil {
			return nil, err
		}
		h, err := p.dimension(tok)
		if err != nil {
			return nil, err
		}
		return append(seq, &atom.Rule{Width: w, Thickness: h}), nil
	case "ref":
		ref, err := p.reference(tok)
		if err != nil {
			return nil, err
		}
		return append(seq, ref), nil
	}
	args := make([][]atom.Atom, cmd.Arity)
	for i := range args {
		arg, err := p.argument(tok)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	switch cmd.Name {
	case "frac":
		return append(seq, &atom.Fraction{Num: args[0], Den: args[1]}), nil
	case "sqrt":
		return append(seq, &atom.Sqrt{Radicand: args[0]}), nil
	case "overline":
		return append(seq, &atom.Overline{Body: args[0]}), nil
	case "mathbf", "mathrm":
		setFont(args[0], cmd.Name == "mathbf")
		if len(args[0]) < 2 {
			return append(seq, args[0]...), nil
		}
		return append(seq, &atom.Group{Mode: atom.Braced, Env: cmd.Name, Body: args[0]}), nil
	}
	return nil, p.unknownCommand(tok)
}

// argument parses a braced group or, lacking a brace, a single token.
// The result is never nil.
func (p *Parser) argument(cmd scanner.Token) ([]atom.Atom, error) {
	next := p.sc.Peek()
	switch next.Kind {
	case scanner.GroupOpen:
		p.sc.Next()
		body, err := p.parseSequence(stopAt(scanner.GroupClose), "}")
		if err != nil {
			return nil, err
		}
		p.sc.Next()
		return body, nil
	case scanner.EOF, scanner.GroupClose, scanner.Right, scanner.End, scanner.AlignSep,
		scanner.RowSep, scanner.MathShift, scanner.DisplayClose:
		return nil, p.errorf(ErrMissingArgument, next, "missing argument for %s", cmd.Source())
	}
	return p.parseAtom([]atom.Atom{}, "argument")
}

// braced reads the raw source text of a braced argument, e.g. a label.
func (p *Parser) braced(cmd scanner.Token) (string, scanner.Token, error) {
	open := p.sc.Next()
	if open.Kind != scanner.GroupOpen {
		return "", open, p.errorf(ErrMissingArgument, open, "missing argument for %s", cmd.Source())
	}
	s := ""
	for {
		tok := p.sc.Next()
		switch tok.Kind {
		case scanner.GroupClose:
			return s, open, nil
		case scanner.Char, scanner.Command:
			s += tok.Source()
		default:
			return "", tok, p.errorf(ErrExpected, tok, "unexpected %s, expected }", tok.Kind)
		}
	}
}

func (p *Parser) dimension(cmd scanner.Token) (dimen.Dimen, error) {
	s, tok, err := p.braced(cmd)
	if err != nil {
		return 0, err
	}
	d, pcnt, err := dimen.ParseDimen(s)
	if err != nil || pcnt {
		return 0, p.errorf(ErrBadDimension, tok, "bad dimension %q for %s", s, cmd.Source())
	}
	return d, nil
}

func (p *Parser) reference(cmd scanner.Token) (*atom.Symbol, error) {
	label, tok, err := p.braced(cmd)
	if err != nil {
		return nil, err
	}
	if label == "" {
		return nil, p.errorf(ErrMissingArgument, tok, "empty label for %s", cmd.Source())
	}
	return &atom.Symbol{
		Class:  atom.Ord,
		Text:   label,
		Fonts:  mainFont,
		Flags:  atom.Composite | atom.Reference,
		Source: cmd.Source(),
	}, nil
}

// setFont switches the symbols of a sequence to the bold or the upright
// font. Large operators and text are left alone.
func setFont(atoms []atom.Atom, bold bool) {
	for _, a := range atoms {
		sym, ok := a.(*atom.Symbol)
		if !ok {
			setFont(atom.Children(a), bold)
			continue
		}
		if sym.IsLargeOp() || sym.Flags.Has(atom.Text) || sym.Flags.Has(atom.Reference) {
			continue
		}
		sym.Flags &^= atom.Italic
		if bold {
			sym.Flags |= atom.Bold
			sym.Fonts = []string{atom.MainBold}
		} else {
			sym.Flags &^= atom.Bold
			sym.Fonts = mainFont
		}
	}
}

// script attaches a superscript or subscript to the last atom of seq.
func (p *Parser) script(tok scanner.Token, seq []atom.Atom) ([]atom.Atom, error) {
	if len(seq) == 0 {
		return nil, p.errorf(ErrMissingBase, tok, "missing base for %s", tok.Kind)
	}
	last := seq[len(seq)-1]
	if _, ok := last.(*atom.Space); ok {
		return nil, p.errorf(ErrMissingBase, tok, "missing base for %s", tok.Kind)
	}
	ss, ok := last.(*atom.SupSub)
	if !ok {
		ss = &atom.SupSub{Nucleus: last}
	}
	if (tok.Kind == scanner.Sup && ss.Sup != nil) || (tok.Kind == scanner.Sub && ss.Sub != nil) {
		return nil, p.errorf(ErrDuplicateScript, tok, "duplicate %s", tok.Kind)
	}
	arg, err := p.argument(tok)
	if err != nil {
		return nil, err
	}
	if tok.Kind == scanner.Sup {
		ss.Sup = arg
	} else {
		ss.Sub = arg
	}
	seq[len(seq)-1] = ss
	return seq, nil
}

func (p *Parser) leftRight(tok scanner.Token) (*atom.LeftRight, error) {
	left, err := p.delimiter(tok)
	if err != nil {
		return nil, err
	}
	body, err := p.parseSequence(stopAt(scanner.Right), `\right`)
	if err != nil {
		return nil, err
	}
	right, err := p.delimiter(p.sc.Next())
	if err != nil {
		return nil, err
	}
	return &atom.LeftRight{Left: left, Right: right, Body: body}, nil
}

// delimiter reads the delimiter following \left or \right.
func (p *Parser) delimiter(cmd scanner.Token) (rune, error) {
	tok := p.sc.Next()
	if tok.Kind == scanner.Char || tok.Kind == scanner.Command {
		if d, ok := atom.Delimiter(tok.Source()); ok {
			return d, nil
		}
	}
	return 0, p.errorf(ErrExpected, tok, "expected delimiter after %s", cmd.Source())
}

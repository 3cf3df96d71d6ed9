package layout

import (
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/delim"
	"github.com/npillmayer/tymath/engine/texmath/mathfont"
	"github.com/npillmayer/tymath/engine/texmath/spacing"
	"github.com/npillmayer/tymath/engine/texmath/style"
)

// Layouter creates box trees from atoms.
type Layouter struct {
	fonts *mathfont.Fonts
	sizer *delim.Sizer
	regs  *params.TypesettingRegisters
}

// New creates a layouter. If fonts is nil, the built-in metrics are used;
// if regs is nil, a fresh set of registers with default values is used.
func New(fonts *mathfont.Fonts, regs *params.TypesettingRegisters) *Layouter {
	if fonts == nil {
		fonts = mathfont.New(nil)
	}
	if regs == nil {
		regs = params.NewTypesettingRegisters()
	}
	return &Layouter{
		fonts: fonts,
		sizer: delim.New(fonts),
		regs:  regs,
	}
}

// Registers returns the typesetting registers of a layouter.
func (l *Layouter) Registers() *params.TypesettingRegisters {
	return l.regs
}

// Layout lays out a sequence of atoms as a horizontal list.
func (l *Layouter) Layout(atoms []atom.Atom, opts style.Options) (*box.Box, error) {
	tracer().Debugf("layout of %d atoms in style %s, size %d", len(atoms), opts.Style(), opts.Size())
	return l.hlist(atoms, opts)
}

// Atom lays out a single atom.
func (l *Layouter) Atom(a atom.Atom, opts style.Options) (*box.Box, error) {
	switch a := a.(type) {
	case *atom.Symbol:
		return l.symbol(a, opts)
	case *atom.Accent:
		return l.accent(a, opts)
	case *atom.Overline:
		return l.overline(a, opts)
	case *atom.Rule:
		return l.rule(a, opts), nil
	case *atom.LeftRight:
		return l.leftRight(a, opts)
	case *atom.Sqrt:
		return l.sqrt(a, opts)
	case *atom.Fraction:
		return l.fraction(a, opts)
	case *atom.SupSub:
		return l.supSub(a, opts)
	case *atom.Matrix:
		return l.matrix(a, opts)
	case *atom.Group:
		return l.group(a, opts)
	case *atom.Space:
		return l.space(a, opts), nil
	}
	tracer().Errorf("cannot lay out atom of type %T", a)
	return nil, core.Error(core.EINTERNAL, "cannot lay out atom of type %T", a)
}

// --- Horizontal lists ------------------------------------------------------

// hlist lays out atoms side by side. Inter-atom spaces become the left
// margin of the right-hand box.
func (l *Layouter) hlist(atoms []atom.Atom, opts style.Options, bopts ...box.Option) (*box.Box, error) {
	kinds := effectiveKinds(atoms)
	children := make([]*box.Box, 0, len(atoms))
	prev := -1
	for i, a := range atoms {
		b, err := l.Atom(a, opts)
		if err != nil {
			return nil, err
		}
		if _, ok := a.(*atom.Space); !ok {
			if prev >= 0 {
				if mu := spacing.Between(kinds[prev], kinds[i], opts.Style().IsTight()); mu != spacing.None {
					sp := b.Space
					sp.Left += l.fonts.Mu(mu, opts.Size())
					b = box.Margined(b, sp)
				}
			}
			prev = i
		}
		children = append(children, b)
	}
	return box.NewHBox(children, bopts...), nil
}

// sublist lays out atoms in a different style and scales the result into
// the coordinates of outer.
func (l *Layouter) sublist(atoms []atom.Atom, inner, outer style.Options, bopts ...box.Option) (*box.Box, error) {
	b, err := l.hlist(atoms, inner, bopts...)
	if err != nil {
		return nil, err
	}
	return box.NewScale(b, inner.Multiplier()/outer.Multiplier()), nil
}

// effectiveKinds applies TeX's rules 5 and 6: a binary operator without a
// suitable left or right operand is treated as an ordinary atom.
func effectiveKinds(atoms []atom.Atom) []atom.Kind {
	kinds := make([]atom.Kind, len(atoms))
	prev := -1
	for i, a := range atoms {
		k := a.Kind()
		if _, ok := a.(*atom.Space); ok {
			kinds[i] = k
			continue
		}
		if k == atom.Bin {
			if prev < 0 {
				k = atom.Ord
			} else {
				switch kinds[prev] {
				case atom.Bin, atom.Op, atom.Rel, atom.Open, atom.Punct:
					k = atom.Ord
				}
			}
		}
		if prev >= 0 && kinds[prev] == atom.Bin {
			switch k {
			case atom.Rel, atom.Close, atom.Punct:
				kinds[prev] = atom.Ord
			}
		}
		kinds[i] = k
		prev = i
	}
	if prev >= 0 && kinds[prev] == atom.Bin {
		kinds[prev] = atom.Ord
	}
	return kinds
}

// leadingKind is the kind of the first atom of a sequence which is not a
// space. ok is false for sequences without such an atom.
func leadingKind(atoms []atom.Atom) (k atom.Kind, ok bool) {
	for _, a := range atoms {
		if _, isSpace := a.(*atom.Space); !isSpace {
			return a.Kind(), true
		}
	}
	return atom.Ord, false
}

// --- Simple atoms ----------------------------------------------------------

func (l *Layouter) symbol(a *atom.Symbol, opts style.Options) (*box.Box, error) {
	if len(a.Fonts) == 0 {
		return nil, core.Error(core.EINVALID, "symbol %q has no font", a.Text)
	}
	font := a.Fonts[0]
	if a.IsLargeOp() && opts.Style().IsDisplay() {
		font = a.Fonts[1]
	}
	text := a.Text
	if a.Flags.Has(atom.Reference) {
		text = "(" + text + ")"
	}
	c, err := l.fonts.String(font, text)
	if err != nil {
		return nil, err
	}
	b := box.NewSymbol(text, font, rect(c), c.Italic, box.WithAtom(a.ID))
	if !a.IsLargeOp() {
		return b, nil
	}
	// large operators are centered on the axis
	axis := l.fonts.Sigma(metrics.AxisHeight, opts.Size())
	shift := axis - (b.Rect.Height - b.Rect.Depth).Half()
	return box.NewVBox([]*box.Box{b}, []dimen.Dimen{shift}, box.WithAtom(a.ID)), nil
}

// space lays out explicit space. Inter-word space of text runs is taken
// from the font's design parameters.
func (l *Layouter) space(a *atom.Space, opts style.Options) *box.Box {
	var w dimen.Dimen
	if a.Mu == 0 && a.Source == "" {
		w = l.fonts.Sigma(metrics.Space, opts.Size())
	} else {
		w = l.fonts.Mu(a.Mu, opts.Size())
	}
	return box.NewKern(w, box.WithAtom(a.ID))
}

// rule lays out a rule atom. Its dimensions are absolute and do not scale
// with the size.
func (l *Layouter) rule(a *atom.Rule, opts style.Options) *box.Box {
	m := opts.Multiplier()
	return box.NewRule(a.Width.Scale(1/m), a.Thickness.Scale(1/m), box.WithAtom(a.ID))
}

func (l *Layouter) group(a *atom.Group, opts style.Options) (*box.Box, error) {
	inner := opts
	switch a.Mode {
	case atom.Inline:
		inner = opts.WithStyle(style.T)
	case atom.Display:
		inner = opts.WithStyle(style.D)
	}
	return l.sublist(a.Body, inner, opts, box.WithAtom(a.ID))
}

// leftRight lays out the body first, then sizes the delimiters to enclose it.
func (l *Layouter) leftRight(a *atom.LeftRight, opts style.Options) (*box.Box, error) {
	body, err := l.hlist(a.Body, opts)
	if err != nil {
		return nil, err
	}
	h, d := body.Rect.Height, body.Rect.Depth
	left, _, err := l.sizer.LeftRight(a.Left, h, d, opts, l.regs, a.ID)
	if err != nil {
		return nil, err
	}
	right, _, err := l.sizer.LeftRight(a.Right, h, d, opts, l.regs, a.ID)
	if err != nil {
		return nil, err
	}
	return box.NewHBox([]*box.Box{left, body, right}, box.WithAtom(a.ID)), nil
}

// --- Helpers ---------------------------------------------------------------

func rect(c mathfont.Char) box.Rect {
	return box.Rect{Height: c.Height, Depth: c.Depth, Width: c.Width}
}

// italicOf finds the italic correction of a box made from a single symbol.
func italicOf(b *box.Box) dimen.Dimen {
	f := 1.0
	for b != nil {
		switch {
		case b.Kind == box.SymbolBox:
			return b.Italic.Scale(f)
		case b.Kind == box.ScaleBox && len(b.Children) == 1:
			f *= b.Factor
			b = b.Children[0]
		case b.Kind == box.VBox && len(b.Children) == 1:
			b = b.Children[0]
		default:
			return 0
		}
	}
	return 0
}

// center returns a copy of b with margins centering it in width w, moved
// right by offset.
func center(b *box.Box, w, offset dimen.Dimen) *box.Box {
	left := (w-b.Rect.Width).Half() + offset
	return box.Margined(b, box.Space{Left: left, Right: w - b.Rect.Width - left})
}

package layout

import (
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/style"
)

// supSub implements TeX's rule 18 for scripts attached to the right of a
// nucleus, and rule 13a for operators taking limits.
func (l *Layouter) supSub(a *atom.SupSub, opts style.Options) (*box.Box, error) {
	if a.Sup == nil && a.Sub == nil {
		tracer().Errorf("script atom %d without scripts", a.ID)
		return nil, core.Error(core.EINVALID, "script atom %d has neither superscript nor subscript", a.ID)
	}
	if hasLimits(a.Nucleus) {
		return l.limits(a, opts)
	}
	base, err := l.nucleus(a, opts)
	if err != nil {
		return nil, err
	}
	st := opts.Style()
	size := opts.Size()
	sigma := func(s metrics.Sigma) dimen.Dimen {
		return l.fonts.Sigma(s, size)
	}
	supOpts, subOpts := opts.WithStyle(st.Sup()), opts.WithStyle(st.Sub())
	var supShift, subShift dimen.Dimen
	if !isCharacter(a.Nucleus) {
		supShift = base.Rect.Height - l.fonts.Sigma(metrics.SupDrop, supOpts.Size()).Scale(supOpts.Multiplier()/opts.Multiplier())
		subShift = base.Rect.Depth + l.fonts.Sigma(metrics.SubDrop, subOpts.Size()).Scale(subOpts.Multiplier()/opts.Multiplier())
	}
	scriptSpace := l.regs.D(params.P_SCRIPTSPACE).Scale(1 / opts.Multiplier())
	var sup, sub *box.Box
	if a.Sup != nil {
		if sup, err = l.sublist(a.Sup, supOpts, opts); err != nil {
			return nil, err
		}
		sup = box.Margined(sup, box.Space{Right: scriptSpace})
	}
	if a.Sub != nil {
		if sub, err = l.sublist(a.Sub, subOpts, opts); err != nil {
			return nil, err
		}
		sub = box.Margined(sub, box.Space{Left: -italicOf(base), Right: scriptSpace})
	}
	xHeight := sigma(metrics.XHeight)
	var scripts *box.Box
	switch {
	case sub == nil:
		sp := maxOf(supShift, minSupShift(st, sigma), sup.Rect.Depth+xHeight.Scale(0.25))
		scripts = box.NewVBox([]*box.Box{sup}, []dimen.Dimen{sp})
	case sup == nil:
		sb := maxOf(subShift, sigma(metrics.Sub1), sub.Rect.Height-xHeight.Scale(0.8))
		scripts = box.NewVBox([]*box.Box{sub}, []dimen.Dimen{-sb})
	default:
		sp := maxOf(supShift, minSupShift(st, sigma), sup.Rect.Depth+xHeight.Scale(0.25))
		sb := dimen.Max(subShift, sigma(metrics.Sub1))
		minGap := 4 * sigma(metrics.DefaultRuleThickness)
		if gap := (sp - sup.Rect.Depth) - (sub.Rect.Height - sb); gap < minGap {
			sb = minGap - (sp - sup.Rect.Depth) + sub.Rect.Height
			if psi := xHeight.Scale(0.8) - (sp - sup.Rect.Depth); psi > 0 {
				sp += psi
				sb -= psi
			}
		}
		scripts = box.NewVBox([]*box.Box{sup, sub}, []dimen.Dimen{sp, -sb})
	}
	return box.NewHBox([]*box.Box{base, scripts}, box.WithAtom(a.ID)), nil
}

func (l *Layouter) nucleus(a *atom.SupSub, opts style.Options) (*box.Box, error) {
	if a.Nucleus == nil {
		return box.NewKern(0), nil
	}
	return l.Atom(a.Nucleus, opts)
}

// minSupShift is sup1, or sup3 for cramped styles.
func minSupShift(st *style.Style, sigma func(metrics.Sigma) dimen.Dimen) dimen.Dimen {
	if st.IsCramped() {
		return sigma(metrics.Sup3)
	}
	return sigma(metrics.Sup1)
}

// isCharacter is true for a nucleus which is a plain symbol. Scripts of
// characters are positioned without regard to the character's height.
func isCharacter(a atom.Atom) bool {
	sym, ok := a.(*atom.Symbol)
	return ok && sym.Class != atom.Op
}

// hasLimits is true for operators taking their scripts above and below,
// in every style.
func hasLimits(a atom.Atom) bool {
	sym, ok := a.(*atom.Symbol)
	return ok && sym.Class == atom.Op && sym.Flags.Has(atom.Limits)
}

// limits stacks superscript, operator and subscript, centered, with the big
// operator spacings between them. The baseline of the stack is the
// baseline of the operator.
func (l *Layouter) limits(a *atom.SupSub, opts style.Options) (*box.Box, error) {
	base, err := l.Atom(a.Nucleus, opts)
	if err != nil {
		return nil, err
	}
	st := opts.Style()
	size := opts.Size()
	sigma := func(s metrics.Sigma) dimen.Dimen {
		return l.fonts.Sigma(s, size)
	}
	var sup, sub *box.Box
	if a.Sup != nil {
		if sup, err = l.sublist(a.Sup, opts.WithStyle(st.Sup()), opts); err != nil {
			return nil, err
		}
	}
	if a.Sub != nil {
		if sub, err = l.sublist(a.Sub, opts.WithStyle(st.Sub()), opts); err != nil {
			return nil, err
		}
	}
	delta := italicOf(base)
	w := base.Rect.Width
	for _, b := range []*box.Box{sup, sub} {
		if b != nil {
			w = dimen.Max(w, b.Rect.Width)
		}
	}
	var children []*box.Box
	depth := base.Rect.Depth
	if sup != nil {
		kern := dimen.Max(sigma(metrics.BigOpSpacing1), sigma(metrics.BigOpSpacing3)-sup.Rect.Depth)
		children = append(children,
			box.NewVKern(sigma(metrics.BigOpSpacing5)),
			center(sup, w, delta.Half()),
			box.NewVKern(kern))
	}
	children = append(children, center(base, w, 0))
	if sub != nil {
		kern := dimen.Max(sigma(metrics.BigOpSpacing2), sigma(metrics.BigOpSpacing4)-sub.Rect.Height)
		children = append(children,
			box.NewVKern(kern),
			center(sub, w, -delta.Half()),
			box.NewVKern(sigma(metrics.BigOpSpacing5)))
		depth += kern + sub.Rect.Total() + sigma(metrics.BigOpSpacing5)
	}
	tracer().Debugf("limits: operator %d, stack depth %s", a.ID, depth)
	return box.NewVStack(children, depth, box.WithAtom(a.ID)), nil
}

func maxOf(d dimen.Dimen, more ...dimen.Dimen) dimen.Dimen {
	for _, x := range more {
		d = dimen.Max(d, x)
	}
	return d
}

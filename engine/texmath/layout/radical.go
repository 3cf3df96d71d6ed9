package layout

import (
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/style"
)

// sqrt implements TeX's rule 11. The radicand is set in cramped style, with
// a clearance between its top and the rule. The radical sign is chosen from
// the delimiter sizes to cover radicand, clearance and rule.
func (l *Layouter) sqrt(a *atom.Sqrt, opts style.Options) (*box.Box, error) {
	st := opts.Style()
	inner, err := l.sublist(a.Radicand, opts.WithStyle(st.Cramp()), opts)
	if err != nil {
		return nil, err
	}
	size := opts.Size()
	theta := l.fonts.Sigma(metrics.DefaultRuleThickness, size)
	phi := theta
	if st.IsDisplay() {
		phi = l.fonts.Sigma(metrics.XHeight, size)
	}
	clearance := theta + phi.Scale(0.25)
	sign, _, err := l.sizer.Radical(inner.Rect.Total()+clearance+theta, opts, a.ID)
	if err != nil {
		return nil, err
	}
	// distribute excess height of the sign evenly above and below the radicand
	if excess := sign.Rect.Total() - theta - inner.Rect.Total(); excess > clearance {
		clearance = (clearance + excess).Half()
	}
	ruleShift := inner.Rect.Height + clearance
	rule := box.NewRule(inner.Rect.Width, theta, box.WithSpace(box.Space{Top: theta}))
	body := box.NewVBox([]*box.Box{inner, rule}, []dimen.Dimen{0, ruleShift})
	signShift := ruleShift + theta - sign.Rect.Height
	radical := box.NewVBox([]*box.Box{sign}, []dimen.Dimen{signShift})
	return box.NewHBox([]*box.Box{radical, body}, box.WithAtom(a.ID)), nil
}

// overline implements TeX's rule 9: a rule three rule thicknesses above the
// cramped body, with one more thickness of space above.
func (l *Layouter) overline(a *atom.Overline, opts style.Options) (*box.Box, error) {
	inner, err := l.sublist(a.Body, opts.WithStyle(opts.Style().Cramp()), opts)
	if err != nil {
		return nil, err
	}
	theta := l.fonts.Sigma(metrics.DefaultRuleThickness, opts.Size())
	rule := box.NewRule(inner.Rect.Width, theta, box.WithSpace(box.Space{Top: theta}))
	return box.NewVBox(
		[]*box.Box{inner, rule},
		[]dimen.Dimen{0, inner.Rect.Height + 3*theta},
		box.WithAtom(a.ID),
	), nil
}

// accent implements TeX's rule 12: the accent is lowered by the smaller of
// the body's height and the x-height, and centered over the body, moved by
// the skew of a single-character body.
func (l *Layouter) accent(a *atom.Accent, opts style.Options) (*box.Box, error) {
	body, err := l.sublist(a.Body, opts.WithStyle(opts.Style().Cramp()), opts)
	if err != nil {
		return nil, err
	}
	c, err := l.fonts.Char(atom.MainRegular, a.Accent)
	if err != nil {
		return nil, err
	}
	var skew dimen.Dimen
	if len(a.Body) == 1 {
		if sym, ok := a.Body[0].(*atom.Symbol); ok && len(sym.Fonts) > 0 {
			if m, err := l.fonts.String(sym.Fonts[0], sym.Text); err == nil {
				skew = m.Skew
			}
		}
	}
	delta := dimen.Min(body.Rect.Height, l.fonts.Sigma(metrics.XHeight, opts.Size()))
	acc := box.NewSymbol(string(a.Accent), atom.MainRegular, rect(c), 0)
	acc = center(acc, body.Rect.Width, skew)
	return box.NewVBox(
		[]*box.Box{body, acc},
		[]dimen.Dimen{0, body.Rect.Height - delta},
		box.WithAtom(a.ID),
	), nil
}

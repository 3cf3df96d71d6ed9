package layout

import (
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/style"
)

// fraction implements TeX's rule 15: numerator and denominator are set in
// their own styles, centered above and below a rule on the math axis.
func (l *Layouter) fraction(a *atom.Fraction, opts style.Options) (*box.Box, error) {
	st := opts.Style()
	num, err := l.sublist(a.Num, opts.WithStyle(st.FracNum()), opts)
	if err != nil {
		return nil, err
	}
	den, err := l.sublist(a.Den, opts.WithStyle(st.FracDen()), opts)
	if err != nil {
		return nil, err
	}
	size := opts.Size()
	sigma := func(s metrics.Sigma) dimen.Dimen {
		return l.fonts.Sigma(s, size)
	}
	drt := sigma(metrics.DefaultRuleThickness)
	theta := drt // thickness of the fraction rule
	axis := sigma(metrics.AxisHeight)
	var u, v, clearance dimen.Dimen // numerator shift up, denominator shift down
	if st.IsDisplay() {
		u, v = sigma(metrics.Num1), sigma(metrics.Denom1)
		clearance = 3 * theta
		if theta == 0 {
			clearance = 7 * drt
		}
	} else {
		u, v = sigma(metrics.Num2), sigma(metrics.Denom2)
		clearance = theta
		if theta == 0 {
			u = sigma(metrics.Num3)
			clearance = 3 * drt
		}
	}
	ruleShift := axis - theta.Half()
	if theta == 0 {
		gap := (u - num.Rect.Depth) - (den.Rect.Height - v)
		if gap < clearance {
			u += (clearance - gap).Half()
			v += clearance - gap - (clearance - gap).Half()
		}
	} else {
		if gap := (u - num.Rect.Depth) - (ruleShift + theta); gap < clearance {
			u += clearance - gap
		}
		if gap := ruleShift - (den.Rect.Height - v); gap < clearance {
			v += clearance - gap
		}
	}
	tracer().Debugf("fraction: num shift %s, den shift %s, rule at %s", u, v, ruleShift)
	w := dimen.Max(num.Rect.Width, den.Rect.Width)
	rule := box.NewRule(w, theta)
	inset := l.regs.D(params.P_NULLDELIMITERSPACE)
	return box.NewVBox(
		[]*box.Box{center(num, w, 0), rule, center(den, w, 0)},
		[]dimen.Dimen{u, ruleShift, -v},
		box.WithAtom(a.ID), box.WithMargins(inset, inset),
	), nil
}

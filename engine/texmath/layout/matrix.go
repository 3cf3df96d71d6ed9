package layout

import (
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/spacing"
	"github.com/npillmayer/tymath/engine/texmath/style"
)

type alignment int8

const (
	alignCenter alignment = iota
	alignLeft
	alignRight
)

func columnAlignment(env string, col int) alignment {
	switch {
	case env == "cases":
		return alignLeft
	case atom.IsAlignEnv(env) && col%2 == 0:
		return alignRight
	case atom.IsAlignEnv(env):
		return alignLeft
	}
	return alignCenter
}

// matrix lays out a tabular environment. Rows are at least as high and deep
// as a strut derived from the baseline skip, the array is centered on the
// math axis and enclosed in the environment's delimiters, if any.
func (l *Layouter) matrix(a *atom.Matrix, opts style.Options) (*box.Box, error) {
	l.regs.Begingroup()
	defer l.regs.Endgroup()
	if a.Env == "cases" {
		l.regs.Push(params.P_ARRAYSTRETCH, 1.2)
	}
	isAlign := atom.IsAlignEnv(a.Env)
	cellOpts := opts.WithStyle(style.T)
	if isAlign {
		cellOpts = opts.WithStyle(style.D)
	}
	arrayskip := l.fonts.FromEm(l.regs.F(params.P_BASELINESKIP) * l.regs.F(params.P_ARRAYSTRETCH))
	strutHeight, strutDepth := arrayskip.Scale(0.7), arrayskip.Scale(0.3)
	//
	cells := make([][]*box.Box, len(a.Rows))
	pos := make([]dimen.Dimen, len(a.Rows)) // baseline of each row, from the top
	var total dimen.Dimen
	for r, row := range a.Rows {
		h, d := strutHeight, strutDepth
		cells[r] = make([]*box.Box, len(row))
		for c, cell := range row {
			b, err := l.sublist(cell, cellOpts, opts)
			if err != nil {
				return nil, err
			}
			if isAlign && c%2 == 1 {
				b = l.alignSpace(b, cell, cellOpts, opts)
			}
			cells[r][c] = b
			h = dimen.Max(h, b.Rect.Height)
			d = dimen.Max(d, b.Rect.Depth)
		}
		total += h
		pos[r] = total
		total += d
	}
	axis := l.fonts.Sigma(metrics.AxisHeight, opts.Size())
	offset := total.Half() + axis
	tracer().Debugf("array %s: %d rows, total height %s", a.Env, len(a.Rows), total)
	//
	colGap := l.fonts.FromEm(2 * l.regs.F(params.P_ARRAYCOLSEP))
	ncols := a.Columns()
	children := make([]*box.Box, 0, ncols+1)
	for c := 0; c < ncols; c++ {
		var w dimen.Dimen
		for r := range cells {
			if c < len(cells[r]) {
				w = dimen.Max(w, cells[r][c].OuterWidth())
			}
		}
		var col []*box.Box
		var shifts []dimen.Dimen
		for r := range cells {
			if c >= len(cells[r]) {
				continue
			}
			col = append(col, aligned(cells[r][c], w, columnAlignment(a.Env, c)))
			shifts = append(shifts, offset-pos[r])
		}
		var opt []box.Option
		if c > 0 && (!isAlign || c%2 == 0) {
			opt = append(opt, box.WithMargins(colGap, 0))
		}
		children = append(children, box.NewVBox(col, shifts, opt...))
	}
	// a zero-width strut spanning all rows
	strut := box.NewVBox([]*box.Box{box.NewVKern(total)}, []dimen.Dimen{offset - total})
	children = append(children, strut)
	left, right := atom.EnvDelimiters(a.Env)
	if left == 0 && right == 0 {
		return box.NewHBox(children, box.WithAtom(a.ID)), nil
	}
	array := box.NewHBox(children)
	h, d := array.Rect.Height, array.Rect.Depth
	lbox, _, err := l.sizer.LeftRight(left, h, d, opts, l.regs, a.ID)
	if err != nil {
		return nil, err
	}
	rbox, _, err := l.sizer.LeftRight(right, h, d, opts, l.regs, a.ID)
	if err != nil {
		return nil, err
	}
	return box.NewHBox([]*box.Box{lbox, array, rbox}, box.WithAtom(a.ID)), nil
}

// alignSpace puts the space in front of the right-hand cell of an equation
// which the cell's leading atom would get after an ordinary atom.
func (l *Layouter) alignSpace(b *box.Box, cell []atom.Atom, cellOpts, opts style.Options) *box.Box {
	k, ok := leadingKind(cell)
	if !ok {
		return b
	}
	mu := spacing.Between(atom.Ord, k, cellOpts.Style().IsTight())
	if mu == spacing.None {
		return b
	}
	sp := b.Space
	sp.Left += l.fonts.Mu(mu, cellOpts.Size()).Scale(cellOpts.Multiplier() / opts.Multiplier())
	return box.Margined(b, sp)
}

// aligned returns a copy of a cell with margins placing it in a column of
// width w.
func aligned(b *box.Box, w dimen.Dimen, align alignment) *box.Box {
	free := w - b.OuterWidth()
	sp := b.Space
	switch align {
	case alignLeft:
		sp.Right += free
	case alignRight:
		sp.Left += free
	default:
		sp.Left += free.Half()
		sp.Right += free - free.Half()
	}
	return box.Margined(b, sp)
}

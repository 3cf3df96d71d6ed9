/*
Package mathfont adapts a font metrics provider for math layout.

Metrics providers hand out character metrics and design parameters in em.
Layout works in scaled points, in the coordinate system of the current
size: one em of the current size is Em() scaled points, regardless of
the size level. Boxes laid out at a different size are scaled when put
into their parent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathfont

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	"github.com/npillmayer/tymath/engine/texmath/style"
)

// tracer writes to trace with key 'tymath.font'
func tracer() tracing.Trace {
	return tracing.Select("tymath.font")
}

// Char holds the metrics of a character in scaled points.
type Char struct {
	Height dimen.Dimen
	Depth  dimen.Dimen
	Italic dimen.Dimen
	Skew   dimen.Dimen
	Width  dimen.Dimen
}

// Fonts wraps a metrics provider. It is read-only and may be shared between
// goroutines.
type Fonts struct {
	provider metrics.Provider
	em       dimen.Dimen
}

// New creates a facade for a metrics provider. If p is nil, the built-in
// metrics tables are used.
func New(p metrics.Provider) *Fonts {
	if p == nil {
		p = metrics.Builtin()
	}
	ptPerEm := p.DesignParam(metrics.PtPerEm, style.NormalSize)
	if ptPerEm <= 0 {
		ptPerEm = 10
	}
	return &Fonts{
		provider: p,
		em:       dimen.PT.Scale(ptPerEm),
	}
}

// Provider returns the underlying metrics provider.
func (f *Fonts) Provider() metrics.Provider {
	return f.provider
}

// Em returns the size of an em, in scaled points.
func (f *Fonts) Em() dimen.Dimen {
	return f.em
}

// FromEm converts a length in em to scaled points.
func (f *Fonts) FromEm(x float64) dimen.Dimen {
	return f.em.Scale(x)
}

// Char returns the metrics of a character.
func (f *Fonts) Char(font string, ch rune) (Char, error) {
	m, err := f.provider.MetricsOf(font, ch)
	if err != nil {
		tracer().Errorf("%v", err)
		return Char{}, err
	}
	return Char{
		Height: f.FromEm(m.Height),
		Depth:  f.FromEm(m.Depth),
		Italic: f.FromEm(m.Italic),
		Skew:   f.FromEm(m.Skew),
		Width:  f.FromEm(m.Width),
	}, nil
}

// String returns the combined metrics of a string set in a single font.
// The italic correction and skew are those of the last character.
func (f *Fonts) String(font string, s string) (Char, error) {
	var c Char
	first := true
	for _, r := range s {
		m, err := f.Char(font, r)
		if err != nil {
			return Char{}, err
		}
		if first {
			c.Height, c.Depth = m.Height, m.Depth
			first = false
		} else {
			c.Height = dimen.Max(c.Height, m.Height)
			c.Depth = dimen.Max(c.Depth, m.Depth)
		}
		c.Width += m.Width
		c.Italic, c.Skew = m.Italic, m.Skew
	}
	return c, nil
}

// Sigma returns a design parameter for a size level, in scaled points.
func (f *Fonts) Sigma(s metrics.Sigma, size int) dimen.Dimen {
	return f.FromEm(f.provider.DesignParam(s, size))
}

// Param returns a design parameter for a size level, unconverted.
func (f *Fonts) Param(s metrics.Sigma, size int) float64 {
	return f.provider.DesignParam(s, size)
}

// Mu returns the length of n math units for a size level: 1/18 of its quad.
func (f *Fonts) Mu(n int, size int) dimen.Dimen {
	return f.Sigma(metrics.Quad, size).Scale(float64(n) / 18)
}

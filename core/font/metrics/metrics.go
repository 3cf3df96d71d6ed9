package metrics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/tymath/core"
)

// ErrNotFound is returned if a (font, character) pair is absent from a provider.
var ErrNotFound = errors.New("metrics not found")

// CharMetrics are the metrics of a single character, in em.
type CharMetrics struct {
	Height float64 // above the baseline
	Depth  float64 // below the baseline
	Italic float64 // italic correction
	Skew   float64 // horizontal offset for accents
	Width  float64
}

// FontInfo holds per-font vertical extent, in em.
type FontInfo struct {
	Ascent  float64
	Descent float64
}

// Provider is the interface math layout uses to query font metrics.
type Provider interface {
	// MetricsOf returns the metrics for a character of a font. If the pair is
	// unknown, an error wrapping ErrNotFound is returned.
	MetricsOf(font string, ch rune) (CharMetrics, error)
	// DesignParam returns a design parameter for a size level (1…11).
	DesignParam(s Sigma, size int) float64
	// FontInfo returns ascent and descent of a font.
	FontInfo(font string) (FontInfo, error)
}

// NotFound creates an application error for a missing (font, character) pair.
func NotFound(font string, ch rune) error {
	return core.WrapError(fmt.Errorf("%w: %q in %s", ErrNotFound, ch, font), core.EMISSING,
		"metrics not found for %q in font %s", ch, font)
}

// --- Design parameters -----------------------------------------------------

// Sigma names a font design parameter.
type Sigma int

// Design parameters, following TeX's \fontdimen parameters of the math symbol
// and math extension fonts.
const (
	Slant Sigma = iota
	Space
	Stretch
	Shrink
	XHeight
	Quad
	ExtraSpace
	Num1
	Num2
	Num3
	Denom1
	Denom2
	Sup1
	Sup2
	Sup3
	Sub1
	Sub2
	SupDrop
	SubDrop
	Delim1
	Delim2
	AxisHeight
	DefaultRuleThickness
	BigOpSpacing1
	BigOpSpacing2
	BigOpSpacing3
	BigOpSpacing4
	BigOpSpacing5
	SqrtRuleThickness
	PtPerEm
	DoubleRuleSep
	NumSigmas // number of design parameters, not a parameter itself
)

var sigmaNames = [NumSigmas]string{
	"slant", "space", "stretch", "shrink", "xHeight", "quad", "extraSpace",
	"num1", "num2", "num3", "denom1", "denom2", "sup1", "sup2", "sup3",
	"sub1", "sub2", "supDrop", "subDrop", "delim1", "delim2", "axisHeight",
	"defaultRuleThickness", "bigOpSpacing1", "bigOpSpacing2", "bigOpSpacing3",
	"bigOpSpacing4", "bigOpSpacing5", "sqrtRuleThickness", "ptPerEm",
	"doubleRuleSep",
}

func (s Sigma) String() string {
	if s < 0 || s >= NumSigmas {
		return fmt.Sprintf("Sigma(%d)", int(s))
	}
	return sigmaNames[s]
}

// SizeRegime maps a size level (1…11) to one of 3 regimes:
// 0 = text size, 1 = script size, 2 = scriptscript size.
func SizeRegime(size int) int {
	if size >= 5 {
		return 0
	} else if size >= 3 {
		return 1
	}
	return 2
}

// --- Table provider --------------------------------------------------------

// Table is a Provider serving pre-generated metrics from memory.
// A table is read-only after construction and may be shared between
// goroutines.
type Table struct {
	Name   string
	Chars  map[string]map[rune]CharMetrics
	Fonts  map[string]FontInfo
	Sigmas [NumSigmas][3]float64
}

// MetricsOf is part of interface Provider.
func (t *Table) MetricsOf(font string, ch rune) (CharMetrics, error) {
	if chars, ok := t.Chars[font]; ok {
		if m, ok := chars[ch]; ok {
			return m, nil
		}
	}
	tracer().Debugf("table %s has no metrics for %q in %s", t.Name, ch, font)
	return CharMetrics{}, NotFound(font, ch)
}

// DesignParam is part of interface Provider.
func (t *Table) DesignParam(s Sigma, size int) float64 {
	return t.Sigmas[s][SizeRegime(size)]
}

// FontInfo is part of interface Provider.
func (t *Table) FontInfo(font string) (FontInfo, error) {
	if fi, ok := t.Fonts[font]; ok {
		return fi, nil
	}
	return FontInfo{}, core.WrapError(fmt.Errorf("%w: font %s", ErrNotFound, font), core.EMISSING,
		"font %s not found", font)
}

var _ Provider = &Table{}

var builtinOnce sync.Once
var builtinTable *Table

// Builtin returns the built-in metrics table. It is created on first use and
// shared afterwards.
func Builtin() *Table {
	builtinOnce.Do(func() {
		builtinTable = loadBuiltin()
		tracer().Infof("built-in font metrics loaded, %d fonts", len(builtinTable.Chars))
	})
	return builtinTable
}

/*
Package dimen implements dimensions and units.

All lengths of tymath are integral multiples of a scaled point, with
65536 scaled points to a big point (PDF point). Formulas are measured in
em, which layout converts to dimensions with the help of the font metrics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	SP Dimen = 1       // scaled point = BP / 65536
	BP Dimen = 65536   // big point (PDF) = 1/72 inch
	PT Dimen = 65291   // printers point 1/72.27 inch
	MM Dimen = 185771  // millimeters
	CM Dimen = 1857710 // centimeters
	IN Dimen = 4718592 // inch
)

// units known to ParseDimen, with their size in scaled points.
var units = map[string]Dimen{
	"":   SP,
	"sp": SP,
	"bp": BP,
	"px": BP,
	"pt": PT,
	"mm": MM,
	"cm": CM,
	"in": IN,
}

// String prints a dimension in scaled points, e.g., "65536sp".
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// Scale multiplies a dimension by a factor, rounding to the nearest
// scaled point.
func (d Dimen) Scale(f float64) Dimen {
	return Dimen(math.Round(float64(d) * f))
}

// Half returns d/2, rounded towards zero.
func (d Dimen) Half() Dimen {
	return d / 2
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(%|[a-zA-Z]{2})?$`)

// ParseDimen parses a dimension from source text, e.g. the arguments of
// \rule. Units are those of TeX (`pt`, `bp`, `sp`, `mm`, `cm`, `in`) plus
// `px`, which equals a big point. A missing unit means scaled points.
// If a percentage value is given (`80%`), the second return value will be
// true and the first is the plain number.
func ParseDimen(s string) (Dimen, bool, error) {
	m := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false, fmt.Errorf("format error parsing dimension %q", s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false, fmt.Errorf("format error parsing dimension %q: %w", s, err)
	}
	if m[2] == "%" {
		return Dimen(math.Round(n)), true, nil
	}
	scale, ok := units[strings.ToLower(m[2])]
	if !ok {
		return 0, false, fmt.Errorf("unknown unit %q in dimension %q", m[2], s)
	}
	return Dimen(math.Round(n * float64(scale))), false, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

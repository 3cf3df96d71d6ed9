/*
Package metrics defines the font metrics consumed by math layout.

Math layout never reads font binaries. It asks a Provider for the metrics
of a character in a named font, and for TeX's named font design
parameters (“sigmas”) in one of three size regimes. All values are
fractions of an em of the font at hand.

The package contains a table-driven provider and a built-in table for the
Computer Modern–style fonts math layout selects from:

	Main-Regular, Main-Bold, Math-Italic, Size1-Regular … Size4-Regular

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package metrics

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.font'
func tracer() tracing.Trace {
	return tracing.Select("tymath.font")
}

/*
Package sfntmetrics derives math font metrics from OpenType and TrueType fonts.

The built-in metrics table is the usual provider for math layout. This
package offers an alternative for setting math with fonts available at
runtime: glyph extents are read with golang.org/x/image/font/sfnt and
converted to em. Fonts do not carry TeX's design parameters, therefore a
second provider is consulted for those.

	p := sfntmetrics.NewGoFontsProvider(metrics.Builtin())
	m, err := p.MetricsOf("Math-Italic", 'x')

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sfntmetrics

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.font'
func tracer() tracing.Trace {
	return tracing.Select("tymath.font")
}

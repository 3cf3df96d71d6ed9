/*
Package layout turns atom trees into box trees, following the rules of
Appendix G of The TeXbook.

A Layouter walks a sequence of atoms and creates a horizontal box for it,
inserting inter-atom spaces between neighbours. Sub-formulas at a smaller
size, e.g. superscripts or the numerator of a fraction in text style, are
laid out in their own coordinates and scaled into their parent. All design
parameters are taken from the font metrics for the size a construct is set
in.

Typesetting registers (core/parameters) control array spacing, script space
and delimiter sizing. A Layouter uses one set of registers for its lifetime
and is therefore not safe for concurrent use; create one per layout run.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.layout'
func tracer() tracing.Trace {
	return tracing.Select("tymath.layout")
}

/*
Package texmath typesets mathematical formulas written in a LaTeX-like
notation.

Typesetting is a pipeline of three steps. Source text is parsed into a tree
of atoms (see package atom), atoms are laid out as boxes (see package
layout), and the resulting box tree is handed to a renderer. This package
bundles the steps for clients which do not need to intervene in between:

    root, err := texmath.Typeset(`\frac{a}{b} + \sqrt{x}`, texmath.DefaultConfig())

All dimensions of the box tree are in scaled points, measured in the
coordinates of the text size. Every box carries the ID of the atom it was
generated from; the atom tree returned by ParseMath maps IDs back to atoms.

Parsing and layout do not share state between calls. Independent formulas
may be typeset concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package texmath

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.math'
func tracer() tracing.Trace {
	return tracing.Select("tymath.math")
}

/*
Package atom defines the atom tree, the typed syntax tree of a math formula.

Atoms are a closed set of variants (Symbol, Accent, Overline, Rule,
LeftRight, Sqrt, Fraction, SupSub, Matrix, Group and Space). Every atom
carries an atom class (“kind”) which drives inter-atom spacing. Layout
and serialization switch exhaustively over the variants.

Atoms own their children. A Tree numbers the atoms of a formula and keeps
parent links in an index, never as references from child to parent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package atom

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.atom'
func tracer() tracing.Trace {
	return tracing.Select("tymath.atom")
}

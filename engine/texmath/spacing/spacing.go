/*
Package spacing holds the table of spaces between adjacent atoms.

Spaces are given in math units (mu), where 18 mu make up an em quad of
the current size: a thin space is 3 mu, a medium space 4 mu and a thick
space 5 mu. In script and scriptscript styles only thin spaces survive.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package spacing

import (
	"github.com/npillmayer/tymath/engine/texmath/atom"
)

// Widths of spaces in math units.
const (
	None   = 0
	Thin   = 3
	Medium = 4
	Thick  = 5
)

// MuPerQuad is the number of math units in an em quad.
const MuPerQuad = 18

const (
	ord   = atom.Ord
	op    = atom.Op
	bin   = atom.Bin
	rel   = atom.Rel
	opn   = atom.Open
	cls   = atom.Close
	punct = atom.Punct
	inner = atom.Inner
)

// table[left][right], following TeX's table in Appendix G, rule 20.
var table = [atom.NumKinds][atom.NumKinds]int{
	ord:   {op: Thin, bin: Medium, rel: Thick, inner: Thin},
	op:    {ord: Thin, op: Thin, rel: Thick, inner: Thin},
	bin:   {ord: Medium, op: Medium, opn: Medium, inner: Medium},
	rel:   {ord: Thick, op: Thick, opn: Thick, inner: Thick},
	opn:   {},
	cls:   {op: Thin, bin: Medium, rel: Thick, inner: Thin},
	punct: {ord: Thin, op: Thin, rel: Thin, opn: Thin, cls: Thin, punct: Thin, inner: Thin},
	inner: {ord: Thin, op: Thin, bin: Medium, rel: Thick, opn: Thin, punct: Thin, inner: Thin},
}

// tight[left][right] are the spaces surviving in script styles.
var tight = [atom.NumKinds][atom.NumKinds]int{
	ord:   {op: Thin},
	op:    {ord: Thin, op: Thin},
	cls:   {op: Thin},
	inner: {op: Thin},
}

// Between returns the space in mu between an atom of kind left and an atom
// of kind right. If tight is set, the sparser table for script styles is
// consulted.
func Between(left, right atom.Kind, isTight bool) int {
	if left < 0 || left >= atom.NumKinds || right < 0 || right >= atom.NumKinds {
		return None
	}
	if isTight {
		return tight[left][right]
	}
	return table[left][right]
}

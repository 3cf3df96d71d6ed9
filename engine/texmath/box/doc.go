/*
Package box implements the geometry of typeset math: boxes with a height,
a depth and a width, following TeX's box model.

Heights are measured upwards from the baseline, depths downwards. Every box
carries margins which are part of its footprint in the parent box.
Boxes are created by constructors which compute the aggregate dimensions
of containers from their children; after construction a box is not
modified. Every box tree node records the ID of the atom it was
generated from, if any.

All dimensions of a box are given in the coordinate system of the size it
has been laid out at. A Scale box embeds a box of a different size into
its parent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package box

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.box'
func tracer() tracing.Trace {
	return tracing.Select("tymath.box")
}

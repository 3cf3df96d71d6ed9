/*
Package style implements TeX's math styles and the layout options derived from them.

There are 8 styles: display, text, script and scriptscript, each of them
either cramped or not. Styles are immutable singletons; transitions between
them (into a superscript, into a denominator, …) are fixed table lookups.

Options combine a style with a text size level (1…11). The effective size
level of a style is computed from the text size by TeX's nested size
reduction: scripts are set smaller, scripts of scripts smaller still, but
never below the smallest size level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.style'
func tracer() tracing.Trace {
	return tracing.Select("tymath.style")
}

/*
Package delim chooses and builds delimiters of a required size.

A delimiter is taken from a fixed sequence of variants: glyphs of the text
font at scriptscript, script and text style, then glyphs of the four large
delimiter fonts, and finally a delimiter stacked from pieces. The first
variant exceeding the required total height wins. Delimiters are centered
on the math axis.

Some delimiters never stack (angle brackets and the slash); the largest
glyph is used for them if nothing reaches the required height. Bars have
no large glyphs and stack right after the text-font variants.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package delim

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.delim'
func tracer() tracing.Trace {
	return tracing.Select("tymath.delim")
}

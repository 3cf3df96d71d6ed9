/*
Package scanner splits math source text into tokens.

Tokens are produced lazily, one at a time, with a single token of
lookahead. Input is normalized to Unicode NFC before scanning.

Control sequences follow TeX's rules: a backslash followed by letters
forms a command name from the maximal run of letters (TeX “control
word”), a backslash followed by any other single character is a one
character command (TeX “control symbol”). The structural commands
\left, \right, \begin, \end, \\, \[ and \] are reported with dedicated
token kinds.

The scanner never fails. Malformed input surfaces as an unexpected
token or as end-of-input in the parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.scanner'
func tracer() tracing.Trace {
	return tracing.Select("tymath.scanner")
}

/*
Package parser builds atom trees from math source text.

The parser is a recursive descent parser driven by a single token of
lookahead. It tracks a stack of modes: text mode for running text, inline
and display math, and alignment mode inside multi-line equation
environments. Mode transitions are caused by $…$, \[…\] and
\begin{…}…\end{…}.

Parsing aborts at the first error. Errors are of type *Error, wrapped as
application errors with code core.ESYNTAX; use errors.Is with one of the
Err… sentinels to check for an error kind.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tymath.parser'
func tracer() tracing.Trace {
	return tracing.Select("tymath.parser")
}

/*
Package textsource converts external values into UTF-16 code units.

A text builder never inspects the values handed to it; it asks a Source for
a code-unit view instead. Producers for the common Go values are provided
here, and Of resolves an arbitrary value to one of them once, at the
boundary. Values which cannot be converted yield an empty source.

Byte-oriented input in any encoding known to golang.org/x/text/encoding/htmlindex
is decoded by streaming it through a UnitReader.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textsource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuilder'
func tracer() tracing.Trace {
	return tracing.Select("textbuilder")
}

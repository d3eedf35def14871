/*
Package metrics provides some pre-manufactured metrics on texts held as
UTF-16 code units.

Words classifies a text into words, numbers and wide characters. Lines
indexes line starts and resolves code-unit positions to line and column.
Both report spans in code units, never in bytes.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuilder'
func tracer() tracing.Trace {
	return tracing.Select("textbuilder")
}

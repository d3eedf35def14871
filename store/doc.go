/*
Package store holds the contiguous code-unit storage behind a text builder.

A Buffer owns a single slice of UTF-16 code units. The slice length is the
capacity of the buffer; the prefix [0, Len()) is the content. Capacity is
always a multiple of the block size and grows in whole blocks:

	newCap = Cap() + ceil((needed - Cap()) / block) * block

Capacity never shrinks on its own; Shrink has to be called explicitly.

All offsets in this package are code-unit offsets. A block of 256 bytes
equals 128 code units.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package store

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuilder'
func tracer() tracing.Trace {
	return tracing.Select("textbuilder")
}

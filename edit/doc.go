/*
Package edit implements in-place editing of a store.Buffer.

Every range-taking operation resolves its indices with Index: negative
indices count from the end of the content, indices out of range are clamped.
Such indices are never an error.

Operations move as little data as possible: an insertion shifts the tail
once, a replacement fuses deletion and insertion, repetition copies by
doubling, and bulk replacement rewrites all matches in a single pass through
spare capacity (see ReplaceAt).

Content slices handed to this package must not alias the buffer they are
written into.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package edit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuilder'
func tracer() tracing.Trace {
	return tracing.Select("textbuilder")
}

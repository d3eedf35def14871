/*
Package textbuilder offers a mutable, growable text buffer for building and
editing large strings in place.

Builders

A Builder holds text as a contiguous array of UTF-16 code units. In contrast
to Go strings, which are immutable, a builder is edited in place: inserting,
deleting, replacing, trimming, reversing or repeating text moves as little
data as possible and re-uses the spare capacity of the buffer. Capacity is
allocated in blocks of 256 bytes (128 code units) and never shrinks unless
ShrinkCapacity is called.

	b := textbuilder.FromString("Hello World")
	b.Insert(5, textsource.String(",")).Append(textsource.String("!"))
	b.ReplaceAll(textsource.String("o"), textsource.String("0"))
	fmt.Println(b) // Hell0, W0rld!

Positions are code-unit indices. Following the conventions of JavaScript
strings, a negative index counts from the end of the text and indices out of
range are clamped; they never cause an error.

Searching

IndexOf, IndexOfSkip and LastIndexOf search with a Boyer–Moore–Horspool
variant and return all matches up to a limit (1000 by default).
ReplacePattern and ReplaceAll replace any number of non-overlapping matches
in a single pass over the text.

Text sources

Builders accept any textsource.Source as input: Go strings, UTF-8 bytes,
numbers, other builders, readers or files in a given encoding. Builders
themselves are sources.

Concurrency

Builders are not safe for concurrent use. Clients have to serialize access
to a builder by themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package textbuilder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuilder'
func tracer() tracing.Trace {
	return tracing.Select("textbuilder")
}

// BuilderError is an error type for the textbuilder module
type BuilderError string

func (e BuilderError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged whenever a builder configuration is unusable.
const ErrInvalidConfig = BuilderError("invalid builder configuration")

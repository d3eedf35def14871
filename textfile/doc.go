/*
Package textfile provides API helpers to load text files into builders.

Files are decoded in fragments by a background goroutine. Every fragment is
appended to the builder in file order and broadcast to subscribers as soon
as it is available, which lets clients start working on the head of a large
file while the rest is still loading.

	l, err := textfile.Open("large.txt", textfile.Options{Encoding: "utf-16le"})
	frags := l.Subscribe(ctx)
	go func() {
	    for f := range frags {
	        ...
	    }
	}()
	b, err := l.Load()

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuilder'
func tracer() tracing.Trace {
	return tracing.Select("textbuilder")
}

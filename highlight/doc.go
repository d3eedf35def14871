/*
Package highlight renders search matches within a text.

Console writes one line per match, prefixed by its position, with the
matched text coloured. Positions are reported as line and display column,
where columns count fixed-width positions on a terminal (East Asian wide
characters occupy two of them). HTML writes the whole text as an escaped
<pre> block with matches marked up.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package highlight

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuilder'
func tracer() tracing.Trace {
	return tracing.Select("textbuilder")
}

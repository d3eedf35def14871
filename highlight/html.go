package highlight

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTML writes a text as a <pre> block with matches wrapped into <mark>
// elements.
type HTML struct {
	Class string // class attribute of the <pre> element, may be empty
}

// Print writes units to w, escaping HTML special characters. Ranges have to
// be sorted and must not overlap; overlapping parts of later ranges are
// ignored.
func (h HTML) Print(w io.Writer, units []uint16, ranges []Range) error {
	var sb strings.Builder
	if h.Class != "" {
		fmt.Fprintf(&sb, "<pre class=\"%s\">", html.EscapeString(h.Class))
	} else {
		sb.WriteString("<pre>")
	}
	pos := 0
	for i, r := range ranges {
		start, end := max(r.Start, pos), min(r.End, len(units))
		if start >= end {
			continue
		}
		sb.WriteString(html.EscapeString(decode(units[pos:start])))
		fmt.Fprintf(&sb, "<mark id=\"m%d\">", i+1)
		sb.WriteString(html.EscapeString(decode(units[start:end])))
		sb.WriteString("</mark>")
		pos = end
	}
	sb.WriteString(html.EscapeString(decode(units[pos:])))
	sb.WriteString("</pre>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

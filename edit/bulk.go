package edit

import (
	"github.com/npillmayer/textbuilder/search"
	"github.com/npillmayer/textbuilder/store"
)

// ReplaceMatches replaces non-overlapping occurrences of pattern, searched
// from offset on, by replacement. At most limit occurrences are replaced;
// limit ≤ 0 replaces all of them. It returns the number of replacements.
func ReplaceMatches(buf *store.Buffer, pattern, replacement []uint16, offset, limit int) int {
	offset = Index(offset, buf.Len())
	matches := search.SkipAll(buf.Units(), pattern, offset, limit)
	if len(matches) == 0 {
		return 0
	}
	ReplaceAt(buf, matches, len(pattern), replacement)
	return len(matches)
}

// ReplaceAll replaces every non-overlapping occurrence of pattern.
func ReplaceAll(buf *store.Buffer, pattern, replacement []uint16) int {
	return ReplaceMatches(buf, pattern, replacement, 0, 0)
}

// ReplaceAt replaces the regions [m, m+patternLen) for every m in matches by
// replacement. matches must be ascending and the regions must not overlap.
//
// Equal lengths are overwritten in place and a single region is replaced by
// one shift and one copy. For several regions of differing length the result
// is assembled behind the content, in the spare capacity ("staging"): every
// gap between two regions is copied there once, followed by the replacement.
// The staged result is then moved to the front of the buffer. The buffer is
// grown to at least max(len(replacement), Len())*2 code units for this, and
// further if the staged result would not fit.
func ReplaceAt(buf *store.Buffer, matches []int, patternLen int, replacement []uint16) {
	if len(matches) == 0 {
		return
	}
	n := buf.Len()
	rl := len(replacement)
	final := n + len(matches)*(rl-patternLen)
	switch {
	case rl == patternLen:
		tracer().Debugf("edit: replacing %d regions in place", len(matches))
		for _, m := range matches {
			buf.Write(m, replacement)
		}
	case len(matches) == 1:
		buf.EnsureCapacity(final)
		start := matches[0]
		end := start + patternLen
		buf.Move(start+rl, end, n-end)
		buf.Write(start, replacement)
	default:
		tracer().Debugf("edit: staging %d replacements, length %d -> %d", len(matches), n, final)
		stage := max(rl, n)
		buf.EnsureCapacity(max(2*stage, stage+final))
		raw := buf.Raw()
		cursor, orig := stage, 0
		for _, m := range matches {
			cursor += copy(raw[cursor:], raw[orig:m])
			cursor += copy(raw[cursor:], replacement)
			orig = m + patternLen
		}
		copy(raw[cursor:], raw[orig:n])
		copy(raw[:final], raw[stage:stage+final])
	}
	buf.SetLen(final)
}

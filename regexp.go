package textbuilder

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/textbuilder/edit"
)

// Match is the code-unit range [Start, End) of a regular expression match.
type Match struct {
	Start, End int
}

// IndexOfRegExp returns the ranges of the leftmost non-overlapping matches
// of re, starting the search at offset. At most limit matches are reported;
// limit ≤ 0 means the configured search limit.
//
// The text is converted to UTF-8 for matching. Lone surrogates are matched
// as U+FFFD, spanning a single code unit.
func (b *Builder) IndexOfRegExp(re *regexp.Regexp, offset, limit int) []Match {
	if re == nil {
		return nil
	}
	units := b.Units()
	offset = edit.Index(offset, len(units))
	text, pos := toUTF8(units[offset:])
	found := re.FindAllStringIndex(text, b.limit(limit))
	if len(found) == 0 {
		return nil
	}
	matches := make([]Match, len(found))
	for i, loc := range found {
		matches[i] = Match{Start: offset + pos[loc[0]], End: offset + pos[loc[1]]}
	}
	return matches
}

// toUTF8 converts code units to a UTF-8 string together with a table
// mapping every byte offset at a rune boundary, and the end, to its
// code-unit offset.
func toUTF8(units []uint16) (string, []int) {
	var sb strings.Builder
	sb.Grow(len(units))
	pos := make([]int, 0, len(units)+1)
	var enc [utf8.UTFMax]byte
	for i := 0; i < len(units); {
		r, w := decodeAt(units, i)
		n := utf8.EncodeRune(enc[:], r)
		for k := 0; k < n; k++ {
			pos = append(pos, i)
		}
		sb.Write(enc[:n])
		i += w
	}
	pos = append(pos, len(units))
	return sb.String(), pos
}

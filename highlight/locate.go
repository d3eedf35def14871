package highlight

import (
	"sort"
	"sync"
	"unicode/utf16"

	"github.com/npillmayer/textbuilder/metrics"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Range is a code-unit range [Start, End) of a match.
type Range struct {
	Start, End int
}

// Ranges converts match offsets of a pattern of length patternLen to ranges.
// The result is sorted by start offset, as offsets from a reverse search
// come in descending order.
func Ranges(offsets []int, patternLen int) []Range {
	r := make([]Range, len(offsets))
	for i, o := range offsets {
		r[i] = Range{Start: o, End: o + patternLen}
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Start < r[j].Start })
	return r
}

// Hit is a match resolved to its position in the text.
type Hit struct {
	Range
	Line   int // 1-based line number of Start
	Column int // 1-based display column of Start
	// LineStart and LineEnd delimit the line containing Start, excluding
	// its newline.
	LineStart, LineEnd int
}

var setupOnce sync.Once

func setupGraphemes() {
	setupOnce.Do(grapheme.SetupGraphemeClasses)
}

// Locate resolves r to line and display column. lines has to be measured
// on units; ctx may be nil, in which case uax11.LatinContext is used.
func Locate(units []uint16, lines metrics.LinesValue, r Range, ctx *uax11.Context) Hit {
	line, _ := lines.Locate(r.Start)
	start, end := lines.Line(line)
	return Hit{
		Range:     r,
		Line:      line + 1,
		Column:    Width(units[start:r.Start], ctx) + 1,
		LineStart: start,
		LineEnd:   end,
	}
}

// Width returns the number of fixed-width display positions units occupy.
func Width(units []uint16, ctx *uax11.Context) int {
	if len(units) == 0 {
		return 0
	}
	return stringWidth(string(utf16.Decode(units)), ctx)
}

func stringWidth(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes()
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

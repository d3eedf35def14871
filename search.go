package textbuilder

import (
	"github.com/npillmayer/textbuilder/edit"
	"github.com/npillmayer/textbuilder/search"
	"github.com/npillmayer/textbuilder/textsource"
)

func (b *Builder) limit(limit int) int {
	if limit <= 0 {
		if b.cfg.SearchLimit > 0 {
			return b.cfg.SearchLimit
		}
		return search.DefaultLimit
	}
	return limit
}

func patternUnits(pattern textsource.Source) []uint16 {
	if pattern == nil {
		return nil
	}
	units, _ := pattern.CodeUnits()
	return units
}

// IndexOf returns the offsets of all occurrences of pattern, starting the
// search at offset. Occurrences may overlap. At most limit offsets are
// returned; limit ≤ 0 means the configured search limit (1000 by default).
// An empty pattern is never found.
func (b *Builder) IndexOf(pattern textsource.Source, offset, limit int) []int {
	units := b.Units()
	return search.Forward(units, patternUnits(pattern), edit.Index(offset, len(units)), b.limit(limit))
}

// IndexOfSkip is like IndexOf, but reports non-overlapping occurrences only.
func (b *Builder) IndexOfSkip(pattern textsource.Source, offset, limit int) []int {
	units := b.Units()
	return search.Skip(units, patternUnits(pattern), edit.Index(offset, len(units)), b.limit(limit))
}

// LastIndexOf returns the offsets of all occurrences of pattern in
// descending order. offset is the number of code units at the end of the
// text excluded from the search.
func (b *Builder) LastIndexOf(pattern textsource.Source, offset, limit int) []int {
	units := b.Units()
	return search.Reverse(units, patternUnits(pattern), edit.Index(offset, len(units)), b.limit(limit))
}

// StartsWith reports whether the text begins with prefix.
func (b *Builder) StartsWith(prefix textsource.Source) bool {
	return search.HasPrefix(b.Units(), patternUnits(prefix))
}

// EndsWith reports whether the text ends with suffix.
func (b *Builder) EndsWith(suffix textsource.Source) bool {
	return search.HasSuffix(b.Units(), patternUnits(suffix))
}

// Equals reports whether the text is equal to other, code unit by code unit.
func (b *Builder) Equals(other textsource.Source) bool {
	return search.Equal(b.Units(), patternUnits(other))
}

// EqualsIgnoreCase is like Equals, but ignores the case of ASCII letters.
func (b *Builder) EqualsIgnoreCase(other textsource.Source) bool {
	return search.EqualFoldASCII(b.Units(), patternUnits(other))
}

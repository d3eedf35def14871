package textbuilder

import (
	"github.com/npillmayer/textbuilder/edit"
	"github.com/npillmayer/textbuilder/textsource"
)

// All changers return the builder itself to allow chaining of operations.
// Indices are code-unit indices; negative indices count from the end and
// out-of-range indices are clamped.

// Append appends content.
func (b *Builder) Append(content textsource.Source) *Builder {
	edit.Append(b.buffer(), b.units(content))
	return b
}

// AppendString appends a Go string.
func (b *Builder) AppendString(s string) *Builder {
	return b.Append(textsource.String(s))
}

// AppendLine appends content followed by a line feed.
func (b *Builder) AppendLine(content textsource.Source) *Builder {
	edit.AppendLine(b.buffer(), b.units(content))
	return b
}

// AppendRepeat appends count copies of content. A count < 1 appends content
// once.
func (b *Builder) AppendRepeat(content textsource.Source, count int) *Builder {
	stats := edit.AppendRepeat(b.buffer(), b.units(content), count)
	tracer().Debugf("append-repeat: %d doubling rounds, %d linear copies", stats.Rounds, stats.Linear)
	return b
}

// Insert inserts content at offset.
func (b *Builder) Insert(offset int, content textsource.Source) *Builder {
	edit.Insert(b.buffer(), offset, b.units(content))
	return b
}

// Replace replaces the text in [start, end) with content. If start > end
// the builder is left unchanged.
func (b *Builder) Replace(start, end int, content textsource.Source) *Builder {
	edit.Replace(b.buffer(), start, end, b.units(content))
	return b
}

// Delete removes the text in [start, end).
func (b *Builder) Delete(start, end int) *Builder {
	edit.Delete(b.buffer(), start, end)
	return b
}

// DeleteCharAt removes the code unit at index.
func (b *Builder) DeleteCharAt(index int) *Builder {
	edit.DeleteAt(b.buffer(), index)
	return b
}

// Clear removes all text. The capacity is kept.
func (b *Builder) Clear() *Builder {
	b.buffer().Reset()
	return b
}

// Substring keeps only the text in [start, end).
func (b *Builder) Substring(start, end int) *Builder {
	edit.Substring(b.buffer(), start, end)
	return b
}

// Slice is an alias for Substring.
func (b *Builder) Slice(start, end int) *Builder {
	return b.Substring(start, end)
}

// Substr keeps only count code units, starting at start.
func (b *Builder) Substr(start, count int) *Builder {
	edit.Substr(b.buffer(), start, count)
	return b
}

// Trim removes white space and control characters from both ends of the
// text. Ideographic spaces (U+3000) are trimmed as well.
func (b *Builder) Trim() *Builder {
	edit.Trim(b.buffer())
	return b
}

// Reverse reverses the order of the code units. Surrogate pairs are not
// kept intact.
func (b *Builder) Reverse() *Builder {
	edit.Reverse(b.buffer())
	return b
}

// UpperCase maps ASCII letters to upper case.
func (b *Builder) UpperCase() *Builder {
	edit.UpperASCII(b.buffer())
	return b
}

// LowerCase maps ASCII letters to lower case.
func (b *Builder) LowerCase() *Builder {
	edit.LowerASCII(b.buffer())
	return b
}

// Repeat replaces the text by count copies of itself. A count < 1 leaves
// the builder unchanged.
func (b *Builder) Repeat(count int) *Builder {
	stats := edit.Repeat(b.buffer(), count)
	tracer().Debugf("repeat: %d doubling rounds, %d linear copies", stats.Rounds, stats.Linear)
	return b
}

// ReplacePattern replaces non-overlapping occurrences of pattern with
// replacement, searching from offset on. At most limit occurrences are
// replaced; limit ≤ 0 replaces all of them.
func (b *Builder) ReplacePattern(pattern, replacement textsource.Source, offset, limit int) *Builder {
	buf := b.buffer()
	n := edit.ReplaceMatches(buf, b.units(pattern), b.units(replacement), offset, limit)
	tracer().Debugf("replace: %d occurrences replaced", n)
	return b
}

// ReplaceAll replaces all non-overlapping occurrences of pattern with
// replacement.
func (b *Builder) ReplaceAll(pattern, replacement textsource.Source) *Builder {
	return b.ReplacePattern(pattern, replacement, 0, 0)
}

// ExpandCapacity makes sure the builder can hold at least n code units
// without reallocation. It returns the resulting capacity.
func (b *Builder) ExpandCapacity(n int) int {
	buf := b.buffer()
	buf.EnsureCapacity(n)
	return buf.Cap()
}

// ShrinkCapacity releases unused capacity down to the smallest multiple of
// the block size holding the text. It returns the resulting capacity.
func (b *Builder) ShrinkCapacity() int {
	return b.buffer().Shrink()
}

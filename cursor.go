package textbuilder

import (
	"unicode/utf16"
	"unicode/utf8"
)

// CharCursor navigates a builder by runes.
//
// Movement is in rune steps, while positions are code-unit offsets. A
// surrogate pair is a single step; a lone surrogate is a step of its own
// and reads as U+FFFD. The cursor reads the live content of its builder;
// after a change the cursor position is clamped to the new length, but it
// may point into the middle of a surrogate pair.
type CharCursor struct {
	b      *Builder
	offset int
	runes  int // runes passed since the last seek, may be negative
}

// NewCharCursor creates a cursor at the start of the text.
func (b *Builder) NewCharCursor() *CharCursor {
	return &CharCursor{b: b}
}

// Offset returns the current code-unit offset.
func (cc *CharCursor) Offset() int {
	cc.offset = min(cc.offset, cc.b.Len())
	return cc.offset
}

// Runes returns the number of runes moved forward (minus the runes moved
// backwards) since the last seek.
func (cc *CharCursor) Runes() int {
	return cc.runes
}

// Seek moves the cursor to a code-unit offset. Negative offsets count from
// the end.
func (cc *CharCursor) Seek(offset int) {
	n := cc.b.Len()
	if offset < 0 {
		offset += n
	}
	cc.offset = max(0, min(offset, n))
	cc.runes = 0
}

// SeekRunes moves the cursor to absolute rune offset n. If the text has
// fewer runes, the cursor stops at the end and ok is false.
func (cc *CharCursor) SeekRunes(n int) (ok bool) {
	cc.Seek(0)
	for cc.runes < n {
		if _, ok := cc.Next(); !ok {
			return false
		}
	}
	return true
}

// Next returns the rune at the current cursor position and advances by one
// rune. If the cursor is at the end of the text, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	units := cc.b.Units()
	if cc.Offset() >= len(units) {
		return 0, false
	}
	r, w := decodeAt(units, cc.offset)
	cc.offset += w
	cc.runes++
	return r, true
}

// Prev returns the rune before the current cursor position and moves back
// by one rune. If the cursor is at the start of the text, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	units := cc.b.Units()
	if cc.Offset() == 0 {
		return 0, false
	}
	i := cc.offset - 1
	if utf16.IsSurrogate(rune(units[i])) && i > 0 {
		if dec := utf16.DecodeRune(rune(units[i-1]), rune(units[i])); dec != utf8.RuneError {
			cc.offset -= 2
			cc.runes--
			return dec, true
		}
	}
	r = rune(units[i])
	if utf16.IsSurrogate(r) {
		r = utf8.RuneError
	}
	cc.offset--
	cc.runes--
	return r, true
}

// decodeAt decodes the rune starting at code unit i, returning the rune
// and the number of code units it occupies.
func decodeAt(units []uint16, i int) (rune, int) {
	r := rune(units[i])
	if !utf16.IsSurrogate(r) {
		return r, 1
	}
	if i+1 < len(units) {
		if dec := utf16.DecodeRune(r, rune(units[i+1])); dec != utf8.RuneError {
			return dec, 2
		}
	}
	return utf8.RuneError, 1
}

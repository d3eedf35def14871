package textbuilder

import (
	"unicode/utf16"

	"github.com/npillmayer/textbuilder/edit"
	"github.com/npillmayer/textbuilder/metrics"
	"github.com/npillmayer/textbuilder/store"
	"github.com/npillmayer/textbuilder/textsource"
)

// Builder is a mutable text buffer of UTF-16 code units.
//
// The zero value is an empty builder ready to use, with the default
// configuration. A Builder must not be copied after first use; use Clone
// instead.
type Builder struct {
	buf *store.Buffer
	cfg Config
}

// New creates a builder holding content, with room for at least
// initialCapacity code units. content may be nil.
func New(content textsource.Source, initialCapacity int) *Builder {
	b, err := NewWithConfig(DefaultConfig(), content, initialCapacity)
	if err != nil {
		panic(err) // the default configuration is valid
	}
	return b
}

// NewWithConfig is like New, but uses a custom configuration.
func NewWithConfig(cfg Config, content textsource.Source, initialCapacity int) (*Builder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	var units []uint16
	if content != nil {
		units, _ = content.CodeUnits()
	}
	return &Builder{
		buf: store.New(cfg.blockUnits(), units, initialCapacity),
		cfg: cfg,
	}, nil
}

// FromString creates a builder holding s.
func FromString(s string) *Builder {
	return New(textsource.String(s), 0)
}

// buffer returns the store, creating it for a zero value builder.
func (b *Builder) buffer() *store.Buffer {
	if b.buf == nil {
		b.cfg = b.cfg.normalized()
		b.buf = store.New(b.cfg.blockUnits(), nil, 0)
	}
	return b.buf
}

// units returns the code units of src, ready to be written into b.
// Borrowed views into b's own allocation are copied first.
func (b *Builder) units(src textsource.Source) []uint16 {
	if src == nil {
		return nil
	}
	units, owned := src.CodeUnits()
	if !owned && b.buffer().Overlaps(units) {
		units = append([]uint16(nil), units...)
	}
	return units
}

// Len returns the length of the text in code units.
func (b *Builder) Len() int {
	if b.buf == nil {
		return 0
	}
	return b.buf.Len()
}

// Cap returns the capacity in code units.
func (b *Builder) Cap() int {
	return b.buffer().Cap()
}

// Units returns the text as code units. The slice aliases the builder and
// is valid until the next change.
func (b *Builder) Units() []uint16 {
	return b.buffer().Units()
}

// CodeUnits makes a builder a textsource.Source. The view is borrowed.
func (b *Builder) CodeUnits() ([]uint16, bool) {
	return b.Units(), false
}

// CharAt returns the code unit at index as a string. Negative indices count
// from the end. At and behind the end of the text the result is empty.
// A lone surrogate yields U+FFFD.
func (b *Builder) CharAt(index int) string {
	c, ok := b.CodeUnitAt(index)
	if !ok {
		return ""
	}
	return string(utf16.Decode([]uint16{c}))
}

// CodeUnitAt returns the code unit at index, with negative indices counting
// from the end. ok is false if the index resolves to the end of the text.
func (b *Builder) CodeUnitAt(index int) (c uint16, ok bool) {
	units := b.Units()
	index = edit.Index(index, len(units))
	if index == len(units) {
		return 0, false
	}
	return units[index], true
}

// String returns the text as a Go string.
func (b *Builder) String() string {
	return string(utf16.Decode(b.Units()))
}

// StringRange returns the text in [start, end) as a Go string.
func (b *Builder) StringRange(start, end int) string {
	units := b.Units()
	start, end = edit.Index(start, len(units)), edit.Index(end, len(units))
	if start >= end {
		return ""
	}
	return string(utf16.Decode(units[start:end]))
}

// Bytes returns the text in [start, end) encoded as UTF-8.
func (b *Builder) Bytes(start, end int) []byte {
	return []byte(b.StringRange(start, end))
}

// Clone returns an independent builder with the same content, capacity and
// configuration.
func (b *Builder) Clone() *Builder {
	return &Builder{
		buf: b.buffer().Clone(),
		cfg: b.cfg,
	}
}

// Count returns the number of words in the text. Runs of ASCII letters
// count as words, runs of digits (with at most one decimal point) as
// numbers, and every code unit above U+007F counts on its own.
func (b *Builder) Count() int {
	return metrics.Words().Apply(b.Units()).WordCount()
}

package store

import "math/bits"

const (
	// BlockBytes is the default allocation granularity in bytes.
	BlockBytes = 256
	// BlockUnits is BlockBytes expressed in UTF-16 code units.
	BlockUnits = BlockBytes / 2
)

const maxInt = int(^uint(0) >> 1)

// Buffer is a growable array of UTF-16 code units.
//
// The zero value is not usable; clients call New.
type Buffer struct {
	data   []uint16 // len(data) is the capacity
	length int      // content is data[:length]
	block  int      // growth granularity in code units
}

// ValidBlock reports whether n is usable as a block size in code units.
func ValidBlock(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// New creates a buffer holding a copy of content.
//
// The capacity is max(capacity, len(content)), rounded up to the next
// multiple of block, and at least one block. New panics with
// ErrInvalidBlockSize if block is not a positive power of two.
func New(block int, content []uint16, capacity int) *Buffer {
	if !ValidBlock(block) {
		panic(ErrInvalidBlockSize)
	}
	if capacity < len(content) {
		capacity = len(content)
	}
	capacity = roundUp(capacity, block)
	if capacity == 0 {
		capacity = block
	}
	b := &Buffer{
		data:  make([]uint16, capacity),
		block: block,
	}
	b.length = copy(b.data, content)
	return b
}

// Len returns the number of code units in use.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the number of code units allocated.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Block returns the growth granularity in code units.
func (b *Buffer) Block() int {
	return b.block
}

// Units returns the content. The slice aliases the buffer and is valid only
// until the next mutating call.
func (b *Buffer) Units() []uint16 {
	return b.data[:b.length]
}

// Raw returns the whole allocation, including the headroom behind the
// content. Like Units, it is invalidated by growth.
func (b *Buffer) Raw() []uint16 {
	return b.data
}

// SetLen sets the content length. n must not exceed Cap().
func (b *Buffer) SetLen(n int) {
	if n < 0 || n > len(b.data) {
		panic(ErrLength)
	}
	b.length = n
}

// Reset drops the content but keeps the allocation.
func (b *Buffer) Reset() {
	b.length = 0
}

// EnsureCapacity makes sure at least n code units are allocated.
// If n ≤ Cap() it does nothing. Otherwise the allocation is extended by the
// smallest number of whole blocks covering n and the content is copied
// to the front of the new allocation.
func (b *Buffer) EnsureCapacity(n int) {
	capacity := len(b.data)
	if n <= capacity {
		return
	}
	count := (n - capacity + b.block - 1) / b.block
	if count > (maxInt-capacity)/b.block {
		panic(ErrTooLarge)
	}
	newCap := capacity + count*b.block
	tracer().Debugf("store: growing buffer from %d to %d code units", capacity, newCap)
	data := make([]uint16, newCap)
	copy(data, b.data[:b.length])
	b.data = data
}

// Shrink reallocates the buffer down to the smallest block multiple holding
// the content (at least one block), if that is smaller than the current
// capacity. It returns the resulting capacity.
func (b *Buffer) Shrink() int {
	newCap := roundUp(b.length, b.block)
	if newCap == 0 {
		newCap = b.block
	}
	if newCap < len(b.data) {
		tracer().Debugf("store: shrinking buffer from %d to %d code units", len(b.data), newCap)
		data := make([]uint16, newCap)
		copy(data, b.data[:b.length])
		b.data = data
	}
	return len(b.data)
}

// Clone returns an independent copy with the same capacity.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		data:   make([]uint16, len(b.data)),
		length: b.length,
		block:  b.block,
	}
	copy(c.data, b.data[:b.length])
	return c
}

// Move copies n code units from src to dst inside the allocation.
// Overlapping ranges are handled like memmove.
func (b *Buffer) Move(dst, src, n int) {
	if n <= 0 {
		return
	}
	copy(b.data[dst:dst+n], b.data[src:src+n])
}

// Write copies units into the allocation at offset at. It does not change
// the content length and does not grow the buffer.
func (b *Buffer) Write(at int, units []uint16) {
	copy(b.data[at:at+len(units)], units)
}

// Append adds units behind the content.
func (b *Buffer) Append(units []uint16) {
	n := b.length + len(units)
	b.EnsureCapacity(n)
	copy(b.data[b.length:n], units)
	b.length = n
}

// Insert shifts the tail [at, Len()) right by len(units) and copies units
// into the gap. Offset at must be within [0, Len()].
func (b *Buffer) Insert(at int, units []uint16) {
	if at == b.length {
		b.Append(units)
		return
	}
	n := b.length + len(units)
	b.EnsureCapacity(n)
	b.Move(at+len(units), at, b.length-at)
	copy(b.data[at:], units)
	b.length = n
}

// Remove deletes the range [start, end). The range must be within the content.
func (b *Buffer) Remove(start, end int) {
	if start >= end {
		return
	}
	if end == b.length {
		b.length = start
		return
	}
	b.Move(start, end, b.length-end)
	b.length -= end - start
}

func roundUp(n, block int) int {
	if n <= 0 {
		return 0
	}
	count := (n + block - 1) / block
	if count > maxInt/block {
		panic(ErrTooLarge)
	}
	return count * block
}

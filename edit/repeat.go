package edit

import (
	"math/bits"

	"github.com/npillmayer/textbuilder/store"
)

// RepeatStats tells how a repetition was carried out: Rounds doubling
// copies followed by Linear plain appends of the base run.
type RepeatStats struct {
	Rounds int
	Linear int
}

// Repeat replaces the content by count copies of itself.
// A count < 1 leaves the buffer unchanged.
//
// With k = floor(log2(count)), k doubling rounds copy the accumulated run
// behind itself, yielding 2^k copies; the remaining count - 2^k copies are
// appended one by one.
func Repeat(buf *store.Buffer, count int) RepeatStats {
	n := buf.Len()
	if count < 1 || n == 0 {
		return RepeatStats{}
	}
	final := mulLen(n, count)
	buf.EnsureCapacity(final)
	stats := replicate(buf.Raw(), 0, n, count)
	buf.SetLen(final)
	return stats
}

// AppendRepeat appends count copies of content. Unlike Repeat, a count < 1
// is treated as 1.
func AppendRepeat(buf *store.Buffer, content []uint16, count int) RepeatStats {
	if count < 1 {
		count = 1
	}
	if len(content) == 0 {
		return RepeatStats{}
	}
	base := buf.Len()
	final := base + mulLen(len(content), count)
	if final < base {
		panic(store.ErrTooLarge)
	}
	buf.EnsureCapacity(final)
	buf.Write(base, content)
	stats := replicate(buf.Raw(), base, len(content), count)
	buf.SetLen(final)
	return stats
}

// replicate expects one copy of the run raw[base:base+l] and extends it to
// count copies.
func replicate(raw []uint16, base, l, count int) RepeatStats {
	k := bits.Len(uint(count)) - 1
	acc := l
	for i := 1; i <= k; i++ {
		copy(raw[base+acc:base+2*acc], raw[base:base+acc])
		acc *= 2
	}
	linear := count - 1<<k
	for i := 0; i < linear; i++ {
		copy(raw[base+acc:base+acc+l], raw[base:base+l])
		acc += l
	}
	return RepeatStats{Rounds: k, Linear: linear}
}

func mulLen(l, count int) int {
	hi, lo := bits.Mul(uint(l), uint(count))
	if hi != 0 || lo > uint(^uint(0)>>1) {
		panic(store.ErrTooLarge)
	}
	return int(lo)
}

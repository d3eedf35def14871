package search

import "sync"

// shiftTable maps every 16-bit code unit to a shift distance.
//
// Entries are stored biased by one, a zero entry standing for the default
// shift (the pattern length). This lets a recycled table be cleaned by
// resetting only the entries a pattern has touched.
type shiftTable struct {
	shifts  [1 << 16]int32
	touched []uint16
	deflt   int
	special uint16 // code unit the special shift belongs to
	sshift  int    // special shift
}

var tablePool = sync.Pool{
	New: func() any {
		return &shiftTable{touched: make([]uint16, 0, 64)}
	},
}

// forwardTable builds the table for left-to-right matching: code units of
// pattern[:m-1] map to their distance from the pattern end, the last code
// unit maps to zero.
func forwardTable(pattern []uint16) *shiftTable {
	t := acquire(len(pattern))
	last := len(pattern) - 1
	for i := 0; i < last; i++ {
		t.set(pattern[i], last-i)
	}
	t.special = pattern[last]
	t.sshift = t.shift(t.special)
	t.set(t.special, 0)
	return t
}

// reverseTable is the mirror of forwardTable: code units of pattern[1:]
// map to their distance from the pattern start, the first code unit maps
// to zero.
func reverseTable(pattern []uint16) *shiftTable {
	t := acquire(len(pattern))
	for i := len(pattern) - 1; i > 0; i-- {
		t.set(pattern[i], i)
	}
	t.special = pattern[0]
	t.sshift = t.shift(t.special)
	t.set(t.special, 0)
	return t
}

func acquire(deflt int) *shiftTable {
	t := tablePool.Get().(*shiftTable)
	t.deflt = deflt
	return t
}

func (t *shiftTable) release() {
	for _, c := range t.touched {
		t.shifts[c] = 0
	}
	t.touched = t.touched[:0]
	tablePool.Put(t)
}

func (t *shiftTable) set(c uint16, shift int) {
	if t.shifts[c] == 0 {
		t.touched = append(t.touched, c)
	}
	t.shifts[c] = int32(shift) + 1
}

func (t *shiftTable) shift(c uint16) int {
	if s := t.shifts[c]; s != 0 {
		return int(s) - 1
	}
	return t.deflt
}

// stare is the shift used for the code unit at the mismatch position.
func (t *shiftTable) stare(c uint16) int {
	if c == t.special {
		return t.sshift
	}
	return t.shift(c)
}

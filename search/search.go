package search

import "math"

// DefaultLimit is the number of matches Forward, Skip and Reverse report at
// most when called with a non-positive limit.
const DefaultLimit = 1000

// MaxNonOverlapping is the limit SkipAll applies when called with a
// non-positive limit: the largest number of non-overlapping matches a source
// of length n can hold for a pattern of length m.
func MaxNonOverlapping(n, m int) int {
	if m <= 0 {
		return 0
	}
	return n / m
}

// Forward returns the start offsets of occurrences of pattern in source,
// in ascending order, starting the search at offset. Occurrences may
// overlap. At most limit offsets are returned; limit ≤ 0 means DefaultLimit.
func Forward(source, pattern []uint16, offset, limit int) []int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return scanForward(source, pattern, offset, limit, false)
}

// Skip is like Forward, but after a match the search resumes behind the
// matched region, so the reported occurrences never overlap.
func Skip(source, pattern []uint16, offset, limit int) []int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return scanForward(source, pattern, offset, limit, true)
}

// SkipAll is the Skip matcher used for bulk replacement. A non-positive
// limit means MaxNonOverlapping(len(source), len(pattern)), i.e. no
// effective limit at all.
func SkipAll(source, pattern []uint16, offset, limit int) []int {
	if limit <= 0 {
		limit = MaxNonOverlapping(len(source), len(pattern))
	}
	return scanForward(source, pattern, offset, limit, true)
}

// Reverse returns the start offsets of occurrences of pattern in source,
// in descending order. The last offset code units of source are excluded
// from the search. At most limit offsets are returned; limit ≤ 0 means
// DefaultLimit.
func Reverse(source, pattern []uint16, offset, limit int) []int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	n, m := len(source), len(pattern)
	if !searchable(n, m, offset) {
		return nil
	}
	t := reverseTable(pattern)
	defer t.release()
	last := m - 1
	matches := make([]int, 0, min(limit, 16))
	sp := n - 1 - last - offset // start of the current window
	for sp >= 0 {
		pp := 0
		for pp < m && source[sp] == pattern[pp] {
			sp++
			pp++
		}
		stare := sp
		matched := pp + 1
		sp -= matched
		if pp >= m {
			matches = append(matches, sp+1)
			if sp < 0 || len(matches) == limit {
				break
			}
			sp -= t.shift(source[sp])
			continue
		}
		shift1 := 0
		if sp >= 0 {
			shift1 = t.shift(source[sp])
		}
		if shift1 >= last {
			sp -= shift1
			continue
		}
		shift2 := t.stare(source[stare]) - matched
		sp -= max(shift1, shift2)
	}
	return matches
}

func scanForward(source, pattern []uint16, offset, limit int, skip bool) []int {
	n, m := len(source), len(pattern)
	if !searchable(n, m, offset) || limit <= 0 {
		return nil
	}
	t := forwardTable(pattern)
	defer t.release()
	last := m - 1
	matches := make([]int, 0, min(limit, 16))
	sp := offset + last // end of the current window
	for sp < n {
		pp := last
		for pp >= 0 && source[sp] == pattern[pp] {
			sp--
			pp--
		}
		stare := sp
		matched := m - pp
		sp += matched // one past the window
		if pp < 0 {
			matches = append(matches, stare+1)
			if sp >= n || len(matches) == limit {
				break
			}
			if skip {
				sp += last
			} else {
				sp += t.shift(source[sp])
			}
			continue
		}
		shift1 := 0
		if sp < n {
			shift1 = t.shift(source[sp])
		}
		if shift1 >= last {
			sp += shift1
			continue
		}
		shift2 := t.stare(source[stare]) - matched
		sp += max(shift1, shift2)
	}
	return matches
}

func searchable(n, m, offset int) bool {
	return m > 0 && m < math.MaxInt32 && offset >= 0 && n-offset >= m
}

package search

import (
	"math/rand"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestSkipScenario(t *testing.T) {
	got := Skip(u("abcabcabc"), u("bc"), 0, 0)
	assert.Equal(t, []int{1, 4, 7}, got)
}

func TestForwardReportsOverlappingMatches(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Forward(u("aaaa"), u("aa"), 0, 0))
	assert.Equal(t, []int{0, 2}, Skip(u("aaaa"), u("aa"), 0, 0))
	assert.Equal(t, []int{2, 1, 0}, Reverse(u("aaaa"), u("aa"), 0, 0))
}

func TestForwardOffsetAndLimit(t *testing.T) {
	src := u("one two one two one")
	assert.Equal(t, []int{0, 8, 16}, Forward(src, u("one"), 0, 0))
	assert.Equal(t, []int{8, 16}, Forward(src, u("one"), 1, 0))
	assert.Equal(t, []int{0, 8}, Forward(src, u("one"), 0, 2))
	assert.Equal(t, []int{16}, Forward(src, u("one"), 16, 0))
}

func TestReverseOrderAndOffset(t *testing.T) {
	src := u("abab")
	assert.Equal(t, []int{2, 0}, Reverse(src, u("ab"), 0, 0))
	// skipping the last code unit excludes the match at 2
	assert.Equal(t, []int{0}, Reverse(src, u("ab"), 1, 0))
	assert.Equal(t, []int{2}, Reverse(src, u("ab"), 0, 1))
}

func TestEmptyResults(t *testing.T) {
	src := u("hello")
	assert.Empty(t, Forward(src, nil, 0, 0))
	assert.Empty(t, Forward(src, u("l"), -1, 0))
	assert.Empty(t, Forward(src, u("hello world"), 0, 0))
	assert.Empty(t, Forward(src, u("lo"), 4, 0))
	assert.Empty(t, Reverse(src, u("xyz"), 0, 0))
	assert.Empty(t, Skip(src, u("q"), 0, 0))
	assert.Empty(t, SkipAll(nil, u("q"), 0, 0))
}

func TestSingleUnitPattern(t *testing.T) {
	src := u("hello")
	assert.Equal(t, []int{2, 3}, Forward(src, u("l"), 0, 0))
	assert.Equal(t, []int{3, 2}, Reverse(src, u("l"), 0, 0))
	assert.Equal(t, []int{4}, Forward(src, u("o"), 0, 0))
	assert.Equal(t, []int{0}, Reverse(src, u("h"), 0, 0))
}

func TestDefaultLimits(t *testing.T) {
	src := make([]uint16, 3000)
	for i := range src {
		src[i] = 'x'
	}
	pattern := u("x")
	assert.Len(t, Forward(src, pattern, 0, 0), DefaultLimit)
	assert.Len(t, Skip(src, pattern, 0, 0), DefaultLimit)
	assert.Len(t, Reverse(src, pattern, 0, 0), DefaultLimit)
	assert.Len(t, SkipAll(src, pattern, 0, 0), 3000)
	assert.Len(t, SkipAll(src, u("xx"), 0, 0), 1500)
	assert.Len(t, SkipAll(src, pattern, 0, 7), 7)
	assert.Equal(t, 1500, MaxNonOverlapping(3000, 2))
	assert.Equal(t, 0, MaxNonOverlapping(3000, 0))
}

func TestSurrogatePairsMatchAsCodeUnits(t *testing.T) {
	src := u("a😀b😀")
	assert.Equal(t, []int{1, 4}, Forward(src, u("😀"), 0, 0))
	// a lone low surrogate matches the second half of each pair
	low := u("😀")[1:]
	assert.Equal(t, []int{2, 5}, Forward(src, low, 0, 0))
}

func TestMatchersAgreeWithBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	alphabet := []uint16{'a', 'b', 'c', 0x3000, 0xd83d}
	gen := func(n int) []uint16 {
		s := make([]uint16, n)
		for i := range s {
			s[i] = alphabet[rnd.Intn(len(alphabet))]
		}
		return s
	}
	for round := 0; round < 2000; round++ {
		src := gen(rnd.Intn(40))
		pat := gen(1 + rnd.Intn(4))
		offset := 0
		if len(src) > 0 {
			offset = rnd.Intn(len(src))
		}
		limit := rnd.Intn(5)
		require.Equal(t, naiveForward(src, pat, offset, limit, false), Forward(src, pat, offset, limit),
			"forward src=%v pat=%v offset=%d limit=%d", src, pat, offset, limit)
		require.Equal(t, naiveForward(src, pat, offset, limit, true), Skip(src, pat, offset, limit),
			"skip src=%v pat=%v offset=%d limit=%d", src, pat, offset, limit)
		require.Equal(t, naiveReverse(src, pat, offset, limit), Reverse(src, pat, offset, limit),
			"reverse src=%v pat=%v offset=%d limit=%d", src, pat, offset, limit)
	}
}

func TestPooledTablesAreClean(t *testing.T) {
	// a long pattern touches many table entries; a later short pattern must
	// not see any of them
	long := u("zyxwvutsrqponmlkjihgfedcba")
	_ = Forward(u("the quick brown fox jumps over the lazy dog"), long, 0, 0)
	_ = Reverse(u("the quick brown fox jumps over the lazy dog"), long, 0, 0)
	assert.Equal(t, []int{4}, Forward(u("the quick"), u("q"), 0, 0))
	assert.Equal(t, []int{16}, Forward(u("the quick brown fox"), u("fox"), 0, 0))
}

func TestCompareHelpers(t *testing.T) {
	assert.True(t, HasPrefix(u("hello"), u("he")))
	assert.True(t, HasPrefix(u("hello"), nil))
	assert.False(t, HasPrefix(u("he"), u("hello")))
	assert.True(t, HasSuffix(u("hello"), u("llo")))
	assert.False(t, HasSuffix(u("hello"), u("hel")))
	assert.True(t, Equal(u("abc"), u("abc")))
	assert.False(t, Equal(u("abc"), u("abd")))
	assert.True(t, EqualFoldASCII(u("Hello, World"), u("hELLO, wORLD")))
	assert.False(t, EqualFoldASCII(u("Straße"), u("STRASSE")))
	assert.False(t, EqualFoldASCII(u("é"), u("É")))
}

// --- reference implementations ---------------------------------------------

func naiveForward(src, pat []uint16, offset, limit int, skip bool) []int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(pat) == 0 || offset < 0 || len(src)-offset < len(pat) {
		return nil
	}
	res := []int{}
	for i := offset; i+len(pat) <= len(src) && len(res) < limit; i++ {
		if Equal(src[i:i+len(pat)], pat) {
			res = append(res, i)
			if skip {
				i += len(pat) - 1
			}
		}
	}
	return res
}

func naiveReverse(src, pat []uint16, offset, limit int) []int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(pat) == 0 || offset < 0 || len(src)-offset < len(pat) {
		return nil
	}
	res := []int{}
	for i := len(src) - offset - len(pat); i >= 0 && len(res) < limit; i-- {
		if Equal(src[i:i+len(pat)], pat) {
			res = append(res, i)
		}
	}
	return res
}

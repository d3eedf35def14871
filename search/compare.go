package search

// HasPrefix reports whether source starts with prefix.
func HasPrefix(source, prefix []uint16) bool {
	return len(prefix) <= len(source) && Equal(source[:len(prefix)], prefix)
}

// HasSuffix reports whether source ends with suffix.
func HasSuffix(source, suffix []uint16) bool {
	return len(suffix) <= len(source) && Equal(source[len(source)-len(suffix):], suffix)
}

// Equal reports whether a and b hold the same code units.
func Equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualFoldASCII is like Equal, but treats 'a'…'z' and 'A'…'Z' as equal.
// No other case mapping is applied.
func EqualFoldASCII(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if UpperASCII(a[i]) != UpperASCII(b[i]) {
			return false
		}
	}
	return true
}

// UpperASCII maps 'a'…'z' to 'A'…'Z' and leaves any other code unit alone.
func UpperASCII(c uint16) uint16 {
	if c >= 'a' && c <= 'z' {
		return c - 32
	}
	return c
}

// LowerASCII maps 'A'…'Z' to 'a'…'z' and leaves any other code unit alone.
func LowerASCII(c uint16) uint16 {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

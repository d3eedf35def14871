package edit

import (
	"github.com/npillmayer/textbuilder/store"
)

const newline = 0x000a

// Index resolves a code-unit index against a content length.
// Negative indices count from the end; results are clamped to [0, length].
func Index(i, length int) int {
	if i < 0 {
		i += length
	}
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// Insert inserts content at offset.
func Insert(buf *store.Buffer, offset int, content []uint16) {
	buf.Insert(Index(offset, buf.Len()), content)
}

// Append appends content.
func Append(buf *store.Buffer, content []uint16) {
	buf.Append(content)
}

// AppendLine appends content followed by a line feed.
func AppendLine(buf *store.Buffer, content []uint16) {
	n := buf.Len()
	buf.EnsureCapacity(n + len(content) + 1)
	buf.Write(n, content)
	buf.Raw()[n+len(content)] = newline
	buf.SetLen(n + len(content) + 1)
}

// Delete removes the range [start, end).
func Delete(buf *store.Buffer, start, end int) {
	n := buf.Len()
	start, end = Index(start, n), Index(end, n)
	if start >= end {
		return
	}
	buf.Remove(start, end)
}

// DeleteAt removes the code unit at index. Deleting at the end of the
// content does nothing.
func DeleteAt(buf *store.Buffer, index int) {
	n := buf.Len()
	index = Index(index, n)
	if index == n {
		return
	}
	buf.Remove(index, index+1)
}

// Replace replaces the range [start, end) with content. A range with
// start > end leaves the buffer unchanged.
//
// If the range reaches the end of the content or content has the length of
// the range, content is copied over the range directly. Otherwise the tail is
// shifted to its final position first.
func Replace(buf *store.Buffer, start, end int, content []uint16) {
	n := buf.Len()
	start, end = Index(start, n), Index(end, n)
	if start > end {
		return
	}
	newLen := n + len(content) - (end - start)
	buf.EnsureCapacity(newLen)
	if end != n && len(content) != end-start {
		buf.Move(start+len(content), end, n-end)
	}
	buf.Write(start, content)
	buf.SetLen(newLen)
}

// Substring truncates the content to the range [start, end), moving it to
// the front of the buffer. start ≥ end empties the buffer.
func Substring(buf *store.Buffer, start, end int) {
	n := buf.Len()
	start, end = Index(start, n), Index(end, n)
	keep(buf, start, end)
}

// Substr truncates the content to count code units starting at start.
// A non-positive count empties the buffer; count is clamped to the
// available content.
func Substr(buf *store.Buffer, start, count int) {
	n := buf.Len()
	start = Index(start, n)
	if count <= 0 {
		buf.SetLen(0)
		return
	}
	if count > n-start {
		count = n - start
	}
	keep(buf, start, start+count)
}

// Trim removes leading and trailing code units which are ≤ U+0020 or equal
// to U+3000 (ideographic space).
func Trim(buf *store.Buffer) {
	units := buf.Units()
	start, end := 0, len(units)
	for start < end && trimmable(units[start]) {
		start++
	}
	for end > start && trimmable(units[end-1]) {
		end--
	}
	keep(buf, start, end)
}

func keep(buf *store.Buffer, start, end int) {
	if start >= end {
		buf.SetLen(0)
		return
	}
	if start > 0 {
		buf.Move(0, start, end-start)
	}
	buf.SetLen(end - start)
}

func trimmable(c uint16) bool {
	return c <= 32 || c == 0x3000
}

// Reverse reverses the order of the code units.
//
// The buffer is first grown to hold at least twice its content. Each code
// unit is then mirrored from the front into the tail of the allocation,
// i.e. unit i goes to Cap()-1-i, and finally the reversed run
// [Cap()-Len(), Cap()) is moved to the front. Mirroring into the tail of the
// capacity, not of the content, keeps source and destination disjoint.
// Surrogate pairs are reversed like any other code units.
func Reverse(buf *store.Buffer) {
	n := buf.Len()
	if n < 2 {
		return
	}
	buf.EnsureCapacity(2 * n)
	raw := buf.Raw()
	last := len(raw) - 1
	for i := 0; i < n; i++ {
		raw[last-i] = raw[i]
	}
	copy(raw[:n], raw[len(raw)-n:])
}

// UpperASCII maps 'a'…'z' to 'A'…'Z'.
func UpperASCII(buf *store.Buffer) {
	units := buf.Units()
	for i, c := range units {
		if c >= 'a' && c <= 'z' {
			units[i] = c - 32
		}
	}
}

// LowerASCII maps 'A'…'Z' to 'a'…'z'.
func LowerASCII(buf *store.Buffer) {
	units := buf.Units()
	for i, c := range units {
		if c >= 'A' && c <= 'Z' {
			units[i] = c + 32
		}
	}
}

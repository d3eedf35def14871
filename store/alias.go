package store

import "unsafe"

// Overlaps reports whether units shares memory with the allocation of b.
// Sources handing out borrowed views of a buffer are detected this way,
// including views of b itself.
func (b *Buffer) Overlaps(units []uint16) bool {
	if len(units) == 0 || len(b.data) == 0 {
		return false
	}
	const size = unsafe.Sizeof(uint16(0))
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	hi := lo + uintptr(len(b.data))*size
	x := uintptr(unsafe.Pointer(unsafe.SliceData(units)))
	y := x + uintptr(len(units))*size
	return x < hi && lo < y
}

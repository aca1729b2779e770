package raw

import "unsafe"

const (
	WordByteSize = int(unsafe.Sizeof(uintptr(0)))
)

func isWordAligned(p *byte) bool {
	return uintptr(unsafe.Pointer(p))%uintptr(WordByteSize) == 0
}

// copyWords moves len(dst) bytes from src to dst front to back, one machine word
// at a time whenever both cursors are word aligned and the remaining length is a
// whole number of words, one byte otherwise. Both slices must have the same
// length and must not overlap.
func copyWords(dst, src []byte) {
	offset := 0
	for remaining := len(dst); remaining > 0; {
		if remaining%WordByteSize == 0 && isWordAligned(&dst[offset]) && isWordAligned(&src[offset]) {
			*(*uintptr)(unsafe.Pointer(&dst[offset])) = *(*uintptr)(unsafe.Pointer(&src[offset]))
			offset += WordByteSize
			remaining -= WordByteSize
			continue
		}

		dst[offset] = src[offset]
		offset++
		remaining--
	}
}

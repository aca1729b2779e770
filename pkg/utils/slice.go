package utils

import (
	"bytes"
	"unsafe"
)

// StringTakeOverByteArray converts a byte array to a string without making a copy.
// The caller must ensure that the byte array provided is not modified after this call.
func StringTakeOverByteArray(data []byte) string {
	return unsafe.String(unsafe.SliceData(data), len(data))
}

// ByteArrayFromString converts a string to a byte array without making a copy.
// The caller must ensure that the returned byte array is not modified after this call.
// An empty string gives an empty, non-nil slice.
func ByteArrayFromString(s string) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// CString returns a zeroed buffer of the given size holding s followed by a zero
// terminator. The size is raised to fit s and its terminator when too small.
func CString(s string, size int) []byte {
	size = max(size, len(s)+1)
	buffer := make([]byte, size)
	copy(buffer, s)
	return buffer
}

// CStringLen returns the number of bytes before the first zero byte,
// or len(b) if there is none.
func CStringLen(b []byte) int {
	if idx := bytes.IndexByte(b, 0); idx >= 0 {
		return idx
	}
	return len(b)
}

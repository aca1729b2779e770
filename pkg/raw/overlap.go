package raw

import (
	"fmt"
	"unsafe"
)

type OverlapMode int

const (
	// OverlapExact treats both regions as n bytes long and reports any shared byte.
	OverlapExact OverlapMode = iota
	// OverlapLegacy reproduces the asymmetric check of the C routine: dst starting
	// strictly inside (src, src+n) or src starting strictly inside (dst, dst+len(dst)).
	// Identical start addresses are not reported.
	OverlapLegacy
)

func (m OverlapMode) String() string {
	switch m {
	case OverlapExact:
		return "exact"
	case OverlapLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("OverlapMode(%d)", int(m))
	}
}

// ParseOverlapMode is the inverse of OverlapMode.String.
func ParseOverlapMode(s string) (OverlapMode, error) {
	switch s {
	case "exact":
		return OverlapExact, nil
	case "legacy":
		return OverlapLegacy, nil
	default:
		return 0, fmt.Errorf("unknown overlap mode %q, want exact or legacy", s)
	}
}

func address(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// Overlaps reports whether dst[:n] and src[:n] share at least one byte of memory.
// Each span is clamped to the bytes its slice holds. Non-positive n never overlaps.
func Overlaps(dst, src []byte, n int) bool {
	if n <= 0 || dst == nil || src == nil {
		return false
	}

	dstSpan, srcSpan := uintptr(min(n, len(dst))), uintptr(min(n, len(src)))
	if dstSpan == 0 || srcSpan == 0 {
		return false
	}

	d, s := address(dst), address(src)
	return d < s+srcSpan && s < d+dstSpan
}

// OverlapsLegacy reports overlap the way the C routine did, using n for the
// source span and the destination length for the destination span.
// The source span is clamped to len(src).
func OverlapsLegacy(dst, src []byte, n int) bool {
	if n <= 0 || dst == nil || src == nil {
		return false
	}

	d, s := address(dst), address(src)
	srcSpan := uintptr(min(n, len(src)))
	return (d > s && d < s+srcSpan) || (s > d && s < d+uintptr(len(dst)))
}

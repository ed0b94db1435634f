//go:build race

package opt

import (
	"sync/atomic"
	"unsafe"
)

// Race_ under race detector. Assembly fences are invisible to the detector,
// so harnesses keep their shared flags on sync/atomic and shrink round
// counts.
const Race_ = true

// LoadInt conservative: atomic integer load to satisfy race detector
//
//go:nosplit
func LoadInt[T ~uint32 | ~uint64](addr *T) T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(addr))))
	}
	return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(addr))))
}

// StoreInt conservative: atomic integer store to satisfy race detector
//
//go:nosplit
func StoreInt[T ~uint32 | ~uint64](addr *T, val T) {
	if unsafe.Sizeof(T(0)) == 4 {
		atomic.StoreUint32((*uint32)(unsafe.Pointer(addr)), uint32(val))
	} else {
		atomic.StoreUint64((*uint64)(unsafe.Pointer(addr)), uint64(val))
	}
}

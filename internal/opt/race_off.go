//go:build !race

package opt

const Race_ = false

// LoadInt is a plain load. It carries no ordering of its own; callers pair it
// with an explicit barrier, and spin loops must contain a call the compiler
// cannot see through so the load is repeated.
//
//go:nosplit
func LoadInt[T ~uint32 | ~uint64](addr *T) T {
	return *addr
}

// StoreInt is a plain store.
//
//go:nosplit
func StoreInt[T ~uint32 | ~uint64](addr *T, val T) {
	*addr = val
}

// Package arch holds the architecture backends behind the public barrier
// functions.
//
// Exactly one backend is compiled into a binary. Assembly backends exist for
// 386/amd64, arm, arm64 and riscv64; every other GOARCH, and any build with
// the mbarrier_noasm tag, uses the generic backend built on sync/atomic.
//
// Every backend provides the same set of functions:
//
//	Rmb                 load/load ordering
//	Wmb                 store/store ordering
//	Mb                  full ordering
//	ReadBarrierDepends  ordering of dependent loads (may be empty)
//	CompilerRmb         compiler-only fences, no hardware instruction
//	CompilerWmb
//	CompilerMb
//
// Assembly routines are never inlined, so a call to one is also a compiler
// barrier: the Go compiler does not move loads or stores across calls.
package arch

// Table names the instruction emitted for each slot of a backend.
type Table struct {
	Rmb                string
	Wmb                string
	Mb                 string
	ReadBarrierDepends string
	Compiler           string
}

const (
	// CompilerFence is the Table entry for a slot that only constrains the
	// compiler.
	CompilerFence = "compiler fence"
	// None is the Table entry for a slot that emits nothing.
	None = "none"
)

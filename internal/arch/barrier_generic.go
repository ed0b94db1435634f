//go:build !(386 || amd64 || arm || arm64 || riscv64) || mbarrier_noasm

package arch

import (
	"sync/atomic"

	"github.com/llxisdsh/mbarrier/internal/opt"
)

// Family of the compiled backend.
const Family = "generic"

// Instructions emitted by this backend.
var Instructions = Table{
	Rmb:                "atomic load",
	Wmb:                "atomic store",
	Mb:                 "atomic add",
	ReadBarrierDepends: "atomic add",
	Compiler:           CompilerFence,
}

// fenceWord is the target of the atomic operations standing in for fence
// instructions. It sits on its own cache line so barrier traffic never
// contends with caller data.
var fenceWord struct {
	_ opt.Pad_
	v atomic.Uint64
	_ opt.Pad_
}

// Rmb has acquire ordering.
func Rmb() {
	fenceWord.v.Load()
}

// Wmb has release ordering.
func Wmb() {
	fenceWord.v.Store(0)
}

// Mb has sequentially consistent ordering.
func Mb() {
	fenceWord.v.Add(0)
}

// ReadBarrierDepends is a full barrier: nothing is known about dependent
// load ordering on an unrecognized architecture.
func ReadBarrierDepends() {
	Mb()
}

//go:noinline
func CompilerRmb() {}

//go:noinline
func CompilerWmb() {}

//go:noinline
func CompilerMb() {}

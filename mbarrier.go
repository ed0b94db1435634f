package mbarrier

import (
	"github.com/llxisdsh/mbarrier/internal/arch"
	"github.com/llxisdsh/mbarrier/internal/opt"
)

// SMP reports whether the Smp* barriers emit hardware fences. It is false
// only when built with the mbarrier_up tag.
const SMP = opt.SMP_

// Rmb is a read memory barrier.
//
// Loads issued before Rmb are ordered ahead of loads issued after it, on the
// calling core. Stores are not affected.
func Rmb() {
	arch.Rmb()
}

// Wmb is a write memory barrier.
//
// Stores issued before Wmb are ordered ahead of stores issued after it, on
// the calling core. Loads are not affected.
func Wmb() {
	arch.Wmb()
}

// Mb is a general memory barrier.
//
// All loads and stores issued before Mb are ordered ahead of all loads and
// stores issued after it.
func Mb() {
	arch.Mb()
}

// SmpRmb is Rmb on SMP builds and a compiler-only fence on UP builds.
func SmpRmb() {
	if opt.SMP_ {
		arch.Rmb()
	} else {
		arch.CompilerRmb()
	}
}

// SmpWmb is Wmb on SMP builds and a compiler-only fence on UP builds.
func SmpWmb() {
	if opt.SMP_ {
		arch.Wmb()
	} else {
		arch.CompilerWmb()
	}
}

// SmpMb is Mb on SMP builds and a compiler-only fence on UP builds.
func SmpMb() {
	if opt.SMP_ {
		arch.Mb()
	} else {
		arch.CompilerMb()
	}
}

// ReadBarrierDepends orders a load through a pointer after the load that
// produced the pointer. It is empty where the hardware already keeps
// dependent loads in order (x86) and never compiles away to nothing where it
// does not.
func ReadBarrierDepends() {
	arch.ReadBarrierDepends()
}

// SmpReadBarrierDepends is ReadBarrierDepends on SMP builds and does nothing
// on UP builds.
func SmpReadBarrierDepends() {
	if opt.SMP_ {
		arch.ReadBarrierDepends()
	}
}

// RmbBeforeConditional is Rmb. Use it right before evaluating a condition
// whose inputs another core may have written.
func RmbBeforeConditional() {
	Rmb()
}

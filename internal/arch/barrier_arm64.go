//go:build !mbarrier_noasm

package arch

// Family of the compiled backend.
const Family = "arm64"

// Instructions emitted by this backend.
var Instructions = Table{
	Rmb:                "DSB LD",
	Wmb:                "DSB ST",
	Mb:                 "DSB SY",
	ReadBarrierDepends: "DSB LD",
	Compiler:           CompilerFence,
}

// Rmb emits DSB LD.
func Rmb()

// Wmb emits DSB ST.
func Wmb()

// Mb emits DSB SY.
func Mb()

// ReadBarrierDepends emits the same DSB LD as Rmb; arm64 has no separate
// dependency barrier.
func ReadBarrierDepends()

func CompilerRmb()

func CompilerWmb()

func CompilerMb()

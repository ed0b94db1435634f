//go:build !mbarrier_noasm

package arch

// Family of the compiled backend.
const Family = "riscv"

// Instructions emitted by this backend.
var Instructions = Table{
	Rmb:                "FENCE R,R",
	Wmb:                "FENCE W,W",
	Mb:                 "FENCE RW,RW",
	ReadBarrierDepends: "FENCE R,R",
	Compiler:           CompilerFence,
}

// Rmb emits FENCE R,R.
func Rmb()

// Wmb emits FENCE W,W.
func Wmb()

// Mb emits FENCE RW,RW.
func Mb()

// ReadBarrierDepends emits FENCE R,R. RVWMO does not promise that dependent
// loads stay in order.
func ReadBarrierDepends()

func CompilerRmb()

func CompilerWmb()

func CompilerMb()

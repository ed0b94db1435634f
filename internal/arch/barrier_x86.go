//go:build (386 || amd64) && !mbarrier_noasm

package arch

// Family of the compiled backend.
const Family = "x86"

// Instructions emitted by this backend.
var Instructions = Table{
	Rmb:                CompilerFence,
	Wmb:                "SFENCE",
	Mb:                 "MFENCE",
	ReadBarrierDepends: None,
	Compiler:           CompilerFence,
}

// Rmb emits no instruction. x86 never reorders loads with older loads, so
// only the compiler has to be held back.
func Rmb()

// Wmb emits SFENCE. Ordinary stores are already ordered on x86; SFENCE also
// covers non-temporal and write-combining stores.
func Wmb()

// Mb emits MFENCE.
func Mb()

// ReadBarrierDepends is empty: dependent loads are ordered by hardware.
//
//go:nosplit
func ReadBarrierDepends() {}

func CompilerRmb()

func CompilerWmb()

func CompilerMb()

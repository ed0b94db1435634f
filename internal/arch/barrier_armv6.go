//go:build arm && !arm.7 && !mbarrier_noasm

package arch

// Instructions emitted by this backend. Cores before ARMv7 have no DMB;
// the CP15 barrier operations are used instead.
var Instructions = Table{
	Rmb:                "MCR p15, c7, c10, 5",
	Wmb:                "MCR p15, c7, c10, 4",
	Mb:                 "MCR p15, c7, c10, 5",
	ReadBarrierDepends: "MCR p15, c7, c10, 5",
	Compiler:           CompilerFence,
}

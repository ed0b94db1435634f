//go:build arm && arm.7 && !mbarrier_noasm

package arch

// Instructions emitted by this backend. ARMv7 has no load-only DMB option;
// reserved options execute as DMB SY there, so DMB LD is still correct and
// becomes the cheaper load barrier on ARMv8 cores running 32-bit code.
var Instructions = Table{
	Rmb:                "DMB LD",
	Wmb:                "DMB ST",
	Mb:                 "DMB SY",
	ReadBarrierDepends: "DMB ISH",
	Compiler:           CompilerFence,
}

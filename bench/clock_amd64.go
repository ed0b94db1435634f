//go:build !mbarrier_noasm

package bench

// Now returns the time stamp counter. This should only be compared across
// calls on a CPU with an invariant TSC.
func Now() int64

// Unit names what Now counts.
func Unit() string { return "cycles" }

// TicksPerSecond is unknown for the TSC and reported as zero.
func TicksPerSecond() int64 { return 0 }

//go:build !mbarrier_noasm

package bench

// Now returns the time CSR. Its frequency is platform defined and not
// readable from user mode.
func Now() int64

// Unit names what Now counts.
func Unit() string { return "ticks" }

// TicksPerSecond is unknown for the time CSR and reported as zero.
func TicksPerSecond() int64 { return 0 }

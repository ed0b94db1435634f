//go:build !mbarrier_noasm

package bench

// Now returns the virtual count of the generic timer.
func Now() int64

// Unit names what Now counts.
func Unit() string { return "ticks" }

// TicksPerSecond returns the generic timer frequency.
func TicksPerSecond() int64

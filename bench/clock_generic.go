//go:build !(amd64 || arm64 || riscv64) || mbarrier_noasm

package bench

import "time"

// Now returns the current nanosecond.
func Now() int64 {
	return time.Now().UnixNano()
}

// Unit names what Now counts.
func Unit() string { return "ns" }

// TicksPerSecond returns 1e9.
func TicksPerSecond() int64 { return int64(time.Second) }

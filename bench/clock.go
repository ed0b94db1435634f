package bench

import "time"

// Duration converts a difference of two Now calls into a time.Duration
// given the clock rate in ticks per second. For example, at 2.2GHz clock
// should be 2,200,000,000. A non-positive clock returns zero.
func Duration(delta, clock int64) time.Duration {
	if clock <= 0 {
		return 0
	}
	// 1e9 * delta / clock is nanoseconds
	return time.Duration(1e9 * float64(delta) / float64(clock))
}

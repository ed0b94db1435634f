//go:build !mbarrier_up

package opt

// SMP_ reports whether the build targets systems where more than one core
// may observe shared memory. This is the default.
// Use: go build -tags=mbarrier_up to build for a single core.
const SMP_ = true

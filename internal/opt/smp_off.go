//go:build mbarrier_up

package opt

// SMP_ is false: built with the mbarrier_up tag for a uniprocessor target.
// The Smp* barriers degrade to compiler-only fences.
const SMP_ = false

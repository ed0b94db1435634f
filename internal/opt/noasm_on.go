//go:build mbarrier_noasm

package opt

// NoAsm_ is true when assembly backends are disabled via the mbarrier_noasm
// build tag and every architecture uses the generic backend.
// Use: go build -tags=mbarrier_noasm
const NoAsm_ = true

//go:build !mbarrier_noasm

package opt

const NoAsm_ = false

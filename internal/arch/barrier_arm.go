//go:build !mbarrier_noasm

package arch

// Family of the compiled backend.
const Family = "arm"

// Rmb orders loads. See Instructions for the encoding picked by GOARM.
func Rmb()

// Wmb orders stores.
func Wmb()

// Mb orders all memory accesses.
func Mb()

// ReadBarrierDepends orders dependent loads. ARM mostly keeps address
// dependencies in order but does not guarantee it.
func ReadBarrierDepends()

func CompilerRmb()

func CompilerWmb()

func CompilerMb()

// Command caller links every barrier so the codegen test can disassemble
// them from a cross-built binary.
package main

import "github.com/llxisdsh/mbarrier/internal/arch"

func main() {
	arch.Rmb()
	arch.Wmb()
	arch.Mb()
	arch.ReadBarrierDepends()
	arch.CompilerRmb()
	arch.CompilerWmb()
	arch.CompilerMb()
}

package mbarrier

import (
	"runtime"

	"github.com/llxisdsh/mbarrier/internal/arch"
	"github.com/llxisdsh/mbarrier/internal/opt"
)

// Backend describes the barrier implementation compiled into this binary.
type Backend struct {
	// Arch is runtime.GOARCH.
	Arch string
	// Family is the backend family: "x86", "arm", "arm64", "riscv" or
	// "generic".
	Family string
	// SMP mirrors the SMP constant.
	SMP bool
	// NoAsm is true when the mbarrier_noasm tag forced the generic backend.
	NoAsm bool
	// Instructions maps every valid Op to the instruction it emits.
	Instructions map[Op]string
}

// Active returns the backend compiled into this binary.
func Active() Backend {
	t := arch.Instructions
	b := Backend{
		Arch:   runtime.GOARCH,
		Family: arch.Family,
		SMP:    opt.SMP_,
		NoAsm:  opt.NoAsm_,
		Instructions: map[Op]string{
			OpRmb:                  t.Rmb,
			OpWmb:                  t.Wmb,
			OpMb:                   t.Mb,
			OpReadBarrierDepends:   t.ReadBarrierDepends,
			OpRmbBeforeConditional: t.Rmb,
		},
	}
	if opt.SMP_ {
		b.Instructions[OpSmpRmb] = t.Rmb
		b.Instructions[OpSmpWmb] = t.Wmb
		b.Instructions[OpSmpMb] = t.Mb
		b.Instructions[OpSmpReadBarrierDepends] = t.ReadBarrierDepends
	} else {
		b.Instructions[OpSmpRmb] = t.Compiler
		b.Instructions[OpSmpWmb] = t.Compiler
		b.Instructions[OpSmpMb] = t.Compiler
		b.Instructions[OpSmpReadBarrierDepends] = arch.None
	}
	return b
}

// Instruction returns what op emits on this backend.
func (b Backend) Instruction(op Op) string {
	return b.Instructions[op]
}

// HardwareFence reports whether op emits a hardware fence rather than
// nothing or a compiler-only fence.
func (b Backend) HardwareFence(op Op) bool {
	switch ins := b.Instructions[op]; ins {
	case "", arch.None, arch.CompilerFence:
		return false
	default:
		return true
	}
}

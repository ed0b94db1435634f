package mbarrier

import (
	"strconv"
	"strings"
)

// Op identifies one of the barrier functions. It exists for tooling that
// needs to name barriers (benchmarks, litmus tests, the CLI); the barrier
// functions themselves never dispatch on it.
type Op uint8

const (
	// OpInvalid is the zero Op and names no barrier.
	OpInvalid Op = iota
	OpRmb
	OpWmb
	OpMb
	OpSmpRmb
	OpSmpWmb
	OpSmpMb
	OpReadBarrierDepends
	OpSmpReadBarrierDepends
	OpRmbBeforeConditional

	opCount
)

var opInfo = [opCount]struct {
	name   string // Go name
	kernel string // kernel-style name
	fn     func()
}{
	OpInvalid:               {"Invalid", "invalid", nil},
	OpRmb:                   {"Rmb", "rmb", Rmb},
	OpWmb:                   {"Wmb", "wmb", Wmb},
	OpMb:                    {"Mb", "mb", Mb},
	OpSmpRmb:                {"SmpRmb", "smp_rmb", SmpRmb},
	OpSmpWmb:                {"SmpWmb", "smp_wmb", SmpWmb},
	OpSmpMb:                 {"SmpMb", "smp_mb", SmpMb},
	OpReadBarrierDepends:    {"ReadBarrierDepends", "read_barrier_depends", ReadBarrierDepends},
	OpSmpReadBarrierDepends: {"SmpReadBarrierDepends", "smp_read_barrier_depends", SmpReadBarrierDepends},
	OpRmbBeforeConditional:  {"RmbBeforeConditional", "rmb_before_conditional", RmbBeforeConditional},
}

// String returns the Go function name of op.
func (op Op) String() string {
	if op >= opCount {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opInfo[op].name
}

// KernelName returns the Linux-style name of op, e.g. "smp_rmb".
func (op Op) KernelName() string {
	if op >= opCount {
		return ""
	}
	return opInfo[op].kernel
}

// Valid reports whether op names a barrier.
func (op Op) Valid() bool {
	return op > OpInvalid && op < opCount
}

// Func returns the barrier function for op, or nil if op is not valid.
func (op Op) Func() func() {
	if !op.Valid() {
		return nil
	}
	return opInfo[op].fn
}

// Ops returns every valid Op in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, opCount-1)
	for op := OpInvalid + 1; op < opCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ParseOp looks up an Op by Go name ("SmpRmb") or kernel name ("smp_rmb").
// Matching ignores case.
func ParseOp(s string) (Op, bool) {
	for op := OpInvalid + 1; op < opCount; op++ {
		if strings.EqualFold(s, opInfo[op].name) || strings.EqualFold(s, opInfo[op].kernel) {
			return op, true
		}
	}
	return OpInvalid, false
}

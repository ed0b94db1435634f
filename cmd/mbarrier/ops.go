package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/llxisdsh/mbarrier"
)

// parseOps resolves op names given as arguments or comma-separated flag
// values. No names means every op.
func parseOps(names []string) ([]mbarrier.Op, error) {
	var ops []mbarrier.Op
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			op, ok := mbarrier.ParseOp(part)
			if !ok {
				return nil, usageErrorf("unknown barrier %q", part)
			}
			ops = append(ops, op)
		}
	}
	if len(ops) == 0 {
		return mbarrier.Ops(), nil
	}
	return ops, nil
}

// parseOptionalOp is parseOps for a single flag where "none" and "" mean no
// barrier.
func parseOptionalOp(name string) (mbarrier.Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return mbarrier.OpInvalid, nil
	}
	op, ok := mbarrier.ParseOp(name)
	if !ok {
		return mbarrier.OpInvalid, usageErrorf("unknown barrier %q", name)
	}
	return op, nil
}

// opValue is a flag holding one barrier or none.
type opValue mbarrier.Op

var _ pflag.Value = (*opValue)(nil)

func newOpValue(def mbarrier.Op, p *mbarrier.Op) *opValue {
	*p = def
	return (*opValue)(p)
}

func (v *opValue) Set(s string) error {
	op, err := parseOptionalOp(s)
	if err != nil {
		return err
	}
	*v = opValue(op)
	return nil
}

func (v *opValue) String() string {
	if op := mbarrier.Op(*v); op.Valid() {
		return op.KernelName()
	}
	return "none"
}

func (v *opValue) Type() string {
	return "barrier"
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llxisdsh/mbarrier"
	"github.com/llxisdsh/mbarrier/internal/logging"
)

func init() {
	var runCmd = cobra.Command{
		Use:   "run [barrier...]",
		Short: "Execute barriers once each (all when none given)",

		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOps(args)
			if err != nil {
				return err
			}
			return Run(cmd.OutOrStdout(), ops)
		},
	}
	rootCmd.AddCommand(&runCmd)
}

// Run calls each op once and reports it.
func Run(w io.Writer, ops []mbarrier.Op) error {
	b := mbarrier.Active()
	for _, op := range ops {
		f := op.Func()
		if f == nil {
			return usageErrorf("invalid barrier %v", op)
		}
		f()
		logging.Default().WithOp(op.String()).Debug("executed", "instruction", b.Instruction(op))
		fmt.Fprintf(w, "%s executed (%s)\n", op.KernelName(), b.Instruction(op))
	}
	return nil
}

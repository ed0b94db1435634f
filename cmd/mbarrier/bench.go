package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llxisdsh/mbarrier/bench"
	"github.com/llxisdsh/mbarrier/internal/logging"
)

var benchFlags struct {
	iterations int
	repeat     int
	workers    int
	ops        []string
}

func init() {
	var benchCmd = cobra.Command{
		Use:   "bench",
		Short: "Measure the cost of each barrier",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOps(benchFlags.ops)
			if err != nil {
				return err
			}
			if benchFlags.iterations <= 0 {
				return usageErrorf("--iterations must be positive")
			}
			cfg := bench.DefaultConfig()
			cfg.Ops = ops
			cfg.Iterations = benchFlags.iterations
			cfg.Repeat = benchFlags.repeat
			cfg.Workers = benchFlags.workers
			return Bench(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	flags := benchCmd.Flags()
	flags.IntVarP(&benchFlags.iterations, "iterations", "n", getEnvInt(envIterations), "iterations per sample")
	flags.IntVar(&benchFlags.repeat, "repeat", 3, "samples per op and worker")
	flags.IntVarP(&benchFlags.workers, "workers", "w", 1, "concurrent workers (0 = GOMAXPROCS)")
	flags.StringSliceVar(&benchFlags.ops, "ops", nil, "barriers to measure (default all)")

	rootCmd.AddCommand(&benchCmd)
}

// Bench runs the benchmark and prints one row per op.
func Bench(ctx context.Context, w io.Writer, cfg bench.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rep, err := bench.Run(ctx, cfg)
	if err != nil {
		return err
	}

	hz := bench.TicksPerSecond()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "OP\t%s/op\tmin\tmax\tns/op\tsamples\n", rep.Unit)
	for _, r := range rep.Sorted() {
		ns := "-"
		if hz > 0 {
			ns = fmt.Sprintf("%.2f", r.PerOp*1e9/float64(hz))
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%s\t%d\n", r.Op, r.PerOp, r.MinOp, r.MaxOp, ns, r.Samples)
	}
	fmt.Fprintf(tw, "\n%d workers, %d iterations per sample, %v\n", rep.Workers, rep.Iterations, rep.Elapsed)
	if err := tw.Flush(); err != nil {
		return err
	}
	logging.Default().Infof("bench: %d ops in %v", len(rep.Sorted()), rep.Elapsed)
	return nil
}

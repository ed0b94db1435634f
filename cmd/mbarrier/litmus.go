package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/llxisdsh/mbarrier"
	"github.com/llxisdsh/mbarrier/internal/logging"
	"github.com/llxisdsh/mbarrier/litmus"
)

var litmusFlags struct {
	rounds     int
	slots      int
	timeout    time.Duration
	write      mbarrier.Op
	read       mbarrier.Op
	noBarriers bool
}

func init() {
	var litmusCmd = cobra.Command{
		Use:   "litmus",
		Short: "Run the message-passing litmus test",
		Long: `Run the message-passing litmus test.

A producer writes data, runs the write barrier and raises a flag; a consumer
waits for the flag, runs the read barrier and checks the data. With both
barriers present any stale read is an ordering violation (exit status 2).
With --no-barriers the outcome depends on the architecture and is only
reported.`,
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := litmus.DefaultConfig()
			cfg.Rounds = litmusFlags.rounds
			cfg.Slots = litmusFlags.slots
			cfg.Timeout = litmusFlags.timeout
			if litmusFlags.noBarriers {
				cfg.Barriers = litmus.NoBarriers
			} else {
				cfg.Barriers = litmus.Pair{Write: litmusFlags.write, Read: litmusFlags.read}
			}
			return Litmus(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	def := litmus.DefaultConfig()
	flags := litmusCmd.Flags()
	flags.IntVarP(&litmusFlags.rounds, "rounds", "r", getEnvInt(envRounds), "messages to pass")
	flags.IntVar(&litmusFlags.slots, "slots", def.Slots, "independent message slots")
	flags.DurationVar(&litmusFlags.timeout, "timeout", def.Timeout, "overall time limit")
	flags.Var(newOpValue(def.Barriers.Write, &litmusFlags.write), "write", "producer barrier (or none)")
	flags.Var(newOpValue(def.Barriers.Read, &litmusFlags.read), "read", "consumer barrier (or none)")
	flags.BoolVar(&litmusFlags.noBarriers, "no-barriers", false, "remove both barriers (unsafe, architecture dependent)")

	rootCmd.AddCommand(&litmusCmd)
}

// Litmus runs the test and prints its outcome.
func Litmus(ctx context.Context, w io.Writer, cfg litmus.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !cfg.Barriers.Fenced() {
		logging.Warn("running without a barrier on both sides; results carry no guarantee",
			"barriers", cfg.Barriers.String())
	}
	res, err := litmus.Run(ctx, cfg)
	if litmus.IsCode(err, litmus.CodeInvalidConfig) {
		return err
	}
	fmt.Fprintf(w, "%s mp %s: %d rounds, %d stale, %v\n",
		litmusStatus(res, err), res.Barriers, res.Rounds, res.Mismatches, res.Elapsed.Round(time.Microsecond))
	if err == nil {
		logging.Info("litmus finished", "barriers", res.Barriers.String(), "rounds", res.Rounds)
	}
	return err
}

func litmusStatus(res litmus.Result, err error) string {
	switch {
	case litmus.IsCode(err, litmus.CodeTimeout):
		return failColor("TIMEOUT")
	case litmus.IsCode(err, litmus.CodeCanceled):
		return failColor("CANCELED")
	case res.Passed():
		return fenceColor("PASS")
	case res.Barriers.Fenced():
		return failColor("FAIL")
	default:
		return compilerColor("STALE")
	}
}

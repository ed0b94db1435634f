// Package bench measures the cost of the mbarrier barriers.
//
// Every measurement runs the barrier in a tight loop through a function
// value and subtracts an identical loop around an empty function, so the
// reported cost is the barrier alone. Absolute numbers depend heavily on the
// CPU and on the memory traffic around the barrier; compare them only
// within one machine.
package bench

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/llxisdsh/pb"
	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/mbarrier"
	"github.com/llxisdsh/mbarrier/internal/logging"
	"github.com/llxisdsh/mbarrier/internal/opt"
)

// Sample is one measurement of one op.
type Sample struct {
	Op         mbarrier.Op
	Iterations int
	// Ticks spent in the barrier loop, in Unit().
	Ticks int64
	// Baseline is the cost of the same loop around an empty function.
	Baseline int64
}

// Net is Ticks minus Baseline, floored at zero.
func (s Sample) Net() int64 {
	return max(s.Ticks-s.Baseline, 0)
}

// PerOp is the net cost of a single call.
func (s Sample) PerOp() float64 {
	if s.Iterations <= 0 {
		return 0
	}
	return float64(s.Net()) / float64(s.Iterations)
}

//go:noinline
func nop() {}

func loop(f func(), n int) int64 {
	start := Now()
	for i := 0; i < n; i++ {
		f()
	}
	return Now() - start
}

// Measure runs op iterations times. An invalid op or a non-positive
// iteration count returns an empty Sample.
func Measure(op mbarrier.Op, iterations int) Sample {
	f := op.Func()
	if f == nil || iterations <= 0 {
		return Sample{Op: op}
	}
	return Sample{
		Op:         op,
		Iterations: iterations,
		Baseline:   loop(nop, iterations),
		Ticks:      loop(f, iterations),
	}
}

// Stats accumulates samples of one op. Safe for concurrent use.
type Stats struct {
	Samples    atomic.Uint64
	Iterations atomic.Uint64
	NetTicks   atomic.Uint64
	// MinNet and MaxNet are per-sample net ticks.
	MinNet atomic.Uint64
	MaxNet atomic.Uint64
	_      opt.Pad_
}

func newStats() *Stats {
	s := &Stats{}
	s.MinNet.Store(math.MaxUint64)
	return s
}

// Record adds a sample.
func (s *Stats) Record(sm Sample) {
	net := uint64(sm.Net())
	s.Samples.Add(1)
	s.Iterations.Add(uint64(sm.Iterations))
	s.NetTicks.Add(net)
	for {
		cur := s.MinNet.Load()
		if net >= cur || s.MinNet.CompareAndSwap(cur, net) {
			break
		}
	}
	for {
		cur := s.MaxNet.Load()
		if net <= cur || s.MaxNet.CompareAndSwap(cur, net) {
			break
		}
	}
}

// PerOp is the average net cost of a single call over all samples.
func (s *Stats) PerOp() float64 {
	it := s.Iterations.Load()
	if it == 0 {
		return 0
	}
	return float64(s.NetTicks.Load()) / float64(it)
}

// Config controls Run.
type Config struct {
	// Ops to measure; empty means every op.
	Ops []mbarrier.Op
	// Iterations per sample.
	Iterations int
	// Repeat is the number of samples each worker takes per op.
	Repeat int
	// Workers measuring concurrently; zero means GOMAXPROCS.
	Workers int
	// Logger receives progress; nil uses logging.Default.
	Logger *logging.Logger
}

// DefaultConfig mirrors the one-million-iteration runs of the CLI.
func DefaultConfig() Config {
	return Config{
		Iterations: 1_000_000,
		Repeat:     3,
		Workers:    1,
	}
}

// Row is one line of a Report.
type Row struct {
	Op      mbarrier.Op
	Samples uint64
	PerOp   float64
	MinOp   float64
	MaxOp   float64
}

// Report collects the results of Run.
type Report struct {
	Unit       string
	Workers    int
	Iterations int
	Elapsed    time.Duration

	stats pb.MapOf[mbarrier.Op, *Stats]
}

// Stats returns the accumulated stats for op, or nil.
func (r *Report) Stats(op mbarrier.Op) *Stats {
	s, _ := r.stats.Load(op)
	return s
}

func (r *Report) record(sm Sample) {
	s, _ := r.stats.LoadOrStore(sm.Op, newStats())
	s.Record(sm)
}

// Sorted returns one Row per measured op in Op order.
func (r *Report) Sorted() []Row {
	var rows []Row
	r.stats.Range(func(op mbarrier.Op, s *Stats) bool {
		row := Row{Op: op, Samples: s.Samples.Load(), PerOp: s.PerOp()}
		if n := s.Samples.Load(); n > 0 && r.Iterations > 0 {
			row.MinOp = float64(s.MinNet.Load()) / float64(r.Iterations)
			row.MaxOp = float64(s.MaxNet.Load()) / float64(r.Iterations)
		}
		rows = append(rows, row)
		return true
	})
	slices.SortFunc(rows, func(a, b Row) int {
		return int(a.Op) - int(b.Op)
	})
	return rows
}

// Run measures cfg.Ops on cfg.Workers goroutines. Each worker takes
// cfg.Repeat samples of every op. Run stops early when ctx is done.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("bench: iterations must be positive, got %d", cfg.Iterations)
	}
	ops := cfg.Ops
	if len(ops) == 0 {
		ops = mbarrier.Ops()
	}
	for _, op := range ops {
		if !op.Valid() {
			return nil, fmt.Errorf("bench: invalid op %v", op)
		}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	repeat := max(cfg.Repeat, 1)
	log := cfg.Logger
	if log == nil {
		log = logging.Default()
	}

	rep := &Report{Unit: Unit(), Workers: workers, Iterations: cfg.Iterations}
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		wlog := log.WithWorker(w)
		g.Go(func() error {
			for range repeat {
				for _, op := range ops {
					if err := gctx.Err(); err != nil {
						return err
					}
					sm := Measure(op, cfg.Iterations)
					rep.record(sm)
					wlog.WithOp(op.String()).Debug("sample",
						"per_op", sm.PerOp(), "unit", rep.Unit)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rep, fmt.Errorf("bench: %w", err)
	}
	rep.Elapsed = time.Since(start)
	return rep, nil
}

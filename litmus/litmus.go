// Package litmus runs the message-passing litmus test against the barriers
// of package mbarrier.
//
// A producer writes a value into a slot, issues a write barrier and raises
// the slot's flag. A consumer waits for the flag, issues a read barrier and
// reads the value back. With both barriers in place the consumer must see
// the producer's value in every round on every architecture. Without them
// nothing is guaranteed: the test may still pass on strongly ordered
// hardware, so mismatches are only counted, never asserted.
//
// Data and flag are plain memory words, so the barriers under test carry all
// of the ordering. Spin loops call a compiler fence so the flag load is
// repeated. Under -race the flag falls back to sync/atomic, which orders the
// accesses by itself: race builds check the harness, not the hardware.
package litmus

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/mbarrier"
	"github.com/llxisdsh/mbarrier/internal/arch"
	"github.com/llxisdsh/mbarrier/internal/logging"
	"github.com/llxisdsh/mbarrier/internal/opt"
)

const testName = "mp"

// spinCheck is how many spin iterations, and rounds, pass between context
// checks.
const spinCheck = 1 << 10

// Pair is the barrier placed on each side of the message-passing test. An
// OpInvalid member means no barrier on that side.
type Pair struct {
	Write mbarrier.Op
	Read  mbarrier.Op
}

var (
	// SmpPair is the canonical pairing.
	SmpPair = Pair{Write: mbarrier.OpSmpWmb, Read: mbarrier.OpSmpRmb}
	// NoBarriers removes both barriers. Unsafe: results depend on the
	// architecture and carry no correctness guarantee.
	NoBarriers = Pair{}
)

// Fenced reports whether both sides carry a barrier.
func (p Pair) Fenced() bool {
	return p.Write.Valid() && p.Read.Valid()
}

func (p Pair) String() string {
	name := func(op mbarrier.Op) string {
		if !op.Valid() {
			return "none"
		}
		return op.String()
	}
	return name(p.Write) + "/" + name(p.Read)
}

// Config controls a litmus run.
type Config struct {
	// Rounds is the number of messages passed.
	Rounds int
	// Slots is the number of independent producer/consumer slots that
	// rounds rotate through.
	Slots int
	// Barriers placed on the producer and consumer side.
	Barriers Pair
	// Timeout bounds the whole run; zero means no limit beyond ctx.
	Timeout time.Duration
	// Logger receives progress; nil uses logging.Default.
	Logger *logging.Logger
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	rounds := 200_000
	if opt.Race_ {
		rounds = 10_000
	}
	return Config{
		Rounds:   rounds,
		Slots:    64,
		Barriers: SmpPair,
		Timeout:  time.Minute,
	}
}

func (c Config) validate() error {
	switch {
	case c.Rounds <= 0:
		return newError(CodeInvalidConfig, -1, fmt.Sprintf("rounds must be positive, got %d", c.Rounds))
	case c.Slots <= 0:
		return newError(CodeInvalidConfig, -1, fmt.Sprintf("slots must be positive, got %d", c.Slots))
	case c.Barriers.Write != mbarrier.OpInvalid && !c.Barriers.Write.Valid():
		return newError(CodeInvalidConfig, -1, fmt.Sprintf("invalid write barrier %v", c.Barriers.Write))
	case c.Barriers.Read != mbarrier.OpInvalid && !c.Barriers.Read.Valid():
		return newError(CodeInvalidConfig, -1, fmt.Sprintf("invalid read barrier %v", c.Barriers.Read))
	}
	return nil
}

// Result of a litmus run.
type Result struct {
	Barriers Pair
	// Rounds completed by the consumer.
	Rounds int
	// Mismatches counts rounds where the consumer read a value other than
	// the one published for that round.
	Mismatches int
	// FirstMismatch is the first failing round, -1 if none.
	FirstMismatch int
	Elapsed       time.Duration
}

// Passed reports whether every completed round observed the published value.
func (r Result) Passed() bool {
	return r.Mismatches == 0
}

type slot struct {
	_    opt.Pad_
	data uint64
	_    opt.Pad_
	flag uint32
	_    opt.Pad_
}

// value is the payload published in round r. It is never zero so a slot
// that was not written is always detected.
func value(r int) uint64 {
	return uint64(r)*0x9e3779b97f4a7c15 | 1
}

// Run executes the message-passing test.
//
// With a fenced Pair, any mismatch is reported as an *Error with
// CodeViolation alongside the Result. With an unfenced Pair mismatches only
// appear in the Result.
func Run(ctx context.Context, cfg Config) (Result, error) {
	res := Result{Barriers: cfg.Barriers, FirstMismatch: -1}
	if err := cfg.validate(); err != nil {
		return res, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Default()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	wb := barrier(cfg.Barriers.Write)
	rb := barrier(cfg.Barriers.Read)
	slots := make([]slot, cfg.Slots)

	log.Debug("litmus start", "test", testName, "barriers", cfg.Barriers.String(),
		"rounds", cfg.Rounds, "slots", cfg.Slots)

	var (
		completed  atomic.Int64
		mismatches atomic.Int64
		first      = int64(-1)
	)
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for r := 0; r < cfg.Rounds; r++ {
			if r%spinCheck == 0 {
				if err := gctx.Err(); err != nil {
					return err
				}
			}
			s := &slots[r%len(slots)]
			if err := await(gctx, &s.flag, 0); err != nil {
				return err
			}
			s.data = value(r)
			wb()
			opt.StoreInt(&s.flag, 1)
		}
		return nil
	})

	g.Go(func() error {
		for r := 0; r < cfg.Rounds; r++ {
			if r%spinCheck == 0 {
				if err := gctx.Err(); err != nil {
					return err
				}
			}
			s := &slots[r%len(slots)]
			if err := await(gctx, &s.flag, 1); err != nil {
				return err
			}
			rb()
			if s.data != value(r) {
				if mismatches.Add(1) == 1 {
					first = int64(r)
				}
			}
			// The slot is handed back to the producer; the full barrier
			// keeps the data load above the flag store.
			mbarrier.Mb()
			opt.StoreInt(&s.flag, 0)
			completed.Add(1)
		}
		return nil
	})

	err := g.Wait()
	res.Elapsed = time.Since(start)
	res.Rounds = int(completed.Load())
	res.Mismatches = int(mismatches.Load())
	res.FirstMismatch = int(first)

	log.Debug("litmus done", "test", testName, "barriers", cfg.Barriers.String(),
		"rounds", res.Rounds, "mismatches", res.Mismatches, "elapsed", res.Elapsed.String())

	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return res, wrapError(CodeTimeout, err)
		default:
			return res, wrapError(CodeCanceled, err)
		}
	}
	if res.Mismatches > 0 {
		if cfg.Barriers.Fenced() {
			log.Error("ordering violation", "barriers", cfg.Barriers.String(),
				"mismatches", res.Mismatches, "first", res.FirstMismatch)
			return res, newError(CodeViolation, res.FirstMismatch,
				fmt.Sprintf("%d of %d rounds observed stale data", res.Mismatches, res.Rounds))
		}
		log.Warn("unfenced run observed reordering", "mismatches", res.Mismatches)
	}
	return res, nil
}

func barrier(op mbarrier.Op) func() {
	if f := op.Func(); f != nil {
		return f
	}
	return func() {}
}

// await spins until flag holds want, yielding to the scheduler and checking
// ctx every spinCheck iterations.
func await(ctx context.Context, flag *uint32, want uint32) error {
	for spins := 1; opt.LoadInt(flag) != want; spins++ {
		arch.CompilerRmb()
		if spins%spinCheck == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			runtime.Gosched()
		}
	}
	return nil
}

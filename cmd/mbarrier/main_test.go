package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llxisdsh/mbarrier"
	"github.com/llxisdsh/mbarrier/bench"
	"github.com/llxisdsh/mbarrier/internal/logging"
	"github.com/llxisdsh/mbarrier/litmus"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	logging.SetDefault(logging.Nop())
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	saved := rootFlags
	defer func() {
		rootCmd.SetArgs(nil)
		rootFlags = saved
	}()
	err := rootCmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	b := mbarrier.Active()
	require.NoError(t, List(&buf, b))

	out := buf.String()
	assert.Contains(t, out, "family")
	assert.Contains(t, out, b.Family)
	assert.Contains(t, out, runtime.GOARCH)
	for _, op := range mbarrier.Ops() {
		assert.Contains(t, out, op.KernelName())
		assert.Contains(t, out, b.Instruction(op))
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, []mbarrier.Op{mbarrier.OpRmb, mbarrier.OpSmpMb}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "rmb executed"))
	assert.True(t, strings.HasPrefix(lines[1], "smp_mb executed"))

	err := Run(&buf, []mbarrier.Op{mbarrier.OpInvalid})
	assert.True(t, isUsageError(err))
}

func TestParseOps(t *testing.T) {
	ops, err := parseOps(nil)
	require.NoError(t, err)
	assert.Equal(t, mbarrier.Ops(), ops)

	ops, err = parseOps([]string{"rmb,smp_wmb", " Mb "})
	require.NoError(t, err)
	assert.Equal(t, []mbarrier.Op{mbarrier.OpRmb, mbarrier.OpSmpWmb, mbarrier.OpMb}, ops)

	_, err = parseOps([]string{"rmb,lfence"})
	assert.True(t, isUsageError(err))
}

func TestParseOptionalOp(t *testing.T) {
	op, err := parseOptionalOp("none")
	require.NoError(t, err)
	assert.Equal(t, mbarrier.OpInvalid, op)

	op, err = parseOptionalOp("smp_rmb")
	require.NoError(t, err)
	assert.Equal(t, mbarrier.OpSmpRmb, op)

	_, err = parseOptionalOp("sync")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	var buf bytes.Buffer
	cfg := bench.Config{
		Ops:        []mbarrier.Op{mbarrier.OpWmb, mbarrier.OpMb},
		Iterations: 200,
		Repeat:     1,
		Workers:    1,
		Logger:     logging.Nop(),
	}
	require.NoError(t, Bench(context.Background(), &buf, cfg))
	out := buf.String()
	assert.Contains(t, out, "Wmb")
	assert.Contains(t, out, "Mb")
	assert.Contains(t, out, bench.Unit()+"/op")
}

func TestLitmus(t *testing.T) {
	var buf bytes.Buffer
	cfg := litmus.Config{
		Rounds:   2000,
		Slots:    4,
		Barriers: litmus.SmpPair,
		Timeout:  30 * time.Second,
		Logger:   logging.Nop(),
	}
	require.NoError(t, Litmus(context.Background(), &buf, cfg))
	assert.Contains(t, buf.String(), "PASS mp SmpWmb/SmpRmb: 2000 rounds, 0 stale")

	buf.Reset()
	cfg.Rounds = 0
	err := Litmus(context.Background(), &buf, cfg)
	assert.Equal(t, exitUsage, exitCode(err))
	assert.Empty(t, buf.String())
}

func TestLitmusInterrupted(t *testing.T) {
	var buf bytes.Buffer
	cfg := litmus.Config{
		Rounds:   1 << 30,
		Slots:    4,
		Barriers: litmus.SmpPair,
		Timeout:  time.Nanosecond,
		Logger:   logging.Nop(),
	}
	err := Litmus(context.Background(), &buf, cfg)
	assert.True(t, litmus.IsCode(err, litmus.CodeTimeout))
	assert.Equal(t, exitError, exitCode(err))
	assert.Contains(t, buf.String(), "TIMEOUT mp SmpWmb/SmpRmb")
	assert.NotContains(t, buf.String(), "PASS")

	buf.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.Timeout = 0
	err = Litmus(ctx, &buf, cfg)
	assert.True(t, litmus.IsCode(err, litmus.CodeCanceled))
	assert.Contains(t, buf.String(), "CANCELED mp SmpWmb/SmpRmb")
	assert.NotContains(t, buf.String(), "PASS")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitError, exitCode(errors.New("boom")))
	assert.Equal(t, exitUsage, exitCode(usageErrorf("bad flag")))
	assert.Equal(t, exitViolation, exitCode(&litmus.Error{Code: litmus.CodeViolation, Round: -1}))
	assert.Equal(t, exitError, exitCode(&litmus.Error{Code: litmus.CodeTimeout, Round: -1}))
}

func TestEnv(t *testing.T) {
	assert.Equal(t, "warn", getEnv(envLog))
	assert.Equal(t, 1_000_000, getEnvInt(envIterations))

	t.Setenv(envRounds, "42")
	assert.Equal(t, 42, getEnvInt(envRounds))

	t.Setenv(envRounds, "many")
	assert.Equal(t, 200_000, getEnvInt(envRounds))

	assert.Empty(t, getEnv("MBARRIER_UNKNOWN"))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, name+" "+version)
	assert.Contains(t, out, runtime.GOARCH)
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "--no-color", "run", "wmb")
	require.NoError(t, err)
	assert.Contains(t, out, "wmb executed")

	_, err = execute(t, "run", "nope")
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "--log", "loud", "version")
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestOpValue(t *testing.T) {
	var op mbarrier.Op
	v := newOpValue(mbarrier.OpSmpWmb, &op)
	assert.Equal(t, mbarrier.OpSmpWmb, op)
	assert.Equal(t, "smp_wmb", v.String())
	assert.Equal(t, "barrier", v.Type())

	require.NoError(t, v.Set("Rmb"))
	assert.Equal(t, mbarrier.OpRmb, op)

	require.NoError(t, v.Set("none"))
	assert.Equal(t, mbarrier.OpInvalid, op)
	assert.Equal(t, "none", v.String())

	assert.Error(t, v.Set("lfence"))
	assert.Equal(t, mbarrier.OpInvalid, op)
}

func TestBadFlag(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"litmus", "--write", "lfence"}, "lfence"},
		{[]string{"bench", "--workers", "many"}, "many"},
		{[]string{"--log", "loud", "version"}, "loud"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, exitUsage, exitCode(err))

			var stderr bytes.Buffer
			reportError(&stderr, err)
			assert.Contains(t, stderr.String(), "mbarrier failed")
			assert.Contains(t, stderr.String(), tc.want)
		})
	}
}

func TestReportErrorEmpty(t *testing.T) {
	var stderr bytes.Buffer
	reportError(&stderr, errors.New(""))
	assert.Empty(t, stderr.String())
}

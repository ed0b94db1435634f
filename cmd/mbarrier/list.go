package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/llxisdsh/mbarrier"
	"github.com/llxisdsh/mbarrier/internal/opt"
)

var (
	fenceColor    = color.New(color.FgGreen).SprintFunc()
	compilerColor = color.New(color.FgYellow).SprintFunc()
	noneColor     = color.New(color.FgBlue).SprintFunc()
	failColor     = color.New(color.FgRed, color.Bold).SprintFunc()
)

func init() {
	var listCmd = cobra.Command{
		Use:   "list",
		Short: "Print the compiled barrier backend",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return List(cmd.OutOrStdout(), mbarrier.Active())
		},
	}
	rootCmd.AddCommand(&listCmd)
}

// List prints the backend summary and one line per op.
func List(w io.Writer, b mbarrier.Backend) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "arch\t%s\n", b.Arch)
	fmt.Fprintf(tw, "family\t%s\n", b.Family)
	fmt.Fprintf(tw, "smp\t%v\n", b.SMP)
	fmt.Fprintf(tw, "noasm\t%v\n", b.NoAsm)
	fmt.Fprintf(tw, "cache line\t%d\n", opt.CacheLineSize_)
	if fs := cpuFeatures(); len(fs) > 0 {
		fmt.Fprintf(tw, "cpu\t%s\n", strings.Join(fs, " "))
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "OP\tKERNEL NAME\tINSTRUCTION")
	for _, op := range mbarrier.Ops() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", op, op.KernelName(), colorInstruction(b, op))
	}
	return tw.Flush()
}

func colorInstruction(b mbarrier.Backend, op mbarrier.Op) string {
	ins := b.Instruction(op)
	switch {
	case b.HardwareFence(op):
		return fenceColor(ins)
	case ins == "none":
		return noneColor(ins)
	default:
		return compilerColor(ins)
	}
}

func cpuFeatures() []string {
	var fs []string
	add := func(name string, ok bool) {
		if ok {
			fs = append(fs, name)
		}
	}
	switch runtime.GOARCH {
	case "386", "amd64":
		add("sse2", cpu.X86.HasSSE2)
		add("sse42", cpu.X86.HasSSE42)
		add("avx2", cpu.X86.HasAVX2)
	case "arm64":
		add("atomics", cpu.ARM64.HasATOMICS)
		add("lrcpc", cpu.ARM64.HasLRCPC)
	case "arm":
		add("neon", cpu.ARM.HasNEON)
		add("lpae", cpu.ARM.HasLPAE)
	}
	return fs
}

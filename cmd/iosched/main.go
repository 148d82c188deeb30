// Command iosched simulates a disk-arm scheduler (spec.md §6.1):
// FIFO, SSTF, LOOK, CLOOK or FLOOK servicing a fixed stream of seek
// requests, and reports per-request timing plus aggregate statistics.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arunpatro/os-frankeh/internal/trace"
	"github.com/arunpatro/os-frankeh/pkg/iosched"
	"github.com/spf13/cobra"
)

type opts struct {
	scheduler string
	verbose   bool
	queue     bool
	reserved  bool
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "iosched -s{N|S|L|C|F} [-v] [-q] [-f] <inputfile>",
		Short: "Disk-arm scheduling simulator",
		Long: `iosched replays a stream of timestamped seek requests against one of five
disk-arm scheduling policies — FIFO, SSTF, LOOK, CLOOK, FLOOK — and
reports per-request start/finish times plus aggregate utilization,
turnaround and wait-time statistics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args[0])
		},
	}

	root.Flags().StringVarP(&o.scheduler, "scheduler", "s", "", "scheduling policy: N=FIFO, S=SSTF, L=LOOK, C=CLOOK, F=FLOOK")
	root.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "emit a per-event trace (add/issue/finish)")
	root.Flags().BoolVarP(&o.queue, "queue-trace", "q", false, "emit a policy-queue trace")
	root.Flags().BoolVarP(&o.reserved, "reserved", "f", false, "reserved, accepted but unused")
	_ = root.MarkFlagRequired("scheduler")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(_ context.Context, o opts, inputPath string) error {
	if len(o.scheduler) != 1 {
		return fmt.Errorf("iosched: -s must name exactly one policy letter, got %q", o.scheduler)
	}

	requests, err := iosched.ReadRequests(inputPath)
	if err != nil {
		return err
	}

	var qtrace io.Writer
	if o.queue {
		qtrace = os.Stdout
	}
	policy, err := iosched.NewPolicy(o.scheduler[0], requests, qtrace)
	if err != nil {
		return err
	}

	cfg := trace.Config{Verbose: o.verbose, QueueTrace: o.queue, Reserved: o.reserved}
	stats := iosched.Run(requests, policy, cfg, os.Stdout)
	iosched.WriteSummary(os.Stdout, requests, stats)
	return nil
}

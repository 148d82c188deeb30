// Command mmu simulates demand paging across multiple processes
// sharing a bounded pool of physical frames (spec.md §6.2): it walks
// each process's page table on every memory reference, resolves faults
// through a pluggable replacement policy, and reports per-process
// counters plus a weighted cost.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/arunpatro/os-frankeh/internal/trace"
	"github.com/arunpatro/os-frankeh/pkg/mmu"
	"github.com/spf13/cobra"
)

type opts struct {
	numFrames int
	algorithm string
	options   string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "mmu -f<num_frames> -a{f|r|c|e|a|w} -o<option_chars> <inputfile> <randomfile>",
		Short: "Demand-paging memory-management unit simulator",
		Long: `mmu replays an instruction stream of context switches and memory
references against a fixed pool of physical frames, resolving page
faults through one of six replacement policies: FIFO, Random, Clock,
NRU, Aging, Working-Set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args[0], args[1])
		},
	}

	root.Flags().IntVarP(&o.numFrames, "frames", "f", 0, "number of physical frames")
	root.Flags().StringVarP(&o.algorithm, "algorithm", "a", "", "pager: f=FIFO, r=Random, c=Clock, e=NRU, a=Aging, w=Working-Set")
	root.Flags().StringVarP(&o.options, "options", "o", "", "option characters: O P F S x f a y")
	_ = root.MarkFlagRequired("frames")
	_ = root.MarkFlagRequired("algorithm")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(_ context.Context, o opts, inputPath, randomPath string) error {
	if o.numFrames <= 0 {
		return fmt.Errorf("mmu: -f must be a positive frame count, got %d", o.numFrames)
	}
	if len(o.algorithm) != 1 {
		return fmt.Errorf("mmu: -a must name exactly one policy letter, got %q", o.algorithm)
	}

	processes, instructions, err := mmu.ReadInput(inputPath)
	if err != nil {
		return err
	}

	randoms, err := mmu.ReadRandomFile(randomPath)
	if err != nil {
		return err
	}

	mmuOpts := trace.ParseMMUOptions(o.options)
	sim := mmu.NewSimulator(processes, o.numFrames, mmuOpts, os.Stdout)

	pager, err := mmu.NewPager(o.algorithm[0], sim, randoms)
	if err != nil {
		return err
	}
	sim.SetPager(pager)

	sim.Run(instructions)
	mmu.WriteFinalSummary(os.Stdout, sim, mmuOpts)
	return nil
}

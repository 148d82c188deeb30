package mmu

import (
	"fmt"
	"io"

	"github.com/arunpatro/os-frankeh/internal/trace"
)

// pteSize is reported literally in TOTALCOST as the in-memory size in
// bytes of a page-table entry (spec.md §4.5).
const pteSize = 4

// WritePageTable prints one process's "PT[i]:" line (spec.md §4.5).
func WritePageTable(w io.Writer, index int, p *Process) {
	fmt.Fprintf(w, "PT[%d]:", index)
	for v := 0; v < NumVPages; v++ {
		pte := p.PageTable[v]
		switch {
		case pte.Present:
			fmt.Fprintf(w, " %d:%s%s%s", v, flag(pte.Referenced, 'R'), flag(pte.Modified, 'M'), flag(pte.PagedOut, 'S'))
		case pte.PagedOut && !pte.FileMapped:
			fmt.Fprint(w, " #")
		default:
			fmt.Fprint(w, " *")
		}
	}
	fmt.Fprintln(w)
}

func flag(set bool, letter byte) string {
	if set {
		return string(letter)
	}
	return "-"
}

// WriteFrameTable prints the single "FT:" line (spec.md §4.5).
func WriteFrameTable(w io.Writer, frames []Frame) {
	fmt.Fprint(w, "FT:")
	for _, f := range frames {
		if f.free() {
			fmt.Fprint(w, " *")
		} else {
			fmt.Fprintf(w, " %d:%d", f.PID, f.VPage)
		}
	}
	fmt.Fprintln(w)
}

// WriteProcessStats prints one process's "PROC[i]:" counters line.
func WriteProcessStats(w io.Writer, index int, p *Process) {
	c := p.Counters
	fmt.Fprintf(w, "PROC[%d]: U=%d M=%d I=%d O=%d FI=%d FO=%d Z=%d SV=%d SP=%d\n",
		index, c.Unmaps, c.Maps, c.Ins, c.Outs, c.Fins, c.Fouts, c.Zeros, c.Segv, c.Segprot)
}

// WriteTotalCost prints the "TOTALCOST" line.
func WriteTotalCost(w io.Writer, s *Simulator) {
	fmt.Fprintf(w, "TOTALCOST %d %d %d %d %d\n",
		s.instCount, s.ctxSwitches, s.processExits, s.cost(), pteSize)
}

// WriteFinalSummary emits the end-of-run sections selected by opts:
// final page tables (-P), the frame table (-F), and per-process stats
// plus TOTALCOST (-S).
func WriteFinalSummary(w io.Writer, s *Simulator, opts trace.MMUOptions) {
	if opts.FinalPageTable {
		for i, p := range s.processes {
			WritePageTable(w, i, p)
		}
	}
	if opts.FinalFrameTable {
		WriteFrameTable(w, s.frames)
	}
	if opts.Stats {
		for i, p := range s.processes {
			WriteProcessStats(w, i, p)
		}
		WriteTotalCost(w, s)
	}
}

package iosched

import (
	"fmt"
	"io"
)

// WriteSummary prints the per-request lines and the final SUM line in
// the exact column layout spec.md §6.1 describes.
func WriteSummary(w io.Writer, requests []*Request, stats Stats) {
	for i, r := range requests {
		fmt.Fprintf(w, "%5d: %5d %5d %5d\n", i, r.Arrival, r.Start, r.Finish)
	}
	fmt.Fprintf(w, "SUM: %d %d %.4f %.2f %.2f %d\n",
		stats.TotalTime, stats.TotalMovement, stats.IOUtilization,
		stats.AvgTurnaround, stats.AvgWaitTime, stats.MaxWaitTime)
}

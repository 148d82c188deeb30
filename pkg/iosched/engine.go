package iosched

import (
	"fmt"
	"io"

	"github.com/arunpatro/os-frankeh/internal/trace"
)

// Stats are the aggregate outputs of a completed simulation (spec.md §4.2).
type Stats struct {
	TotalTime     int
	TotalMovement int
	IOUtilization float64
	AvgTurnaround float64
	AvgWaitTime   float64
	MaxWaitTime   int
}

// Run drives the time-stepped simulation loop: arrivals, completion
// check, start-next (with its same-instant zero-seek re-check), seek,
// then advance the clock — exactly the five steps of spec.md §4.2.
func Run(requests []*Request, policy Policy, cfg trace.Config, w io.Writer) Stats {
	now := 0
	head := 0
	active := unset
	cursor := 0

	if cfg.Verbose {
		fmt.Fprintln(w, "TRACE")
	}

	for {
		for cursor < len(requests) && requests[cursor].Arrival == now {
			policy.Add(cursor)
			if cfg.Verbose {
				fmt.Fprintf(w, "%d:%6d add %d\n", now, cursor, requests[cursor].Track)
			}
			cursor++
		}

		if active != unset && head == requests[active].Track {
			finish(requests[active], now, active, cfg, w)
			active = unset
		}

		for active == unset {
			idx, ok := policy.Next(head)
			if !ok {
				break
			}
			requests[idx].Start = now
			active = idx
			if cfg.Verbose {
				fmt.Fprintf(w, "%d:%6d issue %d %d\n", now, idx, requests[idx].Track, head)
			}
			if head == requests[active].Track {
				finish(requests[active], now, active, cfg, w)
				active = unset
				continue
			}
			break
		}

		if active == unset && cursor >= len(requests) {
			break
		}

		if active != unset {
			switch {
			case head < requests[active].Track:
				head++
			case head > requests[active].Track:
				head--
			}
		}

		now++
	}

	return computeStats(requests, now)
}

func finish(r *Request, now, idx int, cfg trace.Config, w io.Writer) {
	r.Finish = now
	if cfg.Verbose {
		fmt.Fprintf(w, "%d:%6d finish %d\n", now, idx, now-r.Arrival)
	}
}

func computeStats(requests []*Request, totalTime int) Stats {
	var totalMovement int
	var sumTurnaround, sumWait float64
	maxWait := 0
	for _, r := range requests {
		totalMovement += r.Finish - r.Start
		sumTurnaround += float64(r.Finish - r.Arrival)
		wait := r.Start - r.Arrival
		sumWait += float64(wait)
		if wait > maxWait {
			maxWait = wait
		}
	}

	var avgTurnaround, avgWait, utilization float64
	if n := float64(len(requests)); n > 0 {
		avgTurnaround = sumTurnaround / n
		avgWait = sumWait / n
	}
	if totalTime > 0 {
		utilization = float64(totalMovement) / float64(totalTime)
	}

	return Stats{
		TotalTime:     totalTime,
		TotalMovement: totalMovement,
		IOUtilization: utilization,
		AvgTurnaround: avgTurnaround,
		AvgWaitTime:   avgWait,
		MaxWaitTime:   maxWait,
	}
}

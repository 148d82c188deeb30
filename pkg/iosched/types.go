// Package iosched implements the time-stepped I/O request scheduler
// described in spec.md §4.1–§4.2: a pluggable request-selection policy
// feeds a single moving head, one track per time unit.
package iosched

// unset marks a Request's Start/Finish before the simulation loop has
// stamped it.
const unset = -1

// Request is a single track-seek request. Arrival and Track are
// immutable input fields; Start and Finish are stat fields the
// simulation loop sets exactly once (spec.md §3).
type Request struct {
	Arrival int
	Track   int
	Start   int
	Finish  int
}

func newRequest(arrival, track int) *Request {
	return &Request{Arrival: arrival, Track: track, Start: unset, Finish: unset}
}

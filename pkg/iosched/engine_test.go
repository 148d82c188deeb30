package iosched

import (
	"bytes"
	"testing"

	"github.com/arunpatro/os-frankeh/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, letter byte, arrivals, tracks []int) []*Request {
	t.Helper()
	requests := make([]*Request, len(arrivals))
	for i := range arrivals {
		requests[i] = newRequest(arrivals[i], tracks[i])
	}
	policy, err := NewPolicy(letter, requests, nil)
	require.NoError(t, err)
	Run(requests, policy, trace.Config{}, &bytes.Buffer{})
	return requests
}

func TestFIFO_ServicesInArrivalOrder(t *testing.T) {
	requests := run(t, LetterFIFO, []int{0, 0, 5}, []int{10, 20, 15})

	assert.Equal(t, []int{0, 10, 20}, starts(requests))
	assert.Equal(t, []int{10, 20, 25}, finishes(requests))
}

func TestSSTF_PicksClosestPending(t *testing.T) {
	// At t=10 the head sits at 10 with requests 1 (dist 10) and 2 (dist 5)
	// pending; SSTF must service request 2 first.
	requests := run(t, LetterSSTF, []int{0, 1, 2}, []int{10, 20, 5})

	assert.Equal(t, 0, requests[0].Start)
	assert.Equal(t, 10, requests[0].Finish)
	assert.Equal(t, 10, requests[2].Start)
	assert.Equal(t, 15, requests[2].Finish)
	assert.Equal(t, 15, requests[1].Start)
	assert.Equal(t, 30, requests[1].Finish)
}

// Shared dataset for the LOOK/CLOOK distinguishing test below: two
// requests behind the head when the sweep reaches its far end, with
// request 3 nearer to the head than request 2.
func lookVsClookData() ([]int, []int) {
	return []int{0, 0, 50, 50}, []int{10, 90, 5, 8}
}

func TestLOOK_ReversesTowardNearestBehindHead(t *testing.T) {
	arrivals, tracks := lookVsClookData()
	requests := run(t, LetterLOOK, arrivals, tracks)

	assert.Equal(t, []int{0, 10, 172, 90}, starts(requests))
	assert.Equal(t, []int{10, 90, 175, 172}, finishes(requests))
}

func TestCLOOK_WrapsToLowestTrackInstead(t *testing.T) {
	arrivals, tracks := lookVsClookData()
	requests := run(t, LetterCLOOK, arrivals, tracks)

	assert.Equal(t, []int{0, 10, 90, 175}, starts(requests))
	assert.Equal(t, []int{10, 90, 175, 178}, finishes(requests))
}

func TestFLOOK_LateArrivalsWaitForQueueSwap(t *testing.T) {
	// Request 2 arrives at t=5 with a track much closer to the head than
	// request 0's, but FLOOK must not let it jump the active sweep: it
	// sits in the "add" queue until active drains and the queues swap.
	requests := []*Request{
		newRequest(0, 50),
		newRequest(0, 10),
		newRequest(5, 12),
	}
	policy, err := NewPolicy(LetterFLOOK, requests, nil)
	require.NoError(t, err)
	Run(requests, policy, trace.Config{}, &bytes.Buffer{})

	assert.Equal(t, []int{10, 0, 50}, starts(requests))
	assert.Equal(t, []int{50, 10, 88}, finishes(requests))
}

func TestInvariant_ArrivalLessEqualStartLessEqualFinish(t *testing.T) {
	for _, letter := range []byte{LetterFIFO, LetterSSTF, LetterLOOK, LetterCLOOK, LetterFLOOK} {
		requests := run(t, letter, []int{0, 0, 3, 7}, []int{40, 12, 60, 25})
		for _, r := range requests {
			assert.LessOrEqual(t, r.Arrival, r.Start)
			assert.LessOrEqual(t, r.Start, r.Finish)
		}
	}
}

func TestNewPolicy_UnknownLetter(t *testing.T) {
	_, err := NewPolicy('?', nil, nil)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func starts(requests []*Request) []int {
	out := make([]int, len(requests))
	for i, r := range requests {
		out[i] = r.Start
	}
	return out
}

func finishes(requests []*Request) []int {
	out := make([]int, len(requests))
	for i, r := range requests {
		out[i] = r.Finish
	}
	return out
}

package iosched

// clookPolicy always sweeps toward increasing track and, on reaching the
// end, jumps straight back to the lowest pending track (spec.md §4.1.4).
type clookPolicy struct {
	queue    []int
	requests []*Request
}

func newCLOOKPolicy(requests []*Request) *clookPolicy {
	return &clookPolicy{requests: requests}
}

func (p *clookPolicy) Add(requestIndex int) {
	p.queue = append(p.queue, requestIndex)
}

func (p *clookPolicy) Next(head int) (int, bool) {
	if len(p.queue) == 0 {
		return 0, false
	}

	pos, ok, bestDist := 0, false, 0
	for i, reqIdx := range p.queue {
		track := p.requests[reqIdx].Track
		if track < head {
			continue
		}
		dist := track - head
		if !ok || dist < bestDist {
			bestDist, pos, ok = dist, i, true
		}
	}

	if !ok {
		bestTrack := 0
		for i, reqIdx := range p.queue {
			track := p.requests[reqIdx].Track
			if !ok || track < bestTrack {
				bestTrack, pos, ok = track, i, true
			}
		}
	}

	if !ok {
		return 0, false
	}
	idx := p.queue[pos]
	p.queue = append(p.queue[:pos], p.queue[pos+1:]...)
	return idx, true
}

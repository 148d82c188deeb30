package iosched

// flookPolicy is LOOK over two alternating queues: new arrivals always
// join "add", while the sweep only ever drains "active"; when active
// empties the queues swap (spec.md §4.1.5). Direction persists across
// swaps, as it does across plain LOOK calls — see SPEC_FULL.md §9.
type flookPolicy struct {
	active, add []int
	requests    []*Request
	direction   int
}

func newFLOOKPolicy(requests []*Request) *flookPolicy {
	return &flookPolicy{requests: requests, direction: 1}
}

func (p *flookPolicy) Add(requestIndex int) {
	p.add = append(p.add, requestIndex)
}

func (p *flookPolicy) Next(head int) (int, bool) {
	if len(p.active) == 0 {
		p.active, p.add = p.add, p.active
	}
	if len(p.active) == 0 {
		return 0, false
	}

	pos, ok := searchDirectional(p.requests, p.active, head, p.direction)
	if !ok {
		p.direction = -p.direction
		pos, ok = searchDirectional(p.requests, p.active, head, p.direction)
	}
	if !ok {
		return 0, false
	}
	idx := p.active[pos]
	p.active = append(p.active[:pos], p.active[pos+1:]...)
	return idx, true
}

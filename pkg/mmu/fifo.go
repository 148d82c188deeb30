package mmu

// FIFOPager evicts frames round-robin by index, from a hand starting at
// frame 0, regardless of reference or modify activity (spec.md §4.3.1).
type FIFOPager struct {
	zeroInitialAge
	mem  Memory
	hand int
}

func NewFIFOPager(mem Memory) *FIFOPager {
	return &FIFOPager{mem: mem}
}

func (p *FIFOPager) SelectVictim(int) int {
	victim := p.hand
	p.hand = (p.hand + 1) % p.mem.NumFrames()
	return victim
}

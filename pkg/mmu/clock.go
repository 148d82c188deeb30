package mmu

// ClockPager is second-chance FIFO: it sweeps from the hand, clearing
// and skipping any referenced frame, and evicts the first one it finds
// already unreferenced (spec.md §4.3.3).
type ClockPager struct {
	zeroInitialAge
	mem  Memory
	hand int
}

func NewClockPager(mem Memory) *ClockPager {
	return &ClockPager{mem: mem}
}

func (p *ClockPager) SelectVictim(int) int {
	n := p.mem.NumFrames()
	for {
		frame := p.mem.Frame(p.hand)
		pte := p.mem.PTE(frame.PID, frame.VPage)
		if pte.Referenced {
			pte.Referenced = false
			p.hand = (p.hand + 1) % n
			continue
		}
		victim := p.hand
		p.hand = (p.hand + 1) % n
		return victim
	}
}

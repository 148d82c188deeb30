package mmu

// AgingPager approximates LRU with a 32-bit-per-frame shift register:
// each scanned frame's age shifts right one bit, then gains a set top
// bit if it was referenced (which is then cleared). The frame left
// with the smallest age is evicted; ties keep the first one reached
// from the hand (spec.md §4.3.5).
type AgingPager struct {
	zeroInitialAge
	mem  Memory
	hand int
}

func NewAgingPager(mem Memory) *AgingPager {
	return &AgingPager{mem: mem}
}

func (p *AgingPager) SelectVictim(int) int {
	n := p.mem.NumFrames()
	bestIdx := -1
	var bestAge uint32

	for i := 0; i < n; i++ {
		idx := (p.hand + i) % n
		frame := p.mem.Frame(idx)
		pte := p.mem.PTE(frame.PID, frame.VPage)

		frame.Age >>= 1
		if pte.Referenced {
			frame.Age |= 0x80000000
			pte.Referenced = false
		}

		if bestIdx == -1 || frame.Age < bestAge {
			bestAge = frame.Age
			bestIdx = idx
		}
	}

	p.hand = (bestIdx + 1) % n
	return bestIdx
}

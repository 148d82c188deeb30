package mmu

// NRUPager classifies frames by (referenced, modified) into four
// classes — (0,0) best to evict, (1,1) worst — and evicts the first
// frame found (scanning from the hand) in the lowest nonempty class.
// Every 50 instructions the same scan also clears every referenced bit,
// using each frame's pre-clear value for that scan's classification
// (spec.md §4.3.4).
type NRUPager struct {
	zeroInitialAge
	mem       Memory
	hand      int
	lastReset int
}

func NewNRUPager(mem Memory) *NRUPager {
	return &NRUPager{mem: mem, lastReset: 0}
}

func (p *NRUPager) SelectVictim(instruction int) int {
	n := p.mem.NumFrames()
	reset := instruction-p.lastReset >= 50

	var classes [4]int
	for c := range classes {
		classes[c] = -1
	}

	for i := 0; i < n; i++ {
		idx := (p.hand + i) % n
		frame := p.mem.Frame(idx)
		pte := p.mem.PTE(frame.PID, frame.VPage)

		class := 0
		if pte.Referenced {
			class |= 2
		}
		if pte.Modified {
			class |= 1
		}
		if classes[class] == -1 {
			classes[class] = idx
		}

		if reset {
			pte.Referenced = false
		}
	}

	if reset {
		p.lastReset = instruction
	}

	victim := classes[0]
	for c := 1; c < 4 && victim == -1; c++ {
		victim = classes[c]
	}

	p.hand = (victim + 1) % n
	return victim
}

package mmu

// workingSetTau is the working-set window, in instructions, beyond
// which an unreferenced frame is immediately eligible for eviction
// (spec.md §4.3.6).
const workingSetTau = 50

// WorkingSetPager tracks, per frame, the instruction index at which it
// was last referenced or newly assigned — the latter is stamped
// unconditionally by the simulator at install time, for every policy.
// A frame unreferenced for at least workingSetTau instructions is
// evicted on sight; otherwise the frame with the smallest last_used
// across the scan is chosen once it completes.
type WorkingSetPager struct {
	zeroInitialAge
	mem  Memory
	hand int
}

func NewWorkingSetPager(mem Memory) *WorkingSetPager {
	return &WorkingSetPager{mem: mem}
}

func (p *WorkingSetPager) SelectVictim(instruction int) int {
	n := p.mem.NumFrames()
	bestIdx := -1
	bestLastUsed := 0

	for i := 0; i < n; i++ {
		idx := (p.hand + i) % n
		frame := p.mem.Frame(idx)
		pte := p.mem.PTE(frame.PID, frame.VPage)

		if pte.Referenced {
			frame.LastUsed = instruction
			pte.Referenced = false
			continue
		}

		if instruction-frame.LastUsed >= workingSetTau {
			p.hand = (idx + 1) % n
			return idx
		}

		if bestIdx == -1 || frame.LastUsed < bestLastUsed {
			bestLastUsed = frame.LastUsed
			bestIdx = idx
		}
	}

	if bestIdx == -1 {
		// Every frame was referenced during this scan and had its
		// last_used just reset to the current instruction: all tied,
		// so the first one reached from the hand wins.
		bestIdx = p.hand
	}

	p.hand = (bestIdx + 1) % n
	return bestIdx
}

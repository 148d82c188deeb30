package mmu

// RandomPager evicts the frame named by the next entry of a
// precomputed pseudo-random sequence, cycling back to its start once
// exhausted (spec.md §4.3.2; grounded on original_source/mmu-rust's
// random-file reader, which hands out the same sequence by index).
type RandomPager struct {
	zeroInitialAge
	mem     Memory
	randoms []int
	cursor  int
}

func NewRandomPager(mem Memory, randoms []int) *RandomPager {
	return &RandomPager{mem: mem, randoms: randoms}
}

func (p *RandomPager) SelectVictim(int) int {
	n := p.mem.NumFrames()
	if len(p.randoms) == 0 {
		return p.cursor % n
	}
	r := p.randoms[p.cursor%len(p.randoms)]
	p.cursor++
	return r % n
}

package mmu

import "fmt"

// Algorithm letters accepted by the -a flag (spec.md §6.2).
const (
	LetterFIFO       = 'f'
	LetterRandom     = 'r'
	LetterClock      = 'c'
	LetterNRU        = 'e'
	LetterAging      = 'a'
	LetterWorkingSet = 'w'
)

// Memory is the narrow capability a Pager needs: read/write access to
// the frame pool and to any process's page table entries. The
// simulator is the single owner of both tables; it implements Memory
// and hands the capability to the pager at construction, rather than
// aliasing its internal slices (spec.md §9 redesign note).
type Memory interface {
	NumFrames() int
	Frame(index int) *Frame
	PTE(pid, vpage int) *PTE
}

// Pager selects a victim frame when none are free. InitialAge supplies
// the Age of a newly assigned frame; the simulator stamps that frame's
// LastUsed with the current instruction index itself, for every pager.
type Pager interface {
	SelectVictim(instruction int) int
	InitialAge(instruction int) int
}

// zeroInitialAge is embedded by every pager that has no use for the
// initial_age hook, so InitialAge defaults to 0 per spec.md §4.3.
type zeroInitialAge struct{}

func (zeroInitialAge) InitialAge(int) int { return 0 }

// NewPager builds the pager named by letter. randoms is only consulted
// by the Random pager.
func NewPager(letter byte, mem Memory, randoms []int) (Pager, error) {
	switch letter {
	case LetterFIFO:
		return NewFIFOPager(mem), nil
	case LetterRandom:
		return NewRandomPager(mem, randoms), nil
	case LetterClock:
		return NewClockPager(mem), nil
	case LetterNRU:
		return NewNRUPager(mem), nil
	case LetterAging:
		return NewAgingPager(mem), nil
	case LetterWorkingSet:
		return NewWorkingSetPager(mem), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(letter))
	}
}

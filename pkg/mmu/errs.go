package mmu

import "errors"

var (
	// ErrUnknownPolicy is returned by NewPager for an unrecognized
	// algorithm letter.
	ErrUnknownPolicy = errors.New("mmu: unknown pager policy")
	// ErrMalformedInput is returned by the input readers on a line that
	// doesn't match the expected grammar.
	ErrMalformedInput = errors.New("mmu: malformed input")
	// ErrNoFreeFrame is an internal invariant violation: evict was asked
	// to displace a frame the free list already claims is unoccupied,
	// meaning the active pager selected a victim outside the occupied
	// pool. Panics rather than returns, since there is no caller that
	// can recover from a pager that breaks its own contract.
	ErrNoFreeFrame = errors.New("mmu: pager selected an already-free frame as its victim")
)

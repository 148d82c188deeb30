package iosched

import "errors"

var (
	// ErrUnknownPolicy indicates the -s algorithm letter did not name a
	// known scheduling policy.
	ErrUnknownPolicy = errors.New("iosched: unknown scheduling policy")

	// ErrMalformedInput indicates an input line was not "<arrival> <track>".
	ErrMalformedInput = errors.New("iosched: malformed input line")
)

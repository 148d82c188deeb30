package iosched

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadRequests parses an I/O scheduler input file: lines beginning with
// '#' are comments and skipped; every other line is "<arrival_time>
// <target_track>". Requests are returned in file order and assumed to
// already be arrival-sorted (spec.md §6.1).
func ReadRequests(path string) ([]*Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("iosched: open input: %w", err)
	}
	defer f.Close()

	var requests []*Request
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedInput, line)
		}
		arrival, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedInput, line, err)
		}
		track, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedInput, line, err)
		}
		requests = append(requests, newRequest(arrival, track))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("iosched: scan input: %w", err)
	}
	return requests, nil
}

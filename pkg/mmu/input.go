package mmu

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadInput parses an MMU input file (spec.md §6.2): three header
// comment lines, then a process count, then per process any number of
// `#` lines followed by a VMA count and that many VMA lines, and
// finally the instruction stream up to EOF or a line starting with
// `#`. Comment lines are any line beginning with `#`; blank lines
// between header and process blocks are not otherwise significant.
func ReadInput(path string) ([]*Process, []Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mmu: open input: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nextContentLine := func() (string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	line, ok := nextContentLine()
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing process count", ErrMalformedInput)
	}
	numProcesses, err := strconv.Atoi(line)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: process count %q: %v", ErrMalformedInput, line, err)
	}

	processes := make([]*Process, numProcesses)
	for i := 0; i < numProcesses; i++ {
		line, ok := nextContentLine()
		if !ok {
			return nil, nil, fmt.Errorf("%w: missing VMA count for process %d", ErrMalformedInput, i)
		}
		numVMAs, err := strconv.Atoi(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: VMA count %q: %v", ErrMalformedInput, line, err)
		}

		vmas := make([]VMA, numVMAs)
		for j := 0; j < numVMAs; j++ {
			vmaLine, ok := nextContentLine()
			if !ok {
				return nil, nil, fmt.Errorf("%w: missing VMA %d for process %d", ErrMalformedInput, j, i)
			}
			vma, err := parseVMA(vmaLine)
			if err != nil {
				return nil, nil, err
			}
			vmas[j] = vma
		}
		processes[i] = NewProcess(vmas)
	}

	// One separator line unconditionally separates the process/VMA block
	// from the instruction stream, whatever its content — grounded on
	// original_source/mmu-rust/src/utils.rs's bare read_line call here.
	sc.Scan()

	var instructions []Instruction
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			break
		}
		ins, err := parseInstruction(line)
		if err != nil {
			return nil, nil, err
		}
		instructions = append(instructions, ins)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("mmu: scan input: %w", err)
	}

	return processes, instructions, nil
}

func parseVMA(line string) (VMA, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return VMA{}, fmt.Errorf("%w: VMA line %q", ErrMalformedInput, line)
	}
	values := make([]int, 4)
	for i, f := range fields[:4] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return VMA{}, fmt.Errorf("%w: VMA line %q: %v", ErrMalformedInput, line, err)
		}
		values[i] = v
	}
	return VMA{
		StartVPage:     values[0],
		EndVPage:       values[1],
		WriteProtected: values[2] == 1,
		FileMapped:     values[3] == 1,
	}, nil
}

func parseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Instruction{}, fmt.Errorf("%w: instruction line %q", ErrMalformedInput, line)
	}
	if len(fields[0]) != 1 {
		return Instruction{}, fmt.Errorf("%w: instruction op %q", ErrMalformedInput, fields[0])
	}
	arg, err := strconv.Atoi(fields[1])
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: instruction line %q: %v", ErrMalformedInput, line, err)
	}
	return Instruction{Op: fields[0][0], Arg: arg}, nil
}

// ReadRandomFile parses a random-number file (spec.md §6.2): a count
// on the first line, then that many integers, one per line. The
// Random pager wraps the returned slice modulo its length.
func ReadRandomFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmu: open random file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty random file", ErrMalformedInput)
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("%w: random count %q: %v", ErrMalformedInput, sc.Text(), err)
	}

	randoms := make([]int, 0, count)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: random value %q: %v", ErrMalformedInput, line, err)
		}
		randoms = append(randoms, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mmu: scan random file: %w", err)
	}
	return randoms, nil
}

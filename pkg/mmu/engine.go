package mmu

import (
	"fmt"
	"io"

	"github.com/arunpatro/os-frankeh/internal/trace"
)

const (
	costUnmap   = 410
	costMap     = 350
	costIn      = 3200
	costOut     = 2750
	costFin     = 2350
	costFout    = 2800
	costZero    = 150
	costSegv    = 440
	costSegprot = 410
	costCtx     = 130
	costExit    = 1230
	costInst    = 1
)

// Simulator owns every process's page table and the shared frame pool,
// and drives the instruction loop of spec.md §4.4. It implements
// Memory so the active Pager can read and mutate frames and PTEs
// without the simulator aliasing its own slices out to callers.
type Simulator struct {
	processes []*Process
	frames    []Frame
	freeList  []int
	pager     Pager

	currentPID   int
	ctxSwitches  int
	processExits int
	instCount    int

	opts trace.MMUOptions
	out  io.Writer
}

// NewSimulator allocates numFrames free frames for the given processes.
func NewSimulator(processes []*Process, numFrames int, opts trace.MMUOptions, out io.Writer) *Simulator {
	frames := make([]Frame, numFrames)
	free := make([]int, numFrames)
	for i := range frames {
		frames[i] = Frame{PID: noPID, VPage: -1}
		free[i] = i
	}
	return &Simulator{
		processes:  processes,
		frames:     frames,
		freeList:   free,
		currentPID: noPID,
		opts:       opts,
		out:        out,
	}
}

func (s *Simulator) SetPager(p Pager) { s.pager = p }

func (s *Simulator) NumFrames() int        { return len(s.frames) }
func (s *Simulator) Frame(index int) *Frame { return &s.frames[index] }
func (s *Simulator) PTE(pid, vpage int) *PTE {
	return &s.processes[pid].PageTable[vpage]
}

// Run executes every instruction in order, emitting traces per opts.
func (s *Simulator) Run(instructions []Instruction) {
	for _, ins := range instructions {
		if s.opts.InstructionTrace {
			fmt.Fprintf(s.out, "%d: ==> %c %d\n", s.instCount, ins.Op, ins.Arg)
		}

		s.step(ins)

		if s.opts.PageTableEachX {
			WritePageTable(s.out, s.currentPID, s.processes[s.currentPID])
		}
		if s.opts.FrameTableEachX {
			WriteFrameTable(s.out, s.frames)
		}

		s.instCount++
	}
}

func (s *Simulator) step(ins Instruction) {
	switch ins.Op {
	case 'c':
		s.currentPID = ins.Arg
		s.ctxSwitches++
	case 'r', 'w':
		s.access(ins.Op, ins.Arg)
	case 'e':
		s.exit(ins.Arg)
	}
}

func (s *Simulator) access(op byte, vpage int) {
	p := s.processes[s.currentPID]
	pte := &p.PageTable[vpage]

	if !pte.Present {
		if s.pageFault(s.currentPID, vpage) {
			return // SEGV: stop processing this instruction
		}
	}

	pte.Referenced = true

	if op == 'w' {
		if pte.WriteProtected {
			s.trace("SEGPROT")
			p.Counters.Segprot++
			return
		}
		pte.Modified = true
	}
}

// pageFault runs spec.md §4.4.1 for (pid, vpage) and reports whether
// it resolved to SEGV.
func (s *Simulator) pageFault(pid, vpage int) bool {
	p := s.processes[pid]
	pte := &p.PageTable[vpage]

	if !pte.InValidVMA {
		s.trace("SEGV")
		p.Counters.Segv++
		return true
	}

	frameIdx, ok := s.dequeueFree()
	if !ok {
		frameIdx = s.pager.SelectVictim(s.instCount)
		if s.opts.PagerTrace {
			fmt.Fprintf(s.out, " ASELECT %d\n", frameIdx)
		}
		s.evict(frameIdx)
	}

	frame := &s.frames[frameIdx]
	frame.PID = pid
	frame.VPage = vpage
	frame.Age = uint32(s.pager.InitialAge(s.instCount))
	frame.LastUsed = s.instCount

	pte.FrameIndex = frameIdx
	pte.Present = true

	switch {
	case pte.FileMapped:
		s.trace("FIN")
		p.Counters.Fins++
	case pte.PagedOut:
		s.trace("IN")
		p.Counters.Ins++
	default:
		s.trace("ZERO")
		p.Counters.Zeros++
	}

	s.tracef("MAP %d", frameIdx)
	p.Counters.Maps++
	return false
}

func (s *Simulator) dequeueFree() (int, bool) {
	if len(s.freeList) == 0 {
		return 0, false
	}
	idx := s.freeList[0]
	s.freeList = s.freeList[1:]
	return idx, true
}

// evict displaces frameIdx's current occupant per spec.md §4.4.1 step 2.
// Reaching this path with a free frame means the pager picked a victim
// out of a pool the free list already claims is empty — an invariant
// violation, not a recoverable runtime error.
func (s *Simulator) evict(frameIdx int) {
	frame := &s.frames[frameIdx]
	if frame.free() {
		panic(fmt.Errorf("%w: frame %d", ErrNoFreeFrame, frameIdx))
	}
	victim := s.processes[frame.PID]
	victimPTE := &victim.PageTable[frame.VPage]

	s.tracef("UNMAP %d:%d", frame.PID, frame.VPage)
	victim.Counters.Unmaps++
	victimPTE.Present = false

	if victimPTE.Modified {
		victimPTE.Modified = false
		if victimPTE.FileMapped {
			s.trace("FOUT")
			victim.Counters.Fouts++
		} else {
			victimPTE.PagedOut = true
			s.trace("OUT")
			victim.Counters.Outs++
		}
	}
}

func (s *Simulator) exit(pid int) {
	s.tracef("EXIT current process %d", pid)
	s.processExits++

	p := s.processes[pid]
	for vpage := 0; vpage < NumVPages; vpage++ {
		pte := &p.PageTable[vpage]
		pte.PagedOut = false
		if !pte.Present {
			continue
		}
		s.tracef("UNMAP %d:%d", pid, vpage)
		p.Counters.Unmaps++
		if pte.Modified && pte.FileMapped {
			s.trace("FOUT")
			p.Counters.Fouts++
		}
		s.frames[pte.FrameIndex] = Frame{PID: noPID, VPage: -1}
		s.freeList = append(s.freeList, pte.FrameIndex)
		pte.Present = false
		pte.FrameIndex = 0
	}
}

func (s *Simulator) trace(event string) {
	if s.opts.InstructionTrace {
		fmt.Fprintf(s.out, " %s\n", event)
	}
}

func (s *Simulator) tracef(format string, args ...any) {
	if s.opts.InstructionTrace {
		fmt.Fprintf(s.out, " "+format+"\n", args...)
	}
}

// cost computes the weighted TOTALCOST value of spec.md §4.4.2.
func (s *Simulator) cost() int {
	var total int
	for _, p := range s.processes {
		c := p.Counters
		total += c.Unmaps*costUnmap + c.Maps*costMap + c.Ins*costIn + c.Outs*costOut +
			c.Fins*costFin + c.Fouts*costFout + c.Zeros*costZero + c.Segv*costSegv + c.Segprot*costSegprot
	}
	total += s.ctxSwitches*costCtx + s.processExits*costExit
	total += (s.instCount - s.ctxSwitches - s.processExits) * costInst
	return total
}

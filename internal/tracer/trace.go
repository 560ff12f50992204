package tracer

// Registers is the fixed-size ordered register file: indices 0-10 are the
// general-purpose registers (r0=return, r1-r5=args, r6-r9=callee-saved,
// r10=frame pointer), index 11 is the program counter.
type Registers [NumRegisters]uint64

// SideEffect is a reserved slot for memory/account-state deltas. Empty in
// the MVP (spec.md §3: "reserved but empty"); present so a future
// memory-consistency argument can be threaded through without changing the
// ExecutionTrace shape.
type SideEffect struct {
	Kind    string
	Address uint64
	Value   uint64
}

// InstructionTrace is one step of execution: the instruction at pc, the
// register file immediately before and immediately after it executed.
type InstructionTrace struct {
	PC               uint64
	InstructionBytes [8]byte
	RegistersBefore  Registers
	RegistersAfter   Registers
}

// ExecutionTrace is the tracer's complete output: an ordered, finite chain
// of InstructionTrace entries plus the boundary register files. By
// construction, Instructions[k].RegistersAfter == Instructions[k+1].RegistersBefore.
type ExecutionTrace struct {
	Instructions     []InstructionTrace
	InitialRegisters Registers
	FinalRegisters   Registers
	AuxTrace         []SideEffect
}

// recorder accumulates per-cycle register snapshots during interpretation,
// keyed by step index, mirroring the teacher's append-only trace-recorder
// shape (vm/trace_recorder.go) stripped to the single concern this system
// needs: register snapshots, not full coprocessor tables.
type recorder struct {
	snapshots []Registers
	pcs       []uint64
	words     [][8]byte
}

func newRecorder() *recorder {
	return &recorder{}
}

func (r *recorder) record(pc uint64, word [8]byte, regs Registers) {
	r.pcs = append(r.pcs, pc)
	r.words = append(r.words, word)
	r.snapshots = append(r.snapshots, regs)
}

// build converts recorded snapshots into the chained InstructionTrace
// sequence plus boundary states, per spec.md §4.1 step 7.
func (r *recorder) build(finalRegs Registers) *ExecutionTrace {
	trace := &ExecutionTrace{
		Instructions: make([]InstructionTrace, len(r.snapshots)),
	}
	if len(r.snapshots) > 0 {
		trace.InitialRegisters = r.snapshots[0]
	}
	for i := range r.snapshots {
		after := finalRegs
		if i+1 < len(r.snapshots) {
			after = r.snapshots[i+1]
		}
		trace.Instructions[i] = InstructionTrace{
			PC:               r.pcs[i],
			InstructionBytes: r.words[i],
			RegistersBefore:  r.snapshots[i],
			RegistersAfter:   after,
		}
	}
	trace.FinalRegisters = finalRegs
	return trace
}

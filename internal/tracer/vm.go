package tracer

import "fmt"

// Config configures one tracer run. Fields mirror the pipeline steps of
// spec.md §4.1: an instruction budget (step 4) and a stack region size
// (step 3).
type Config struct {
	// ComputeBudget is the instruction-metering budget; exceeding it is a
	// fatal ComputeExhausted error.
	ComputeBudget uint64
	// StackSize is the size, in bytes, of the program's stack: r10 starts
	// at this value. Memory is a sparse word map; no region of this size
	// is allocated and accesses are not bounds-checked against it.
	StackSize uint64
}

// DefaultConfig returns the MVP's default tracer configuration.
func DefaultConfig() *Config {
	return &Config{
		ComputeBudget: 100_000,
		StackSize:     4096,
	}
}

// vm is the embedded interpreter: a register file, a writable stack
// region honoring the frame-gap convention of robertodauria-ebpf-vm's
// vm.VM (r10 initialized to the top of the stack), and the program text
// it was loaded with.
type vm struct {
	cfg     *Config
	regs    Registers
	memory  map[uint64]uint64 // word-addressed (address/8); stack + scratch
	program []byte            // raw program text, InstructionSize-aligned
	halted  bool
	steps   uint64
}

func newVM(cfg *Config, program []byte) *vm {
	v := &vm{
		cfg:     cfg,
		memory:  make(map[uint64]uint64),
		program: program,
	}
	v.regs[FrameRegister] = cfg.StackSize
	return v
}

// fetch returns the raw 8-byte word at the byte address pc, zero-filled
// if pc runs past the end of program text (spec.md §4.1 step 6). PC is a
// byte address, per spec.md §3 invariant 4 ("after[PC] = before[PC] + 8").
func (v *vm) fetch(pc uint64) [8]byte {
	var word [8]byte
	for i := uint64(0); i < InstructionSize; i++ {
		idx := pc + i
		if idx < uint64(len(v.program)) {
			word[i] = v.program[idx]
		}
	}
	return word
}

// memAddress computes a load/store address with real BPF two's-complement
// semantics (base + sign-extended offset, wrapping mod 2^64). This is
// distinct from the field-embedding reinterpretation the circuit chips use
// for LDW/STW's address hint (isa.go's OffsetAsU64): the interpreter needs
// the actual wrapped address, the circuit only needs a bit-identical value
// to embed into the field.
func memAddress(base uint64, offset int16) uint64 {
	return uint64(int64(base) + int64(offset))
}

func (v *vm) loadWord(addr uint64) uint64 {
	return v.memory[addr/8]
}

func (v *vm) storeWord(addr uint64, val uint64) {
	v.memory[addr/8] = val
}

// step executes exactly one instruction, advancing the PC register (11)
// unless the instruction is EXIT. Returns false once the program halts.
func (v *vm) step() (bool, error) {
	if v.halted {
		return false, nil
	}
	v.steps++
	if v.steps > v.cfg.ComputeBudget {
		return false, newError(ErrComputeExhausted, fmt.Sprintf("exceeded budget of %d instructions", v.cfg.ComputeBudget), nil)
	}

	pc := v.regs[PCRegister]
	word := v.fetch(pc)
	insn := Decode(word)

	if insn.Dst >= NumRegisters-1 || insn.Src >= NumRegisters-1 {
		return false, newError(ErrInvalidRegister, fmt.Sprintf("register index out of range at pc=%d", pc), nil)
	}

	advance := true
	switch insn.Op {
	case OpMov64Imm:
		v.regs[insn.Dst] = ImmAsU64(insn.Imm)
	case OpAlu64AddImm:
		v.regs[insn.Dst] += ImmAsU64(insn.Imm)
	case OpAlu64AddReg:
		v.regs[insn.Dst] += v.regs[insn.Src]
	case OpLdxDw:
		addr := memAddress(v.regs[insn.Src], insn.Offset)
		v.regs[insn.Dst] = v.loadWord(addr)
	case OpStxDw:
		addr := memAddress(v.regs[insn.Dst], insn.Offset)
		v.storeWord(addr, v.regs[insn.Src])
	case OpExit:
		v.halted = true
		advance = false
	default:
		return false, newError(ErrUnsupportedOpcode, fmt.Sprintf("unknown opcode 0x%02x at pc=%d", insn.Op, pc), nil)
	}

	if advance {
		v.regs[PCRegister] = pc + InstructionSize
	}
	return !v.halted, nil
}

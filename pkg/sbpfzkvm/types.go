package sbpfzkvm

import "github.com/vitorpy/sbpf-zkvm/internal/tracer"

// ExecutionTrace is the tracer's per-step output, re-exported so callers
// never import internal/tracer directly.
type ExecutionTrace = tracer.ExecutionTrace

// Instruction and Opcode re-export the tracer's decoded instruction
// vocabulary for assembling programs outside the package.
type Instruction = tracer.Instruction
type Opcode = tracer.Opcode

// MVP opcode set, re-exported.
const (
	OpMov64Imm    = tracer.OpMov64Imm
	OpAlu64AddImm = tracer.OpAlu64AddImm
	OpAlu64AddReg = tracer.OpAlu64AddReg
	OpLdxDw       = tracer.OpLdxDw
	OpStxDw       = tracer.OpStxDw
	OpExit        = tracer.OpExit
)

// Program is a convenience assembler: a sequence of decoded instructions
// that encodes to the flat bytecode TraceProgram accepts.
type Program struct {
	Instructions []Instruction
}

// Bytecode encodes p's instructions into the 8-byte-word wire format.
func (p *Program) Bytecode() []byte {
	out := make([]byte, 0, len(p.Instructions)*tracer.InstructionSize)
	for _, in := range p.Instructions {
		word := tracer.Encode(in)
		out = append(out, word[:]...)
	}
	return out
}

// Proof is a serialized proof together with the backend that produced it,
// so VerifyExecution knows which scheme to check it against.
type Proof struct {
	Backend string
	Bytes   []byte
}

// PublicInputs is the boundary the proof commits to: the register state
// before and after the proven execution (spec.md §8 invariant 6).
type PublicInputs struct {
	InitialRegs [11]uint64
	FinalRegs   [11]uint64
}

// KeyPair is a backend-specific proving/verifying key pair, as produced
// by LoadOrGenerateKeyPair and consumed by ProveExecution/VerifyExecution.
type KeyPair struct {
	Backend string
	K       int
	PK      []byte
	VK      []byte
}

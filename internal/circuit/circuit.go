// Package circuit builds the aggregate gnark circuit (layer L4): it
// walks a witness step by step, decodes each instruction inside the
// constraint system, dispatches to the chip registered for its opcode,
// and binds the initial/final register vectors as the circuit's public
// boundary (spec.md §4.4).
package circuit

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/vitorpy/sbpf-zkvm/internal/chips"
	"github.com/vitorpy/sbpf-zkvm/internal/tracer"
	"github.com/vitorpy/sbpf-zkvm/internal/witness"
)

// Sentinel errors NewCounterCircuit wraps into its returned error, so
// pkg/sbpfzkvm.ProveExecution can map construction failures onto the
// right sbpfzkvm.ErrorCode with errors.Is rather than string matching.
var (
	ErrInvalidRegister   = errors.New("register index out of range")
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
)

// CounterCircuit is the aggregate circuit proving that a sequence of
// trace steps carries InitialRegs to FinalRegs, one registered chip at a
// time. Its shape (step count and the opcode dispatched at each step) is
// fixed at construction time from a concrete witness, since gnark's
// Define is traced once at compile time and cannot branch on witness
// values themselves; the raw instruction bytes are still witnessed and
// decoded by field arithmetic inside Define so a prover cannot submit
// bytes that disagree with the opcode sequence the circuit was built for
// (DESIGN.md, "circuit shape is program-specific").
type CounterCircuit struct {
	InitialRegs chips.Registers `gnark:",public"`
	FinalRegs   chips.Registers `gnark:",public"`

	StepRegs  []chips.Registers
	PCs       []frontend.Variable
	InsnBytes [][8]frontend.Variable

	// ops is the Go-level decoded instruction sequence the witness this
	// circuit was built from actually contains. It is unexported, so
	// gnark's schema walker ignores it; it only drives which chip
	// Define dispatches to at each step, never the arithmetic itself.
	ops []tracer.Instruction
}

// NewCounterCircuit builds a CounterCircuit sized and shaped for w. All
// register-index validation spec.md §4.3 requires happens here, before
// any frontend.Variable is ever allocated.
func NewCounterCircuit(w *witness.Witness) (*CounterCircuit, error) {
	n := w.Len()
	c := &CounterCircuit{
		StepRegs:  make([]chips.Registers, n),
		PCs:       make([]frontend.Variable, n),
		InsnBytes: make([][8]frontend.Variable, n),
		ops:       make([]tracer.Instruction, n),
	}

	c.InitialRegs = gprsToRegisters(w.InitialRegs)
	c.FinalRegs = gprsToRegisters(w.FinalRegs)

	for i := 0; i < n; i++ {
		insn := tracer.Decode(w.InsnBytes[i])
		if insn.Dst >= chips.NumGPRs || insn.Src >= chips.NumGPRs {
			return nil, fmt.Errorf("circuit: step %d: %w (dst=%d src=%d)", i, ErrInvalidRegister, insn.Dst, insn.Src)
		}
		if _, ok := chips.Lookup(insn.Op); !ok {
			return nil, fmt.Errorf("circuit: step %d: %w: 0x%02x", i, ErrUnsupportedOpcode, byte(insn.Op))
		}
		c.ops[i] = insn
		c.StepRegs[i] = gprsToRegisters(w.StepRegs[i])
		c.PCs[i] = w.PCs[i]
		for j, b := range w.InsnBytes[i] {
			c.InsnBytes[i][j] = b
		}
	}
	return c, nil
}

func gprsToRegisters(g witness.GPRs) chips.Registers {
	var r chips.Registers
	for i, v := range g {
		r[i] = v
	}
	return r
}

// Define threads the register vector through one chip per step, per
// spec.md §4.4's synthesis algorithm: assign initial cells, dispatch
// each step to its chip, advance current, then bind current to the
// public final cells.
func (c *CounterCircuit) Define(api frontend.API) error {
	current := c.InitialRegs

	for i, insn := range c.ops {
		d := decodeStep(api, c.InsnBytes[i])
		api.AssertIsEqual(d.Opcode, frontend.Variable(int(insn.Op)))
		api.AssertIsEqual(d.Dst, frontend.Variable(int(insn.Dst)))
		api.AssertIsEqual(d.Src, frontend.Variable(int(insn.Src)))
		api.AssertIsEqual(d.Offset, frontend.Variable(tracer.OffsetAsU64(insn.Offset)))
		api.AssertIsEqual(d.Imm, frontend.Variable(tracer.ImmAsU64(insn.Imm)))

		ctor, ok := chips.Lookup(insn.Op)
		if !ok {
			// Unreachable: NewCounterCircuit already rejected this case.
			return fmt.Errorf("circuit: step %d: unsupported opcode 0x%02x", i, byte(insn.Op))
		}
		chip := ctor()
		op := chips.Operand{
			Dst:    int(insn.Dst),
			Src:    int(insn.Src),
			Offset: d.Offset,
			Imm:    d.Imm,
		}
		if err := chip.Synthesize(api, op, current, c.StepRegs[i]); err != nil {
			return fmt.Errorf("circuit: step %d: %w", i, err)
		}
		current = c.StepRegs[i]
	}

	for i := range current {
		api.AssertIsEqual(current[i], c.FinalRegs[i])
	}
	return nil
}

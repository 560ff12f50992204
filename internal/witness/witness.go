// Package witness lowers a tracer.ExecutionTrace into the flat,
// addressable vectors the circuit layer consumes (layer L2 of the
// proving pipeline).
package witness

import (
	"encoding/json"
	"fmt"

	"github.com/vitorpy/sbpf-zkvm/internal/tracer"
)

// GPRCount is the number of general-purpose registers carried in a
// Witness's register vectors (r0-r10; the program counter is tracked
// separately in PCs, per spec.md §3).
const GPRCount = tracer.NumRegisters - 1

// GPRs is a fixed-size r0-r10 register snapshot.
type GPRs [GPRCount]uint64

// Witness is the pure, total lowering of an ExecutionTrace: no field
// arithmetic happens here, only projection and copying (spec.md §4.2).
type Witness struct {
	InitialRegs GPRs
	FinalRegs   GPRs
	StepRegs    []GPRs
	PCs         []uint64
	InsnBytes   [][8]byte
	AuxRecords  []tracer.SideEffect
}

func project(r tracer.Registers) GPRs {
	var g GPRs
	copy(g[:], r[:GPRCount])
	return g
}

// FromTrace derives a Witness from an ExecutionTrace. Pure and total:
// every field is either a copy or a deterministic projection of trace
// data, per spec.md §4.2's "no field arithmetic yet" contract.
func FromTrace(t *tracer.ExecutionTrace) *Witness {
	w := &Witness{
		InitialRegs: project(t.InitialRegisters),
		FinalRegs:   project(t.FinalRegisters),
		StepRegs:    make([]GPRs, len(t.Instructions)),
		PCs:         make([]uint64, len(t.Instructions)),
		InsnBytes:   make([][8]byte, len(t.Instructions)),
		AuxRecords:  append([]tracer.SideEffect(nil), t.AuxTrace...),
	}
	for i, step := range t.Instructions {
		w.StepRegs[i] = project(step.RegistersAfter)
		w.PCs[i] = step.PC
		w.InsnBytes[i] = step.InstructionBytes
	}
	return w
}

// wireFormat is the JSON-serializable mirror of Witness. A separate type
// keeps Witness's field layout free to change without touching the wire
// format, following the teacher's practice of JSON-lines transport for
// proving artifacts (cmd/vybium-vm-prover/main.go).
type wireFormat struct {
	InitialRegs GPRs                  `json:"initial_regs"`
	FinalRegs   GPRs                  `json:"final_regs"`
	StepRegs    []GPRs                `json:"step_regs"`
	PCs         []uint64              `json:"pcs"`
	InsnBytes   [][8]byte             `json:"insn_bytes"`
	AuxRecords  []tracer.SideEffect   `json:"aux_records,omitempty"`
}

// ToBytes serializes the witness for caching or cross-process transport.
func (w *Witness) ToBytes() ([]byte, error) {
	wire := wireFormat{
		InitialRegs: w.InitialRegs,
		FinalRegs:   w.FinalRegs,
		StepRegs:    w.StepRegs,
		PCs:         w.PCs,
		InsnBytes:   w.InsnBytes,
		AuxRecords:  w.AuxRecords,
	}
	return json.Marshal(wire)
}

// FromBytes is the inverse of ToBytes. Round-trips exactly (spec.md §8
// invariant 2): FromBytes(w.ToBytes()) == w for every well-formed w.
func FromBytes(data []byte) (*Witness, error) {
	var wire wireFormat
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("witness: decode: %w", err)
	}
	return &Witness{
		InitialRegs: wire.InitialRegs,
		FinalRegs:   wire.FinalRegs,
		StepRegs:    wire.StepRegs,
		PCs:         wire.PCs,
		InsnBytes:   wire.InsnBytes,
		AuxRecords:  wire.AuxRecords,
	}, nil
}

// Len returns the number of instruction steps in the witness.
func (w *Witness) Len() int { return len(w.StepRegs) }

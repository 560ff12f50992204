// Package chips is the per-opcode constraint library (layer L3). Every
// chip implements a single operation: given assigned cells for the 11
// general-purpose registers before and after a step, emit constraints
// equivalent to "this opcode maps before -> after correctly" (spec.md
// §4.3). Chips hold no operand state: the decoded operand is passed to
// Synthesize. Ldw and Stw keep only the address hint of their last
// Synthesize call.
package chips

import "github.com/consensys/gnark/frontend"

// NumGPRs is the number of general-purpose registers (r0-r10) a chip
// operates over; the program counter is excluded from the vector chips
// see, per spec.md's stated default (SPEC_FULL.md §9 Open Questions).
const NumGPRs = 11

// Registers is the register vector a chip reads and writes inside the
// circuit: 11 gnark witness cells, one per general-purpose register.
type Registers = [NumGPRs]frontend.Variable

// Operand carries a decoded instruction's operand fields into a chip.
// Dst/Src are register indices already range-checked (< NumGPRs) by the
// decode step before any chip is constructed (spec.md §4.3 "Register-index
// validity").
type Operand struct {
	Dst    int
	Src    int
	Offset frontend.Variable // sign-reinterpreted per spec.md's signed-immediate encoding
	Imm    frontend.Variable // sign-reinterpreted per spec.md's signed-immediate encoding
}

// Chip is the single-method interface every opcode implements. A flat
// dispatch table (registry.go) maps an opcode byte to a Chip constructor;
// deliberately no inheritance hierarchy, per spec.md §9's design note.
type Chip interface {
	// Synthesize emits constraints relating before and after. It must
	// constrain every affected register to its expected value and every
	// unaffected register to be pointwise unchanged (non-interference).
	Synthesize(api frontend.API, op Operand, before, after Registers) error
}

// Constructor builds a Chip. It takes no arguments, since the decoded
// operand is passed to Synthesize instead, and it cannot fail — the only
// validation (register range) already happened during decode.
type Constructor func() Chip

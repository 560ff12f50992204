package chips

import "github.com/consensys/gnark/frontend"

// Ldw constrains LDW: dst <- mem[src+off]. The MVP has no
// memory-consistency argument (spec.md §9): the loaded value is an
// unconstrained witness cell (after[dst] itself), and the address is
// computed only to be retained as a hint for the future memory-trace
// extension. Present LDW/STW chips are address-arithmetic-only.
type Ldw struct {
	// Address is the computed src+off hint from the last Synthesize
	// call, exposed for callers building a future memory-trace argument.
	Address frontend.Variable
}

// NewLdw constructs the chip for LDW.
func NewLdw() Chip { return &Ldw{} }

func (c *Ldw) Synthesize(api frontend.API, op Operand, before, after Registers) error {
	c.Address = api.Add(before[op.Src], op.Offset)
	AssertNonInterference(api, op.Dst, before, after)
	return nil
}

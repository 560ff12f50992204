package chips

import "github.com/consensys/gnark/frontend"

// Stw constrains STW: mem[dst+off] <- src. A store never mutates the
// register file; the address is computed only as a hint for a future
// memory-trace argument, matching Ldw's address-arithmetic-only scope
// (spec.md §9).
type Stw struct {
	Address frontend.Variable
}

// NewStw constructs the chip for STW.
func NewStw() Chip { return &Stw{} }

func (c *Stw) Synthesize(api frontend.API, op Operand, before, after Registers) error {
	c.Address = api.Add(before[op.Dst], op.Offset)
	AssertAllUnchanged(api, before, after)
	return nil
}

package chips

import "github.com/consensys/gnark/frontend"

// Alu64AddImm constrains ALU64_ADD_IMM: dst <- dst + imm.
type Alu64AddImm struct{}

// NewAlu64AddImm constructs the chip for ALU64_ADD_IMM.
func NewAlu64AddImm() Chip { return &Alu64AddImm{} }

func (c *Alu64AddImm) Synthesize(api frontend.API, op Operand, before, after Registers) error {
	expected := api.Add(before[op.Dst], op.Imm)
	api.AssertIsEqual(after[op.Dst], expected)
	AssertNonInterference(api, op.Dst, before, after)
	return nil
}

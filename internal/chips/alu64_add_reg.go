package chips

import "github.com/consensys/gnark/frontend"

// Alu64AddReg constrains ALU64_ADD_REG: dst <- dst + src. When dst == src
// this naturally doubles the register: before[dst] is read twice and
// api.Add produces 2*before[dst], requiring no special case.
type Alu64AddReg struct{}

// NewAlu64AddReg constructs the chip for ALU64_ADD_REG.
func NewAlu64AddReg() Chip { return &Alu64AddReg{} }

func (c *Alu64AddReg) Synthesize(api frontend.API, op Operand, before, after Registers) error {
	expected := api.Add(before[op.Dst], before[op.Src])
	api.AssertIsEqual(after[op.Dst], expected)
	AssertNonInterference(api, op.Dst, before, after)
	return nil
}

package chips

import "github.com/consensys/gnark/frontend"

// Mov64Imm constrains MOV64_IMM: dst <- imm.
type Mov64Imm struct{}

// NewMov64Imm constructs the chip for MOV64_IMM.
func NewMov64Imm() Chip { return &Mov64Imm{} }

func (c *Mov64Imm) Synthesize(api frontend.API, op Operand, before, after Registers) error {
	api.AssertIsEqual(after[op.Dst], op.Imm)
	AssertNonInterference(api, op.Dst, before, after)
	return nil
}

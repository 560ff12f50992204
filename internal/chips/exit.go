package chips

import "github.com/consensys/gnark/frontend"

// Exit constrains EXIT: regs_after == regs_before pointwise. Swapping any
// register against this chip must be unsatisfiable (spec.md §8 invariant
// 7, "EXIT idempotence").
type Exit struct{}

// NewExit constructs the chip for EXIT.
func NewExit() Chip { return &Exit{} }

func (c *Exit) Synthesize(api frontend.API, op Operand, before, after Registers) error {
	AssertAllUnchanged(api, before, after)
	return nil
}

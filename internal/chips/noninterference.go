package chips

import "github.com/consensys/gnark/frontend"

// AssertNonInterference constrains every register other than `affected`
// to be pointwise unchanged between before and after. Every chip in this
// package calls this helper instead of duplicating the loop, mirroring the
// teacher's practice of one shared cross-row constraint emitter used from
// many call sites (internal/vybium-starks-vm/protocols/constraints.go)
// rather than repeating the same assertion in every chip.
func AssertNonInterference(api frontend.API, affected int, before, after Registers) {
	for i := 0; i < NumGPRs; i++ {
		if i == affected {
			continue
		}
		api.AssertIsEqual(after[i], before[i])
	}
}

// AssertAllUnchanged is AssertNonInterference with no affected register:
// every register must be pointwise unchanged. Used by chips whose opcode
// never mutates the register file (STW, EXIT).
func AssertAllUnchanged(api frontend.API, before, after Registers) {
	for i := 0; i < NumGPRs; i++ {
		api.AssertIsEqual(after[i], before[i])
	}
}

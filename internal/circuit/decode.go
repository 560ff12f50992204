package circuit

import "github.com/consensys/gnark/frontend"

// decoded is the in-circuit reconstruction of one step's operand fields,
// recombined from the 8 witnessed instruction-byte variables using the
// same little-endian "op:1 | dst:4b | src:4b | off:i16 | imm:i32" layout
// spec.md §3 invariant 5 documents. Recombining inside the constraint
// system (rather than only in the Go-level decode the circuit builder
// already performed) ties the witnessed raw bytes to the operand fields
// the dispatched chip actually consumes, so a prover cannot submit bytes
// that disagree with the instruction it claims to have executed.
type decoded struct {
	Opcode frontend.Variable
	Dst    frontend.Variable
	Src    frontend.Variable
	Offset frontend.Variable
	Imm    frontend.Variable
}

// decodeStep recombines one step's 8 instruction-byte variables into
// (opcode, dst, src, offset, imm), matching tracer.Decode's byte layout.
func decodeStep(api frontend.API, word [8]frontend.Variable) decoded {
	dstSrcBits := api.ToBinary(word[1], 8)
	dst := api.FromBinary(dstSrcBits[0:4]...)
	src := api.FromBinary(dstSrcBits[4:8]...)

	offset := api.Add(word[2], api.Mul(word[3], 1<<8))
	imm := api.Add(
		word[4],
		api.Mul(word[5], 1<<8),
		api.Mul(word[6], 1<<16),
		api.Mul(word[7], 1<<24),
	)

	return decoded{
		Opcode: word[0],
		Dst:    dst,
		Src:    src,
		Offset: offset,
		Imm:    imm,
	}
}

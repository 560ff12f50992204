package chips

import "github.com/vitorpy/sbpf-zkvm/internal/tracer"

// Registry is the flat opcode -> chip constructor dispatch table the
// aggregate circuit uses to synthesize each step (spec.md §9: "a flat
// dispatch table keyed by opcode is sufficient").
var Registry = map[tracer.Opcode]Constructor{
	tracer.OpMov64Imm:    NewMov64Imm,
	tracer.OpAlu64AddImm: NewAlu64AddImm,
	tracer.OpAlu64AddReg: NewAlu64AddReg,
	tracer.OpLdxDw:       NewLdw,
	tracer.OpStxDw:       NewStw,
	tracer.OpExit:        NewExit,
}

// Lookup returns the constructor registered for op, or false if no chip
// is registered — the aggregate circuit surfaces this as UnsupportedOpcode.
func Lookup(op tracer.Opcode) (Constructor, bool) {
	ctor, ok := Registry[op]
	return ctor, ok
}

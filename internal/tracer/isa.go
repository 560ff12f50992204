// Package tracer implements the BPF interpreter and per-step execution
// trace recorder (layer L1 of the proving pipeline).
package tracer

import (
	"encoding/binary"

	"github.com/cilium/ebpf/asm"
)

// NumRegisters is the width of the register file: r0-r10 are general
// purpose, r11 is the program counter.
const NumRegisters = 12

// PCRegister is the index the program counter occupies in the register
// file threaded through the tracer (excluded from the witness's register
// vector, per spec).
const PCRegister = 11

// FrameRegister is r10, the read-only stack frame pointer.
const FrameRegister = 10

// InstructionSize is the fixed width of one BPF instruction word, mirrored
// from asm.InstructionSize so the tracer and the circuit's decode step
// agree on the same constant.
const InstructionSize = asm.InstructionSize

// Opcode identifies the instruction class+operation byte (byte 0 of the
// 8-byte encoding). Only the MVP subset below has a registered chip; any
// other byte decodes fine but has no chip and fails synthesis with
// UnsupportedOpcode.
type Opcode byte

// MVP opcode set. Values follow the standard (e)BPF encoding also used by
// github.com/cilium/ebpf/asm and documented in nevermosby-ebpf/types.go.
const (
	OpMov64Imm    Opcode = 0xb7 // dst = imm
	OpAlu64AddImm Opcode = 0x07 // dst += imm
	OpAlu64AddReg Opcode = 0x0f // dst += src
	OpLdxDw       Opcode = 0x79 // dst = *(u64 *)(src + off)
	OpStxDw       Opcode = 0x7b // *(u64 *)(dst + off) = src
	OpExit        Opcode = 0x95 // return
)

// Instruction is the decoded form of one 8-byte trace entry: op:1 | dst:4b
// | src:4b | off:i16 | imm:i32, little-endian, exactly as spec.md §3
// invariant 5 describes it.
type Instruction struct {
	Op     Opcode
	Dst    uint8
	Src    uint8
	Offset int16
	Imm    int32
}

// Decode parses a raw 8-byte instruction word. It never errors: any byte
// pattern decodes to some Instruction, validity (known opcode, in-range
// registers) is checked by callers (the tracer's interpreter loop, or
// circuit.NewCounterCircuit).
func Decode(word [8]byte) Instruction {
	dstSrc := word[1]
	return Instruction{
		Op:     Opcode(word[0]),
		Dst:    dstSrc & 0x0f,
		Src:    dstSrc >> 4,
		Offset: int16(binary.LittleEndian.Uint16(word[2:4])),
		Imm:    int32(binary.LittleEndian.Uint32(word[4:8])),
	}
}

// Encode packs an Instruction back into its 8-byte wire form. Inverse of
// Decode; used by the assembler (pkg/sbpfzkvm.Program.Bytecode) and by
// tests that need to hand-build bytecode.
func Encode(in Instruction) [8]byte {
	var word [8]byte
	word[0] = byte(in.Op)
	word[1] = (in.Src << 4) | (in.Dst & 0x0f)
	binary.LittleEndian.PutUint16(word[2:4], uint16(in.Offset))
	binary.LittleEndian.PutUint32(word[4:8], uint32(in.Imm))
	return word
}

// ImmAsU64 reinterprets a signed 32-bit immediate as the bit-identical
// unsigned 64-bit value BPF's sign-extension-on-load semantics produce for
// ALU64 operations, per spec.md §4.3 "Signed immediates".
func ImmAsU64(imm int32) uint64 {
	return uint64(uint32(imm))
}

// OffsetAsU64 reinterprets a signed 16-bit offset the same way, for
// address-arithmetic hints in LDW/STW.
func OffsetAsU64(off int16) uint64 {
	return uint64(uint16(off))
}

package tracer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEncode(t *testing.T, insns ...Instruction) []byte {
	t.Helper()
	var out []byte
	for _, in := range insns {
		word := Encode(in)
		out = append(out, word[:]...)
	}
	return out
}

// TestConstantReturn is scenario S1: MOV64_IMM r0, 42; EXIT.
func TestConstantReturn(t *testing.T) {
	code := mustEncode(t,
		Instruction{Op: OpMov64Imm, Dst: 0, Imm: 42},
		Instruction{Op: OpExit},
	)

	trace, err := Trace(code, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, trace.Instructions, 2)
	assert.Equal(t, uint64(42), trace.FinalRegisters[0])
	for i := 1; i < NumRegisters-1; i++ {
		assert.Equalf(t, trace.InitialRegisters[i], trace.FinalRegisters[i], "register %d should be untouched", i)
	}
}

// TestRegisterAddition is scenario S2: r0=10; r1=20; r0+=r1; EXIT.
func TestRegisterAddition(t *testing.T) {
	code := mustEncode(t,
		Instruction{Op: OpMov64Imm, Dst: 0, Imm: 10},
		Instruction{Op: OpMov64Imm, Dst: 1, Imm: 20},
		Instruction{Op: OpAlu64AddReg, Dst: 0, Src: 1},
		Instruction{Op: OpExit},
	)

	trace, err := Trace(code, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, trace.Instructions, 4)
	assert.Equal(t, uint64(30), trace.FinalRegisters[0])

	addStep := trace.Instructions[2]
	assert.Equal(t, uint64(10), addStep.RegistersBefore[0])
	assert.Equal(t, uint64(20), addStep.RegistersBefore[1])
	assert.Equal(t, uint64(30), addStep.RegistersAfter[0])
}

// TestEmptyBytecode is scenario S3.
func TestEmptyBytecode(t *testing.T) {
	_, err := Trace(nil, DefaultConfig())
	require.Error(t, err)
	var tracerErr *Error
	require.True(t, errors.As(err, &tracerErr))
	assert.Equal(t, ErrLoad, tracerErr.Code)
}

// TestTraceChain is invariant 1 of spec.md §8: entry[k].after == entry[k+1].before.
func TestTraceChain(t *testing.T) {
	code := mustEncode(t,
		Instruction{Op: OpMov64Imm, Dst: 0, Imm: 1},
		Instruction{Op: OpMov64Imm, Dst: 1, Imm: 2},
		Instruction{Op: OpAlu64AddReg, Dst: 0, Src: 1},
		Instruction{Op: OpExit},
	)
	trace, err := Trace(code, DefaultConfig())
	require.NoError(t, err)

	for k := 0; k < len(trace.Instructions)-1; k++ {
		assert.Equal(t, trace.Instructions[k].RegistersAfter, trace.Instructions[k+1].RegistersBefore)
	}
	assert.Equal(t, trace.Instructions[0].RegistersBefore, trace.InitialRegisters)
	assert.Equal(t, trace.Instructions[len(trace.Instructions)-1].RegistersAfter, trace.FinalRegisters)
}

func TestComputeExhausted(t *testing.T) {
	// Six instructions against a budget of five: the sixth step exceeds it.
	add := Instruction{Op: OpAlu64AddImm, Dst: 0, Imm: 1}
	code := mustEncode(t, add, add, add, add, add, add)
	cfg := &Config{ComputeBudget: 5, StackSize: 64}

	_, err := Trace(code, cfg)
	require.Error(t, err)
	var tracerErr *Error
	require.True(t, errors.As(err, &tracerErr))
	assert.Equal(t, ErrComputeExhausted, tracerErr.Code)
}

func TestLoadStoreRoundTrip(t *testing.T) {
	code := mustEncode(t,
		Instruction{Op: OpMov64Imm, Dst: 1, Imm: 7},
		Instruction{Op: OpStxDw, Dst: FrameRegister, Src: 1, Offset: -8},
		Instruction{Op: OpLdxDw, Dst: 2, Src: FrameRegister, Offset: -8},
		Instruction{Op: OpExit},
	)
	trace, err := Trace(code, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), trace.FinalRegisters[2])
}

// TestUnknownOpcodeRejected is scenario S5: a decodable byte with no
// registered opcode must surface as ErrUnsupportedOpcode, matching the
// taxonomy the circuit layer uses for the same condition.
func TestUnknownOpcodeRejected(t *testing.T) {
	code := mustEncode(t, Instruction{Op: Opcode(0xff), Dst: 0})
	_, err := Trace(code, DefaultConfig())
	require.Error(t, err)
	var tracerErr *Error
	require.True(t, errors.As(err, &tracerErr))
	assert.Equal(t, ErrUnsupportedOpcode, tracerErr.Code)
}

func TestUnalignedBytecodeRejected(t *testing.T) {
	_, err := Trace([]byte{0x95, 0x00, 0x00}, DefaultConfig())
	require.Error(t, err)
	var tracerErr *Error
	require.True(t, errors.As(err, &tracerErr))
	assert.Equal(t, ErrLoad, tracerErr.Code)
}

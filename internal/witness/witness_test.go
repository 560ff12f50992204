package witness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorpy/sbpf-zkvm/internal/tracer"
)

func buildTrace(t *testing.T) *tracer.ExecutionTrace {
	t.Helper()
	code := append(
		append([]byte{}, encode(t, tracer.Instruction{Op: tracer.OpMov64Imm, Dst: 0, Imm: 10})...),
		append(
			encode(t, tracer.Instruction{Op: tracer.OpMov64Imm, Dst: 1, Imm: 20}),
			append(
				encode(t, tracer.Instruction{Op: tracer.OpAlu64AddReg, Dst: 0, Src: 1}),
				encode(t, tracer.Instruction{Op: tracer.OpExit})...,
			)...,
		)...,
	)
	trace, err := tracer.Trace(code, tracer.DefaultConfig())
	require.NoError(t, err)
	return trace
}

func encode(t *testing.T, in tracer.Instruction) []byte {
	t.Helper()
	w := tracer.Encode(in)
	return w[:]
}

// TestRegisterProjection is invariant 3 of spec.md §8.
func TestRegisterProjection(t *testing.T) {
	trace := buildTrace(t)
	w := FromTrace(trace)

	var wantInitial GPRs
	copy(wantInitial[:], trace.InitialRegisters[:GPRCount])
	assert.Equal(t, wantInitial, w.InitialRegs)

	var wantFinal GPRs
	copy(wantFinal[:], trace.FinalRegisters[:GPRCount])
	assert.Equal(t, wantFinal, w.FinalRegs)
	assert.Equal(t, uint64(30), w.FinalRegs[0])
}

// TestSerializationRoundTrip covers invariant 2 and scenario S6.
func TestSerializationRoundTrip(t *testing.T) {
	trace := buildTrace(t)
	w := FromTrace(trace)

	data, err := w.ToBytes()
	require.NoError(t, err)

	got, err := FromBytes(data)
	require.NoError(t, err)

	assert.Equal(t, w.StepRegs, got.StepRegs)
	assert.Equal(t, w.InitialRegs, got.InitialRegs)
	assert.Equal(t, w.FinalRegs, got.FinalRegs)
	assert.Equal(t, w.PCs, got.PCs)
	assert.Equal(t, w.InsnBytes, got.InsnBytes)
}

func TestLengthAgreement(t *testing.T) {
	trace := buildTrace(t)
	w := FromTrace(trace)
	assert.Equal(t, len(trace.Instructions), w.Len())
	assert.Equal(t, w.Len(), len(w.PCs))
	assert.Equal(t, w.Len(), len(w.InsnBytes))
}

package backend_test

import (
	"os"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/stretchr/testify/require"

	"github.com/vitorpy/sbpf-zkvm/internal/backend"
	"github.com/vitorpy/sbpf-zkvm/internal/circuit"
	"github.com/vitorpy/sbpf-zkvm/internal/tracer"
	"github.com/vitorpy/sbpf-zkvm/internal/witness"
)

func buildTrace(t *testing.T) *witness.Witness {
	t.Helper()
	code := append(tracerEncode(tracer.Instruction{Op: tracer.OpMov64Imm, Dst: 0, Imm: 42}),
		tracerEncode(tracer.Instruction{Op: tracer.OpExit})...)
	tr, err := tracer.Trace(code, tracer.DefaultConfig())
	require.NoError(t, err)
	return witness.FromTrace(tr)
}

func tracerEncode(in tracer.Instruction) []byte {
	w := tracer.Encode(in)
	return w[:]
}

// TestGroth16RoundTrip exercises Resolve/Setup/Prove/Verify end to end
// against a real (small, in-test) circuit instance.
func TestGroth16RoundTrip(t *testing.T) {
	w := buildTrace(t)
	c, err := circuit.NewCounterCircuit(w)
	require.NoError(t, err)
	assignment, err := circuit.NewCounterCircuit(w)
	require.NoError(t, err)

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, c)
	require.NoError(t, err)

	b, err := backend.Resolve("groth16")
	require.NoError(t, err)
	require.Equal(t, "groth16", b.Name())

	pk, vk, err := b.Setup(ccs)
	require.NoError(t, err)

	fullWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	require.NoError(t, err)
	publicWitness, err := fullWitness.Public()
	require.NoError(t, err)

	proof, err := b.Prove(ccs, pk, fullWitness)
	require.NoError(t, err)

	ok, err := b.Verify(proof, vk, publicWitness)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestResolveUnknownBackend(t *testing.T) {
	_, err := backend.Resolve("nonexistent")
	require.Error(t, err)
}

func TestResolveDefaultsToGroth16(t *testing.T) {
	b, err := backend.Resolve("")
	require.NoError(t, err)
	require.Equal(t, "groth16", b.Name())
}

// TestLoadOrSetupCaches exercises the on-disk cache: a second call for
// the same (name, k) must return identical bytes without re-deriving.
func TestLoadOrSetupCaches(t *testing.T) {
	w := buildTrace(t)
	c, err := circuit.NewCounterCircuit(w)
	require.NoError(t, err)
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, c)
	require.NoError(t, err)

	dir := t.TempDir()
	fp := backend.Fingerprint(w.InsnBytes)
	first, err := backend.LoadOrSetup(dir, "groth16", 8, fp, ccs)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	second, err := backend.LoadOrSetup(dir, "groth16", 8, fp, ccs)
	require.NoError(t, err)
	require.Equal(t, first.PK, second.PK)
	require.Equal(t, first.VK, second.VK)
}

// TestFingerprintDiffers guards the correctness property Fingerprint
// exists for: two distinct instruction sequences must never collide, or
// the on-disk cache could hand out a key pair for the wrong circuit.
func TestFingerprintDiffers(t *testing.T) {
	a := [][8]byte{tracer.Encode(tracer.Instruction{Op: tracer.OpMov64Imm, Dst: 0, Imm: 1})}
	b := [][8]byte{tracer.Encode(tracer.Instruction{Op: tracer.OpMov64Imm, Dst: 0, Imm: 2})}
	require.NotEqual(t, backend.Fingerprint(a), backend.Fingerprint(b))
	require.Equal(t, backend.Fingerprint(a), backend.Fingerprint(a))
}

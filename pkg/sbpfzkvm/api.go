// Package sbpfzkvm is the public facade over the tracer/witness/chips/
// circuit/backend pipeline: four entry points (spec.md §6) that hide the
// internal layering from callers.
package sbpfzkvm

import (
	"context"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/vitorpy/sbpf-zkvm/internal/backend"
	"github.com/vitorpy/sbpf-zkvm/internal/circuit"
	"github.com/vitorpy/sbpf-zkvm/internal/tracer"
	"github.com/vitorpy/sbpf-zkvm/internal/witness"
)

// TraceProgram runs bytecode to completion and returns its execution
// trace (spec.md §6 a). ctx is checked once per interpreted step so a
// caller-side timeout aborts promptly.
func TraceProgram(ctx context.Context, bytecode []byte, cfg *TracerConfig) (*ExecutionTrace, error) {
	if cfg == nil {
		cfg = DefaultTracerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, newError(ErrLoad, "invalid tracer config", err)
	}

	trace, err := tracer.TraceContext(ctx, bytecode, cfg.toInternal())
	if err != nil {
		return nil, wrapTracerError(err)
	}
	return trace, nil
}

// ProveExecution lowers trace to a witness, builds the aggregate circuit,
// and proves it against kp (spec.md §6 b). kp must have come from
// LoadOrGenerateKeyPair for a circuit of this trace's exact shape (step
// count and opcode sequence) — DESIGN.md's "circuit shape is
// program-specific" design note.
func ProveExecution(ctx context.Context, trace *ExecutionTrace, cfg *ProverConfig, kp *KeyPair) (*Proof, *PublicInputs, error) {
	if cfg == nil {
		cfg = DefaultProverConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, newError(ErrBackend, "invalid prover config", err)
	}
	if kp == nil {
		return nil, nil, newError(ErrBackend, "ProveExecution requires a key pair from LoadOrGenerateKeyPair", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, newError(ErrRuntime, "prove canceled", err)
	}

	w := witness.FromTrace(trace)
	assignment, err := circuit.NewCounterCircuit(w)
	if err != nil {
		return nil, nil, wrapCircuitError(err)
	}

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, assignment)
	if err != nil {
		return nil, nil, newError(ErrBackend, "compile circuit", err)
	}

	fullWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, newError(ErrWitnessMismatch, "build witness assignment", err)
	}

	b, err := backend.Resolve(kp.Backend)
	if err != nil {
		return nil, nil, newError(ErrBackend, "resolve backend", err)
	}

	proofBytes, err := b.Prove(ccs, kp.PK, fullWitness)
	if err != nil {
		return nil, nil, newError(ErrWitnessMismatch, "prove", err)
	}

	pub := &PublicInputs{InitialRegs: w.InitialRegs, FinalRegs: w.FinalRegs}
	return &Proof{Backend: kp.Backend, Bytes: proofBytes}, pub, nil
}

// VerifyExecution checks proof against pub and kp's verifying key
// (spec.md §6 c).
func VerifyExecution(proof *Proof, pub *PublicInputs, kp *KeyPair) (bool, error) {
	if proof == nil || pub == nil || kp == nil {
		return false, newError(ErrBackend, "VerifyExecution requires proof, public inputs, and a key pair", nil)
	}
	if proof.Backend != kp.Backend {
		return false, newError(ErrBackend, fmt.Sprintf("proof backend %q does not match key pair backend %q", proof.Backend, kp.Backend), nil)
	}

	var ini, fin [11]frontend.Variable
	for i := range pub.InitialRegs {
		ini[i] = pub.InitialRegs[i]
		fin[i] = pub.FinalRegs[i]
	}
	boundary := &boundaryAssignment{Initial: ini, Final: fin}
	publicOnly, err := frontend.NewWitness(boundary, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, newError(ErrWitnessMismatch, "build public witness", err)
	}

	b, err := backend.Resolve(kp.Backend)
	if err != nil {
		return false, newError(ErrBackend, "resolve backend", err)
	}

	ok, err := b.Verify(proof.Bytes, kp.VK, publicOnly)
	if err != nil {
		return false, newError(ErrBackend, "verify", err)
	}
	return ok, nil
}

// boundaryAssignment is the minimal gnark struct carrying just the public
// InitialRegs/FinalRegs cells, used to build the public-only witness
// VerifyExecution needs without reconstructing the full trace-shaped
// CounterCircuit assignment. Its field layout and tags must mirror
// CounterCircuit's public section exactly, since they describe the same
// public witness vector.
type boundaryAssignment struct {
	Initial [11]frontend.Variable `gnark:",public"`
	Final   [11]frontend.Variable `gnark:",public"`
}

func (boundaryAssignment) Define(frontend.API) error { return nil }

// LoadOrGenerateKeyPair derives (or loads from cfg.CacheDir) a key pair
// for a circuit shaped by shape — the exact instruction sequence the
// proof will be for (spec.md §6 d). Groth16's per-circuit trusted setup
// means a key pair is valid only for circuits of this precise shape.
func LoadOrGenerateKeyPair(cfg *KeygenConfig, shape *ExecutionTrace) (*KeyPair, error) {
	if cfg == nil {
		cfg = DefaultKeygenConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, newError(ErrBackend, "invalid keygen config", err)
	}
	if shape == nil {
		return nil, newError(ErrBackend, "LoadOrGenerateKeyPair requires a representative execution trace", nil)
	}

	w := witness.FromTrace(shape)
	c, err := circuit.NewCounterCircuit(w)
	if err != nil {
		return nil, wrapCircuitError(err)
	}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, c)
	if err != nil {
		return nil, newError(ErrBackend, "compile circuit", err)
	}

	fingerprint := backend.Fingerprint(w.InsnBytes)
	cached, err := backend.LoadOrSetup(cfg.CacheDir, cfg.Backend, cfg.K, fingerprint, ccs)
	if err != nil {
		return nil, newError(ErrBackend, "setup", err)
	}
	return &KeyPair{Backend: cached.Backend, K: cached.K, PK: cached.PK, VK: cached.VK}, nil
}

func wrapTracerError(err error) error {
	var tracerErr *tracer.Error
	if !errors.As(err, &tracerErr) {
		return newError(ErrUnknown, "trace", err)
	}
	code := map[tracer.ErrorCode]ErrorCode{
		tracer.ErrLoad:              ErrLoad,
		tracer.ErrRuntime:           ErrRuntime,
		tracer.ErrComputeExhausted:  ErrComputeExhausted,
		tracer.ErrInvalidRegister:   ErrInvalidRegister,
		tracer.ErrUnsupportedOpcode: ErrUnsupportedOpcode,
	}[tracerErr.Code]
	return newError(code, tracerErr.Message, tracerErr.Cause)
}

func wrapCircuitError(err error) error {
	switch {
	case errors.Is(err, circuit.ErrInvalidRegister):
		return newError(ErrInvalidRegister, "circuit construction", err)
	case errors.Is(err, circuit.ErrUnsupportedOpcode):
		return newError(ErrUnsupportedOpcode, "circuit construction", err)
	default:
		return newError(ErrUnknown, "circuit construction", err)
	}
}

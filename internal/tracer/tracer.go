package tracer

import (
	"context"
	"fmt"
)

// maxProgramBytes bounds the bytecode accepted by the loader, mirroring
// the "MaxBPFInstructions" ceiling nevermosby-ebpf/types.go documents for
// the in-kernel JIT, adapted to the MVP's userspace interpreter.
const maxProgramBytes = 4096 * InstructionSize

// Trace loads bytecode, verifies it against the fixed 8-byte instruction
// encoding, and interprets it to completion, returning the full per-step
// execution trace, using a background context (see TraceContext). Trace
// and TraceContext are the tracer's public entry points
// (spec.md §4.1's `trace(bytecode) -> Result<ExecutionTrace, TracerError>`).
func Trace(bytecode []byte, cfg *Config) (*ExecutionTrace, error) {
	return TraceContext(context.Background(), bytecode, cfg)
}

// TraceContext is Trace with cancellation: ctx is checked once per step,
// so a caller-side timeout aborts promptly even though the interpreter
// itself has no suspension points to cancel (spec.md §5, ADDED ambient
// cancellation via pkg/sbpfzkvm.TraceProgram's ctx parameter).
func TraceContext(ctx context.Context, bytecode []byte, cfg *Config) (*ExecutionTrace, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := verify(bytecode); err != nil {
		return nil, err
	}

	v := newVM(cfg, bytecode)
	rec := newRecorder()

	for {
		if err := ctx.Err(); err != nil {
			return nil, newError(ErrRuntime, "trace canceled", err)
		}

		pc := v.regs[PCRegister]
		word := v.fetch(pc)
		before := v.regs
		rec.record(pc, word, before)

		cont, err := v.step()
		if err != nil {
			return nil, err
		}
		if !cont {
			break
		}
	}

	finalRegs := v.regs
	return rec.build(finalRegs), nil
}

// verify rejects bytecode the loader or static verifier would refuse:
// empty input, or a length that isn't a whole number of 8-byte
// instruction words (spec.md §6: "sequence of 8-byte little-endian
// instruction words").
func verify(bytecode []byte) error {
	if len(bytecode) == 0 {
		return newError(ErrLoad, "empty bytecode", nil)
	}
	if len(bytecode)%InstructionSize != 0 {
		return newError(ErrLoad, fmt.Sprintf("bytecode length %d is not a multiple of %d", len(bytecode), InstructionSize), nil)
	}
	if len(bytecode) > maxProgramBytes {
		return newError(ErrLoad, fmt.Sprintf("bytecode of %d bytes exceeds maximum of %d", len(bytecode), maxProgramBytes), nil)
	}
	return nil
}

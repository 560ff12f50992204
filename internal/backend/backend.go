// Package backend abstracts over the proof system the core proves and
// verifies through. pkg/sbpfzkvm depends only on the Backend interface;
// internal/backend/groth16.go and plonk.go are the two concrete
// implementations spec.md §6 names (ADDED, DOMAIN STACK).
package backend

import (
	"bytes"
	"fmt"
	"io"

	"github.com/consensys/gnark/constraint"

	gnarkwitness "github.com/consensys/gnark/backend/witness"
)

// Backend is the proof-system-agnostic surface the core calls through:
// compile happens once per circuit shape (pkg/sbpfzkvm owns that via
// gnark's frontend.Compile), Setup/Prove/Verify are the three operations
// spec.md §6 a-d name, realized against whichever scheme Name identifies.
type Backend interface {
	// Name identifies the backend ("groth16" or "plonk"), used for cache
	// file naming and recorded in KeyPair.Backend.
	Name() string

	// Setup derives a proving/verifying key pair for ccs. For Groth16 this
	// is a per-circuit trusted setup; for PLONK it derives pk/vk from a
	// KZG SRS that Setup itself generates for ccs (see plonk.go).
	Setup(ccs constraint.ConstraintSystem) (pk, vk []byte, err error)

	// Prove produces a serialized proof for fullWitness against ccs/pk.
	Prove(ccs constraint.ConstraintSystem, pk []byte, fullWitness gnarkwitness.Witness) (proof []byte, err error)

	// Verify checks a serialized proof against vk and the public witness.
	Verify(proof, vk []byte, publicWitness gnarkwitness.Witness) (bool, error)
}

// marshal serializes any gnark artifact implementing io.WriterTo (proving
// keys, verifying keys, proofs all do) into a byte slice suitable for the
// params_k{K}.bin-style disk cache spec.md §6 describes.
func marshal(w io.WriterTo) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("backend: serialize: %w", err)
	}
	return buf.Bytes(), nil
}

// unmarshal is marshal's inverse, populating r (a fresh key/proof value
// obtained from the backend's New* constructor) from data.
func unmarshal(data []byte, r io.ReaderFrom) error {
	if _, err := r.ReadFrom(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("backend: deserialize: %w", err)
	}
	return nil
}

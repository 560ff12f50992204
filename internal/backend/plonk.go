package backend

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/test/unsafekzg"

	gnarkwitness "github.com/consensys/gnark/backend/witness"
)

// plonkBackend is the opt-in backend (backend name "plonk"):
// a KZG-committed PLONK scheme over BN254, exercising the universal-SRS
// framing spec.md's "PLONK-style" language names. The SRS used here is
// generated per Setup call via gnark's own test/unsafekzg helper rather
// than loaded from a real ceremony transcript — acceptable for this
// exercise, called out in DESIGN.md, since no production KZG ceremony
// artifact is available to fetch.
type plonkBackend struct{}

// NewPlonk constructs the PLONK backend.
func NewPlonk() Backend { return plonkBackend{} }

func (plonkBackend) Name() string { return "plonk" }

func (plonkBackend) Setup(ccs constraint.ConstraintSystem) (pk, vk []byte, err error) {
	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("backend: plonk srs: %w", err)
	}
	provingKey, verifyingKey, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return nil, nil, fmt.Errorf("backend: plonk setup: %w", err)
	}
	if pk, err = marshal(provingKey); err != nil {
		return nil, nil, err
	}
	if vk, err = marshal(verifyingKey); err != nil {
		return nil, nil, err
	}
	return pk, vk, nil
}

func (plonkBackend) Prove(ccs constraint.ConstraintSystem, pkBytes []byte, fullWitness gnarkwitness.Witness) ([]byte, error) {
	pk := plonk.NewProvingKey(ecc.BN254)
	if err := unmarshal(pkBytes, pk); err != nil {
		return nil, fmt.Errorf("backend: plonk load proving key: %w", err)
	}
	proof, err := plonk.Prove(ccs, pk, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("backend: plonk prove: %w", err)
	}
	return marshal(proof)
}

func (plonkBackend) Verify(proofBytes, vkBytes []byte, publicWitness gnarkwitness.Witness) (bool, error) {
	vk := plonk.NewVerifyingKey(ecc.BN254)
	if err := unmarshal(vkBytes, vk); err != nil {
		return false, fmt.Errorf("backend: plonk load verifying key: %w", err)
	}
	proof := plonk.NewProof(ecc.BN254)
	if err := unmarshal(proofBytes, proof); err != nil {
		return false, fmt.Errorf("backend: plonk load proof: %w", err)
	}
	if err := plonk.Verify(proof, vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}

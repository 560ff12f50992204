package backend

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"

	gnarkwitness "github.com/consensys/gnark/backend/witness"
)

// groth16Backend is the default backend (backend name "groth16" or
// unset): a per-circuit trusted setup over BN254, exactly as spec.md §6
// describes ("per-circuit, not universal").
type groth16Backend struct{}

// NewGroth16 constructs the default backend.
func NewGroth16() Backend { return groth16Backend{} }

func (groth16Backend) Name() string { return "groth16" }

func (groth16Backend) Setup(ccs constraint.ConstraintSystem) (pk, vk []byte, err error) {
	provingKey, verifyingKey, err := groth16.Setup(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("backend: groth16 setup: %w", err)
	}
	if pk, err = marshal(provingKey); err != nil {
		return nil, nil, err
	}
	if vk, err = marshal(verifyingKey); err != nil {
		return nil, nil, err
	}
	return pk, vk, nil
}

func (groth16Backend) Prove(ccs constraint.ConstraintSystem, pkBytes []byte, fullWitness gnarkwitness.Witness) ([]byte, error) {
	pk := groth16.NewProvingKey(ecc.BN254)
	if err := unmarshal(pkBytes, pk); err != nil {
		return nil, fmt.Errorf("backend: groth16 load proving key: %w", err)
	}
	proof, err := groth16.Prove(ccs, pk, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("backend: groth16 prove: %w", err)
	}
	return marshal(proof)
}

func (groth16Backend) Verify(proofBytes, vkBytes []byte, publicWitness gnarkwitness.Witness) (bool, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if err := unmarshal(vkBytes, vk); err != nil {
		return false, fmt.Errorf("backend: groth16 load verifying key: %w", err)
	}
	proof := groth16.NewProof(ecc.BN254)
	if err := unmarshal(proofBytes, proof); err != nil {
		return false, fmt.Errorf("backend: groth16 load proof: %w", err)
	}
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}

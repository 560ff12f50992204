package backend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/consensys/gnark/constraint"
)

// CachedKeyPair is the on-disk-cacheable bundle Setup produces: the
// backend name, the circuit size parameter K the caller supplied, and
// serialized proving/verifying keys. K is recorded and used in the cache
// file names (together with the backend name and a content fingerprint,
// see Fingerprint); it is not derived from or checked against the
// constraint system's size.
type CachedKeyPair struct {
	Backend string
	K       int
	PK      []byte
	VK      []byte
}

func pkPath(dir, fp string, k int) string {
	return filepath.Join(dir, fmt.Sprintf("counter_pk_k%d_%s.bin", k, fp))
}
func vkPath(dir, fp string, k int) string {
	return filepath.Join(dir, fmt.Sprintf("counter_vk_k%d_%s.bin", k, fp))
}

// LoadOrSetup returns a cached key pair for (name, k, fingerprint) from
// dir if present, deriving one via Setup(ccs) and writing it to dir
// otherwise. dir == "" disables caching: every call derives a fresh key
// pair. This is the one disk-touching operation in the backend package;
// the cache is addressed explicitly by the caller, never a package-level
// var, per spec.md §9's "no global state".
func LoadOrSetup(dir, name string, k int, fingerprint string, ccs constraint.ConstraintSystem) (*CachedKeyPair, error) {
	if name == "" {
		name = "groth16"
	}
	cacheKey := name + "_" + fingerprint
	if dir != "" {
		if pk, vk, ok := loadCached(dir, cacheKey, k); ok {
			return &CachedKeyPair{Backend: name, K: k, PK: pk, VK: vk}, nil
		}
	}

	b, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	pk, vk, err := b.Setup(ccs)
	if err != nil {
		return nil, err
	}
	if dir != "" {
		if err := storeCached(dir, cacheKey, k, pk, vk); err != nil {
			return nil, err
		}
	}
	return &CachedKeyPair{Backend: name, K: k, PK: pk, VK: vk}, nil
}

func loadCached(dir, fp string, k int) (pk, vk []byte, ok bool) {
	pkb, err1 := os.ReadFile(pkPath(dir, fp, k))
	vkb, err2 := os.ReadFile(vkPath(dir, fp, k))
	if err1 != nil || err2 != nil {
		return nil, nil, false
	}
	return pkb, vkb, true
}

func storeCached(dir, fp string, k int, pk, vk []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("backend: cache dir: %w", err)
	}
	if err := os.WriteFile(pkPath(dir, fp, k), pk, 0o644); err != nil {
		return fmt.Errorf("backend: write proving key: %w", err)
	}
	if err := os.WriteFile(vkPath(dir, fp, k), vk, 0o644); err != nil {
		return fmt.Errorf("backend: write verifying key: %w", err)
	}
	return nil
}

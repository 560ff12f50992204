package sbpfzkvm

import (
	"fmt"

	"github.com/vitorpy/sbpf-zkvm/internal/tracer"
)

// TracerConfig configures TraceProgram, mirroring tracer.Config with the
// teacher's chainable With*/Validate/Clone pattern
// (internal/vybium-starks-vm/utils/config.go).
type TracerConfig struct {
	ComputeBudget uint64
	StackSize     uint64
}

// DefaultTracerConfig returns the spec's documented defaults.
func DefaultTracerConfig() *TracerConfig {
	cfg := tracer.DefaultConfig()
	return &TracerConfig{ComputeBudget: cfg.ComputeBudget, StackSize: cfg.StackSize}
}

func (c *TracerConfig) Validate() error {
	if c.ComputeBudget == 0 {
		return fmt.Errorf("compute budget must be positive")
	}
	if c.StackSize == 0 {
		return fmt.Errorf("stack size must be positive")
	}
	return nil
}

func (c *TracerConfig) WithComputeBudget(budget uint64) *TracerConfig {
	c.ComputeBudget = budget
	return c
}

func (c *TracerConfig) WithStackSize(size uint64) *TracerConfig {
	c.StackSize = size
	return c
}

func (c *TracerConfig) Clone() *TracerConfig {
	return &TracerConfig{ComputeBudget: c.ComputeBudget, StackSize: c.StackSize}
}

func (c *TracerConfig) toInternal() *tracer.Config {
	return &tracer.Config{ComputeBudget: c.ComputeBudget, StackSize: c.StackSize}
}

// ProverConfig is the configuration ProveExecution validates. ProveExecution
// proves with the backend recorded in its KeyPair argument, not with
// Backend, and does not read CacheDir; key derivation and caching are
// LoadOrGenerateKeyPair's job (see KeygenConfig).
type ProverConfig struct {
	Backend  string // "groth16" (default) or "plonk"
	CacheDir string // disk cache directory for pk/vk; "" means none
}

// DefaultProverConfig returns the default: groth16, no cache directory.
// ProveExecution always requires a *KeyPair from LoadOrGenerateKeyPair; it
// never derives one itself.
func DefaultProverConfig() *ProverConfig {
	return &ProverConfig{Backend: "groth16"}
}

func (c *ProverConfig) Validate() error {
	if c.Backend != "" && c.Backend != "groth16" && c.Backend != "plonk" {
		return fmt.Errorf("backend must be 'groth16' or 'plonk', got %q", c.Backend)
	}
	return nil
}

func (c *ProverConfig) WithBackend(name string) *ProverConfig {
	c.Backend = name
	return c
}

func (c *ProverConfig) WithCacheDir(dir string) *ProverConfig {
	c.CacheDir = dir
	return c
}

func (c *ProverConfig) Clone() *ProverConfig {
	return &ProverConfig{Backend: c.Backend, CacheDir: c.CacheDir}
}

// KeygenConfig configures LoadOrGenerateKeyPair: backend, cache
// directory, and the circuit size parameter K (spec.md §6, "keyed by
// circuit size parameter K"). LookupBits is read once by cmd's keygen
// command from SBPF_ZKVM_LOOKUP_BITS and threaded in here; the core
// itself never reads the environment (spec.md §9 "no global state").
type KeygenConfig struct {
	Backend    string
	CacheDir   string
	K          int
	LookupBits int
}

// DefaultKeygenConfig returns the spec's documented defaults: groth16,
// no cache directory (always regenerates), K sized for the MVP chip set.
func DefaultKeygenConfig() *KeygenConfig {
	return &KeygenConfig{Backend: "groth16", K: 16}
}

func (c *KeygenConfig) Validate() error {
	if c.Backend != "" && c.Backend != "groth16" && c.Backend != "plonk" {
		return fmt.Errorf("backend must be 'groth16' or 'plonk', got %q", c.Backend)
	}
	if c.K <= 0 {
		return fmt.Errorf("K must be positive")
	}
	return nil
}

func (c *KeygenConfig) WithBackend(name string) *KeygenConfig {
	c.Backend = name
	return c
}

func (c *KeygenConfig) WithCacheDir(dir string) *KeygenConfig {
	c.CacheDir = dir
	return c
}

func (c *KeygenConfig) WithK(k int) *KeygenConfig {
	c.K = k
	return c
}

func (c *KeygenConfig) WithLookupBits(bits int) *KeygenConfig {
	c.LookupBits = bits
	return c
}

func (c *KeygenConfig) Clone() *KeygenConfig {
	return &KeygenConfig{Backend: c.Backend, CacheDir: c.CacheDir, K: c.K, LookupBits: c.LookupBits}
}

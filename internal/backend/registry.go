package backend

import "fmt"

// registry maps a backend name (KeygenConfig.Backend, KeyPair.Backend) to
// its Backend constructor,
// mirroring internal/chips.Registry's flat-dispatch-table shape.
var registry = map[string]func() Backend{
	"groth16": NewGroth16,
	"plonk":   NewPlonk,
}

// Resolve returns the backend registered for name, defaulting to
// "groth16" when name is empty (spec.md §6, "groth16 default").
func Resolve(name string) (Backend, error) {
	if name == "" {
		name = "groth16"
	}
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q", name)
	}
	return ctor(), nil
}

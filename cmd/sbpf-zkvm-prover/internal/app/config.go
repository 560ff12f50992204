package app

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the TOML-loaded configuration shared by every
// subcommand: where key-pair artifacts are cached, and the default
// backend to prove/verify with.
type FileConfig struct {
	CacheDir string `toml:"cache_dir"`
	Backend  string `toml:"backend"`
}

// DefaultFileConfig is used when no config file exists, and an explicit
// empty file decodes onto these same values, so the two behave
// identically. The backend matches pkg/sbpfzkvm's default; the cache
// directory turns on the on-disk key cache, which pkg/sbpfzkvm's own
// defaults leave off.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{CacheDir: ".sbpf-zkvm-cache", Backend: "groth16"}
}

// LoadFileConfig reads path as TOML, falling back to defaults if path is
// empty or does not exist — a missing config file is not an error, an
// explicitly malformed one is.
func LoadFileConfig(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("app: decode config %s: %w", path, err)
	}
	return cfg, nil
}

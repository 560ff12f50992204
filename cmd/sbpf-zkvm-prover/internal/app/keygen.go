package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vitorpy/sbpf-zkvm/pkg/sbpfzkvm"
)

// lookupBitsEnvVar is the one environment variable the core's design
// allows (SPEC_FULL.md §6, §9 "no global state"): read exactly once,
// here, and threaded into KeygenConfig — never read again inside
// pkg/sbpfzkvm or internal/backend.
const lookupBitsEnvVar = "SBPF_ZKVM_LOOKUP_BITS"

func newKeygenCommand(configPath *string) *cobra.Command {
	var shapePath, outPath string
	var backend string
	var k int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive (or load from cache) a proving/verifying key pair for a program shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := LoadFileConfig(*configPath)
			if err != nil {
				return err
			}
			if backend == "" {
				backend = fileCfg.Backend
			}

			var shape sbpfzkvm.ExecutionTrace
			if err := readJSON(shapePath, &shape); err != nil {
				return err
			}

			lookupBits := 0
			if v := os.Getenv(lookupBitsEnvVar); v != "" {
				parsed, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("app: parse %s: %w", lookupBitsEnvVar, err)
				}
				lookupBits = parsed
			}

			cfg := sbpfzkvm.DefaultKeygenConfig().
				WithBackend(backend).
				WithCacheDir(fileCfg.CacheDir).
				WithK(k).
				WithLookupBits(lookupBits)

			log.Info().Str("backend", backend).Int("k", k).Msg("deriving key pair")
			kp, err := sbpfzkvm.LoadOrGenerateKeyPair(cfg, &shape)
			if err != nil {
				return err
			}
			log.Info().Int("pk_bytes", len(kp.PK)).Int("vk_bytes", len(kp.VK)).Msg("key pair ready")
			return writeJSON(outPath, kp)
		},
	}
	cmd.Flags().StringVar(&shapePath, "shape", "", "path to a representative JSON execution trace fixing the circuit shape")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the JSON key pair to (default: stdout)")
	cmd.Flags().StringVar(&backend, "backend", "", "backend to use (groth16 or plonk); defaults to the config file's setting")
	cmd.Flags().IntVar(&k, "k", 16, "circuit size parameter K, recorded with the key pair and used in cache file names")
	cmd.MarkFlagRequired("shape")
	return cmd
}

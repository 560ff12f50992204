package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vitorpy/sbpf-zkvm/pkg/sbpfzkvm"
)

func newProveCommand(configPath *string) *cobra.Command {
	var tracePath, keyPairPath, proofOut, publicOut string

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Prove an execution trace against a key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := LoadFileConfig(*configPath)
			if err != nil {
				return err
			}

			var trace sbpfzkvm.ExecutionTrace
			if err := readJSON(tracePath, &trace); err != nil {
				return err
			}
			var kp sbpfzkvm.KeyPair
			if err := readJSON(keyPairPath, &kp); err != nil {
				return err
			}

			proverCfg := sbpfzkvm.DefaultProverConfig().WithBackend(fileCfg.Backend).WithCacheDir(fileCfg.CacheDir)

			log.Info().Str("backend", kp.Backend).Msg("proving execution")
			proof, pub, err := sbpfzkvm.ProveExecution(context.Background(), &trace, proverCfg, &kp)
			if err != nil {
				return err
			}
			if err := writeJSON(proofOut, proof); err != nil {
				return fmt.Errorf("app: write proof: %w", err)
			}
			return writeJSON(publicOut, pub)
		},
	}
	cmd.Flags().StringVar(&tracePath, "trace", "", "path to a JSON execution trace (from 'trace')")
	cmd.Flags().StringVar(&keyPairPath, "key-pair", "", "path to a JSON key pair (from 'keygen')")
	cmd.Flags().StringVar(&proofOut, "proof-out", "proof.json", "path to write the proof to")
	cmd.Flags().StringVar(&publicOut, "public-out", "public.json", "path to write the public inputs to")
	cmd.MarkFlagRequired("trace")
	cmd.MarkFlagRequired("key-pair")
	return cmd
}

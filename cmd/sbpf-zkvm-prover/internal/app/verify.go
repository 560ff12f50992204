package app

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vitorpy/sbpf-zkvm/pkg/sbpfzkvm"
)

func newVerifyCommand(configPath *string) *cobra.Command {
	var proofPath, publicPath, keyPairPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a proof against public inputs and a key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := LoadFileConfig(*configPath); err != nil {
				return err
			}

			var proof sbpfzkvm.Proof
			if err := readJSON(proofPath, &proof); err != nil {
				return err
			}
			var pub sbpfzkvm.PublicInputs
			if err := readJSON(publicPath, &pub); err != nil {
				return err
			}
			var kp sbpfzkvm.KeyPair
			if err := readJSON(keyPairPath, &kp); err != nil {
				return err
			}

			ok, err := sbpfzkvm.VerifyExecution(&proof, &pub, &kp)
			if err != nil {
				return err
			}
			if !ok {
				log.Warn().Msg("proof rejected")
				return fmt.Errorf("app: proof did not verify")
			}
			log.Info().Msg("proof verified")
			return nil
		},
	}
	cmd.Flags().StringVar(&proofPath, "proof", "", "path to a JSON proof (from 'prove')")
	cmd.Flags().StringVar(&publicPath, "public", "", "path to JSON public inputs (from 'prove')")
	cmd.Flags().StringVar(&keyPairPath, "key-pair", "", "path to a JSON key pair (from 'keygen')")
	cmd.MarkFlagRequired("proof")
	cmd.MarkFlagRequired("public")
	cmd.MarkFlagRequired("key-pair")
	return cmd
}

package app

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the sbpf-zkvm-prover command tree: trace, prove,
// verify, keygen.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "sbpf-zkvm-prover",
		Short:         "Trace, prove, and verify sBPF program executions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(
		newTraceCommand(&configPath),
		newKeygenCommand(&configPath),
		newProveCommand(&configPath),
		newVerifyCommand(&configPath),
	)
	return root
}

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vitorpy/sbpf-zkvm/pkg/sbpfzkvm"
)

func newTraceCommand(configPath *string) *cobra.Command {
	var bytecodePath, outPath string

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Execute a program and emit its execution trace as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := LoadFileConfig(*configPath); err != nil {
				return err
			}

			bytecode, err := os.ReadFile(bytecodePath)
			if err != nil {
				return fmt.Errorf("app: read bytecode: %w", err)
			}

			log.Info().Str("bytecode", bytecodePath).Msg("tracing program")
			trace, err := sbpfzkvm.TraceProgram(context.Background(), bytecode, nil)
			if err != nil {
				return err
			}
			log.Info().Int("steps", len(trace.Instructions)).Msg("trace complete")

			return writeJSON(outPath, trace)
		},
	}
	cmd.Flags().StringVar(&bytecodePath, "bytecode", "", "path to the sBPF bytecode to trace")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the JSON trace to (default: stdout)")
	cmd.MarkFlagRequired("bytecode")
	return cmd
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("app: encode output: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("app: decode %s: %w", path, err)
	}
	return nil
}

// Command sbpf-zkvm-prover is the CLI front end over pkg/sbpfzkvm: trace,
// prove, verify, and keygen subcommands (SPEC_FULL.md §6, "not part of
// the core"), built with cobra and logging via zerolog, following the
// ambient-stack conventions the rest of the example pack uses for
// command-line proving tools.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vitorpy/sbpf-zkvm/cmd/sbpf-zkvm-prover/internal/app"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	root := app.NewRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("sbpf-zkvm-prover failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

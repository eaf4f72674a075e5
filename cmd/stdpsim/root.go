/*
=================================================================================
STDPSIM - COMMAND-LINE HARNESS
=================================================================================

stdpsim wires the core engine (delayline, neuron, synapse, stepdriver) to a
runnable network, a TOML configuration file, and an optional SQLite
checkpoint archive. Subcommand structure mirrors other_examples' crownet CLI
mode split (sim / log-util), re-expressed with github.com/spf13/cobra, the
dependency crownet's own go.mod lists for this purpose.

None of this package's logic is imported by the core engine; it is strictly
an external collaborator to the core engine.
=================================================================================
*/
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "stdpsim",
	Short: "Run and inspect STDP spiking-network simulations",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML run configuration (defaults to a small built-in network)")
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(checkpointCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("stdpsim: %v", err)
	}
}

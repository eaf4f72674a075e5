package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/SynapticNetworks/stdp-core/checkpointstore"
	"github.com/SynapticNetworks/stdp-core/cmd/stdpsim/tui"
	"github.com/SynapticNetworks/stdp-core/config"
)

var (
	archivePath    string
	archiveEvery   int
	interactiveTUI bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a ring-topology STDP simulation",
	RunE:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&archivePath, "archive", "", "optional SQLite path to archive per-tick synapse checkpoints")
	simCmd.Flags().IntVar(&archiveEvery, "archive-every", 100, "archive a checkpoint every N steps (ignored without --archive)")
	simCmd.Flags().BoolVar(&interactiveTUI, "tui", false, "show a live terminal dashboard while the simulation runs")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	net, err := newRingNetwork(cfg)
	if err != nil {
		return err
	}

	var archive *checkpointstore.Store
	if archivePath != "" {
		var err error
		archive, err = checkpointstore.Open(archivePath)
		if err != nil {
			return err
		}
		defer archive.Close()
	}

	if interactiveTUI {
		return tui.Run(net.driver, net.update, net.store, cfg.Network.Steps)
	}

	for step := 0; step < cfg.Network.Steps; step++ {
		if err := net.driver.Step(net.update); err != nil {
			return err
		}
		if archive != nil && step%archiveEvery == 0 {
			if err := archive.SaveTick(net.driver.CurrentStep(), net.store, cfg.Network.Neurons); err != nil {
				return err
			}
		}
	}

	log.Printf("stdpsim: completed %d steps over %d neurons", cfg.Network.Steps, cfg.Network.Neurons)
	return nil
}

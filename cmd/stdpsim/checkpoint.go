package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SynapticNetworks/stdp-core/checkpointstore"
	"github.com/SynapticNetworks/stdp-core/config"
)

var checkpointCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "Inspect a SQLite synapse checkpoint archive",
}

var checkpointListCmd = &cobra.Command{
	Use:   "list <archive.db>",
	Short: "List every archived step in a checkpoint database",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckpointList,
}

var checkpointRestoreCmd = &cobra.Command{
	Use:   "restore <archive.db> <step>",
	Short: "Restore a network's synapses to a previously archived step and print the properties of its nonzero-weight synapses",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheckpointRestore,
}

func init() {
	checkpointCmd.AddCommand(checkpointListCmd)
	checkpointCmd.AddCommand(checkpointRestoreCmd)
}

func runCheckpointList(cmd *cobra.Command, args []string) error {
	store, err := checkpointstore.Open(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	steps, err := store.Steps()
	if err != nil {
		return err
	}
	for _, step := range steps {
		fmt.Println(step)
	}
	return nil
}

func runCheckpointRestore(cmd *cobra.Command, args []string) error {
	store, err := checkpointstore.Open(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	var step uint64
	if _, err := fmt.Sscanf(args[1], "%d", &step); err != nil {
		return fmt.Errorf("checkpoint restore: invalid step %q: %w", args[1], err)
	}

	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	net, err := newRingNetwork(cfg)
	if err != nil {
		return err
	}
	if err := store.LoadTick(step, net.store); err != nil {
		return err
	}

	net.store.PrintProperties(cmdOut{cmd})
	return nil
}

// cmdOut adapts a *cobra.Command's stdout for io.Writer-shaped helpers like
// synapse.Store.PrintProperties.
type cmdOut struct {
	cmd *cobra.Command
}

func (w cmdOut) Write(p []byte) (int, error) {
	return w.cmd.OutOrStdout().Write(p)
}

/*
=================================================================================
RUN CONFIGURATION - TOML-LOADED SIMULATION PARAMETERS
=================================================================================

The core engine's only configuration-collaborator inputs are
N, maxPerN, and Δt. This package is that collaborator: it loads those plus
the run length and STDP-default overrides a harness needs from a TOML file,
the way other_examples' crownet config package loads its SimulationParameters
from flags -- re-expressed here as a file-based equivalent using
BurntSushi/toml, the library crownet's own go.mod pulls in for this purpose.

The core packages (delayline, neuron, synapse, stepdriver) never import this
package: configuration loading is strictly a harness-level concern.
=================================================================================
*/
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Network describes the size and timing parameters the core engine needs to
// set up a run: neuron count, maximum synapses per neuron, and the
// simulation's fixed Δt.
type Network struct {
	Neurons       int     `toml:"neurons"`
	MaxPerNeuron  int     `toml:"max_per_neuron"`
	DeltaT        float64 `toml:"delta_t"`
	Steps         int     `toml:"steps"`
	Workers       int     `toml:"workers"`
	Deterministic bool    `toml:"deterministic"`
}

// STDPOverrides holds optional overrides for the Froemke-Dan (2002)
// defaults synapse.DefaultSTDPParams applies to every newly created
// synapse. A zero value for any field means "leave the package default".
type STDPOverrides struct {
	Apos              *float64 `toml:"apos"`
	Aneg              *float64 `toml:"aneg"`
	Taupos            *float64 `toml:"taupos"`
	Tauneg            *float64 `toml:"tauneg"`
	Mupos             *float64 `toml:"mupos"`
	Muneg             *float64 `toml:"muneg"`
	Wex               *float64 `toml:"wex"`
	STDPgap           *float64 `toml:"stdp_gap"`
	Tauspre           *float64 `toml:"tauspre"`
	Tauspost          *float64 `toml:"tauspost"`
	UseFroemkeDanSTDP *bool    `toml:"use_froemke_dan_stdp"`
}

// Config is the harness's top-level run configuration, loaded from a single
// TOML file.
type Config struct {
	Network Network       `toml:"network"`
	STDP    STDPOverrides `toml:"stdp"`
}

// Default returns a Config populated with a small, runnable network: 100
// neurons, 16 synapses each, Δt = 1e-4s, 1000 steps, single-worker.
func Default() Config {
	return Config{
		Network: Network{
			Neurons:      100,
			MaxPerNeuron: 16,
			DeltaT:       1e-4,
			Steps:        1000,
			Workers:      1,
		},
	}
}

// Load reads and validates a TOML configuration file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the configuration describes a runnable network.
func (c Config) Validate() error {
	if c.Network.Neurons <= 0 {
		return fmt.Errorf("config: network.neurons must be positive, got %d", c.Network.Neurons)
	}
	if c.Network.MaxPerNeuron <= 0 {
		return fmt.Errorf("config: network.max_per_neuron must be positive, got %d", c.Network.MaxPerNeuron)
	}
	if c.Network.DeltaT <= 0 {
		return fmt.Errorf("config: network.delta_t must be positive, got %g", c.Network.DeltaT)
	}
	if c.Network.Steps < 0 {
		return fmt.Errorf("config: network.steps must not be negative, got %d", c.Network.Steps)
	}
	return nil
}

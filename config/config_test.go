package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesOverridesOnDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	content := `
[network]
neurons = 200
max_per_neuron = 8
delta_t = 2e-4
steps = 500

[stdp]
wex = 1e-6
use_froemke_dan_stdp = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Network.Neurons != 200 || cfg.Network.MaxPerNeuron != 8 {
		t.Fatalf("unexpected network config: %+v", cfg.Network)
	}
	if cfg.Network.DeltaT != 2e-4 {
		t.Fatalf("unexpected delta_t: %v", cfg.Network.DeltaT)
	}
	if cfg.STDP.Wex == nil || *cfg.STDP.Wex != 1e-6 {
		t.Fatalf("expected wex override to be set")
	}

	params := cfg.STDP.Apply()
	if params.Wex != 1e-6 {
		t.Fatalf("expected applied Wex override, got %v", params.Wex)
	}
	if !params.UseFroemkeDanSTDP {
		t.Fatal("expected applied UseFroemkeDanSTDP override")
	}
	if params.Apos != 1.01 {
		t.Fatalf("expected unconfigured Apos to keep its default, got %v", params.Apos)
	}
}

func TestValidateRejectsNonPositiveNeuronCount(t *testing.T) {
	cfg := Default()
	cfg.Network.Neurons = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero neuron count")
	}
}

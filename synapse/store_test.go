package synapse

import (
	"bytes"
	"errors"
	"testing"
)

func TestStoreCreateDefaults(t *testing.T) {
	store := NewStore(4, 2)
	sum := NewSumSlot()
	if err := store.Create(0, 1, 2, sum, 1e-4, Inhibitory, 3, 5); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if store.SrcNeuron[0] != 1 || store.DstNeuron[0] != 2 {
		t.Fatalf("unexpected endpoints: src=%d dst=%d", store.SrcNeuron[0], store.DstNeuron[0])
	}
	if store.SynType[0] != Inhibitory {
		t.Fatalf("expected inhibitory type, got %v", store.SynType[0])
	}
	if store.W[0] != 0 || store.PSR[0] != 0 {
		t.Fatalf("expected zeroed weight and PSR at creation")
	}
	if store.Params[0] != DefaultSTDPParams() {
		t.Fatalf("expected Froemke-Dan defaults, got %+v", store.Params[0])
	}
	if store.PreDelay[0].TotalDelay != 3 || store.PostDelay[0].TotalDelay != 5 {
		t.Fatalf("unexpected delay configuration: pre=%d post=%d", store.PreDelay[0].TotalDelay, store.PostDelay[0].TotalDelay)
	}
}

// write(s); read(s') ⇒ s' ≡ s field-for-field.
func TestStoreWriteReadRoundTrip(t *testing.T) {
	store := NewStore(2, 1)
	sum := NewSumSlot()
	if err := store.Create(0, 0, 1, sum, 1e-4, Excitatory, 3, 5); err != nil {
		t.Fatalf("Create: %v", err)
	}
	store.W[0] = 2e-7
	store.PSR[0] = 1.5e-8
	store.PreDelay[0].Schedule()
	store.Params[0].UseFroemkeDanSTDP = true

	var buf bytes.Buffer
	if err := store.Write(0, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	other := NewStore(2, 1)
	otherSum := NewSumSlot()
	if err := other.Create(1, 0, 1, otherSum, 1e-4, Excitatory, 0, 0); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := other.Read(1, &buf); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if other.SrcNeuron[1] != store.SrcNeuron[0] || other.DstNeuron[1] != store.DstNeuron[0] {
		t.Fatalf("endpoints did not round-trip")
	}
	if other.W[1] != store.W[0] {
		t.Fatalf("weight did not round-trip: got %v want %v", other.W[1], store.W[0])
	}
	if other.PSR[1] != store.PSR[0] {
		t.Fatalf("psr did not round-trip")
	}
	if other.PreDelay[1] != store.PreDelay[0] {
		t.Fatalf("pre-delay line did not round-trip: got %+v want %+v", other.PreDelay[1], store.PreDelay[0])
	}
	if other.PostDelay[1] != store.PostDelay[0] {
		t.Fatalf("post-delay line did not round-trip")
	}
	if other.Params[1] != store.Params[0] {
		t.Fatalf("stdp parameters did not round-trip: got %+v want %+v", other.Params[1], store.Params[0])
	}
}

func TestStoreReadReportsFieldPosition(t *testing.T) {
	store := NewStore(1, 1)
	sum := NewSumSlot()
	if err := store.Create(0, 0, 0, sum, 1e-4, Excitatory, 0, 0); err != nil {
		t.Fatalf("Create: %v", err)
	}

	truncated := bytes.NewBufferString("1 2 0")
	err := store.Read(0, truncated)
	if err == nil {
		t.Fatal("expected error reading truncated checkpoint")
	}
	cerr, ok := err.(*CheckpointError)
	if !ok {
		t.Fatalf("expected *CheckpointError, got %T", err)
	}
	if cerr.SynapseIndex != 0 {
		t.Fatalf("expected synapse index 0, got %d", cerr.SynapseIndex)
	}
	if cerr.FieldIndex != 3 {
		t.Fatalf("expected failure at field index 3 (W), got %d (%s)", cerr.FieldIndex, cerr.FieldName)
	}
}

func TestStoreCreateRejectsOutOfRangeIndex(t *testing.T) {
	store := NewStore(2, 1)
	sum := NewSumSlot()
	if err := store.Create(2, 0, 1, sum, 1e-4, Excitatory, 0, 0); !errors.Is(err, ErrUnknownSynapse) {
		t.Fatalf("expected ErrUnknownSynapse, got %v", err)
	}
	if err := store.Create(-1, 0, 1, sum, 1e-4, Excitatory, 0, 0); !errors.Is(err, ErrUnknownSynapse) {
		t.Fatalf("expected ErrUnknownSynapse, got %v", err)
	}
}

func TestStoreReadRejectsOutOfRangeIndex(t *testing.T) {
	store := NewStore(2, 1)
	buf := bytes.NewBufferString("0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0")
	if err := store.Read(2, buf); !errors.Is(err, ErrUnknownSynapse) {
		t.Fatalf("expected ErrUnknownSynapse, got %v", err)
	}
}

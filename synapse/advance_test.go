package synapse

import (
	"errors"
	"testing"

	"github.com/SynapticNetworks/stdp-core/neuron"
	"github.com/SynapticNetworks/stdp-core/simclock"
)

const testDeltaT = 1e-4

func newTestStore(t *testing.T) (*Store, *neuron.Pool) {
	t.Helper()
	pop := neuron.NewPool(2, 256)
	store := NewStore(2, 1)
	sum := NewSumSlot()
	if err := store.Create(0, 0, 1, sum, testDeltaT, Excitatory, 0, 0); err != nil {
		t.Fatalf("Create: %v", err)
	}
	store.Params[0].Taupos = 20e-3
	store.Params[0].Tauneg = 20e-3
	return store, pop
}

// Depression via the full Advance path: destination fired at step 50, the
// pre-delay delivers at step 100 with zero transmission delay.
func TestAdvancePreHitAppliesDepression(t *testing.T) {
	store, pop := newTestStore(t)
	store.W[0] = 2.5e-7

	pop.Neurons[1].Fire(50) // destination (post) spike

	for step := uint64(0); step <= 100; step++ {
		if step == 100 {
			store.PreSpikeHit(0)
		}
		if err := store.Advance(0, pop, simclock.TickContext{Step: step, DeltaT: testDeltaT}); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	approxEqual(t, store.W[0], 1.488e-7, 2e-10, "depressed weight via Advance")
}

// Potentiation via the back-propagation path: source fired at step 50, the
// post-delay delivers at step 100, zero transmission delay.
func TestAdvancePostHitAppliesPotentiation(t *testing.T) {
	store, pop := newTestStore(t)
	store.W[0] = 2.5e-7

	pop.Neurons[0].Fire(50) // source (pre) spike

	for step := uint64(0); step <= 100; step++ {
		if step == 100 {
			store.PostSpikeHit(0)
		}
		if err := store.Advance(0, pop, simclock.TickContext{Step: step, DeltaT: testDeltaT}); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	approxEqual(t, store.W[0], 4.467e-7, 2e-10, "potentiated weight via Advance")
}

// A synapse with W <= 0 only services its pre-delay line; the post-delay
// line is left untouched by advanceBase.
func TestAdvanceInertSynapseSkipsPostQueue(t *testing.T) {
	store, pop := newTestStore(t)
	store.W[0] = 0

	store.PostSpikeHit(0)
	tick := simclock.TickContext{Step: 0, DeltaT: testDeltaT}
	if err := store.Advance(0, pop, tick); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if store.PostDelay[0].Queue == 0 {
		t.Fatal("expected post-delay queue bit to remain set when W <= 0")
	}
}

// Zero-weight synapses accumulate no PSR and stay at W=0 across ticks with
// no spikes at all.
func TestAdvanceIdleZeroWeightUnchanged(t *testing.T) {
	store, pop := newTestStore(t)
	store.W[0] = 0

	for step := uint64(0); step < 10; step++ {
		if err := store.Advance(0, pop, simclock.TickContext{Step: step, DeltaT: testDeltaT}); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if store.W[0] != 0 || store.PSR[0] != 0 {
		t.Fatalf("expected idle zero-weight synapse unchanged, got W=%v psr=%v", store.W[0], store.PSR[0])
	}
}

func TestAdvanceRejectsOutOfRangeIndex(t *testing.T) {
	store, pop := newTestStore(t)
	tick := simclock.TickContext{Step: 0, DeltaT: testDeltaT}

	if err := store.Advance(5, pop, tick); !errors.Is(err, ErrUnknownSynapse) {
		t.Fatalf("expected ErrUnknownSynapse, got %v", err)
	}
	if _, err := store.AdvanceDeferred(5, pop, tick); !errors.Is(err, ErrUnknownSynapse) {
		t.Fatalf("expected ErrUnknownSynapse, got %v", err)
	}
}

func TestPrintPropertiesSkipsZeroWeight(t *testing.T) {
	store, _ := newTestStore(t)
	store.W[0] = 0

	var buf writerBuf
	store.PrintProperties(&buf)
	if buf.String() != "" {
		t.Fatalf("expected no output for zero-weight synapse, got %q", buf.String())
	}

	store.W[0] = 1e-7
	store.PrintProperties(&buf)
	if buf.String() == "" {
		t.Fatal("expected diagnostic output for nonzero-weight synapse")
	}
}

type writerBuf struct {
	data []byte
}

func (w *writerBuf) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *writerBuf) String() string {
	return string(w.data)
}

package neuron

import "testing"

func TestHistoryAtMostRecent(t *testing.T) {
	h := NewSpikeHistory(8)
	h.Record(10)
	h.Record(20)
	h.Record(30)

	if got := h.At(-1); got != 30 {
		t.Fatalf("At(-1) = %d, want 30", got)
	}
	if got := h.At(-2); got != 20 {
		t.Fatalf("At(-2) = %d, want 20", got)
	}
	if got := h.At(-3); got != 10 {
		t.Fatalf("At(-3) = %d, want 10", got)
	}
	if got := h.At(-4); got != Missing {
		t.Fatalf("At(-4) = %d, want Missing", got)
	}
}

func TestHistoryEmptyReturnsMissing(t *testing.T) {
	h := NewSpikeHistory(4)
	if got := h.At(-1); got != Missing {
		t.Fatalf("At(-1) on empty history = %d, want Missing", got)
	}
}

func TestHistoryOverwritesOldestWhenFull(t *testing.T) {
	h := NewSpikeHistory(3)
	h.Record(1)
	h.Record(2)
	h.Record(3)
	h.Record(4) // overwrites step 1

	if got := h.At(-1); got != 4 {
		t.Fatalf("At(-1) = %d, want 4", got)
	}
	if got := h.At(-3); got != 2 {
		t.Fatalf("At(-3) = %d, want 2 (oldest surviving entry)", got)
	}
	if got := h.At(-4); got != Missing {
		t.Fatalf("At(-4) = %d, want Missing (overwritten)", got)
	}
}

func TestHistoryCountUnboundedAcrossOverwrite(t *testing.T) {
	h := NewSpikeHistory(2)
	for i := uint64(0); i < 10; i++ {
		h.Record(i)
	}
	if h.Count() != 10 {
		t.Fatalf("Count() = %d, want 10", h.Count())
	}
}

func TestNeuronFiredFlagClearsPerTick(t *testing.T) {
	n := NewNeuron(0, 8)
	if n.Fired() {
		t.Fatalf("new neuron should not report fired")
	}
	n.Fire(5)
	if !n.Fired() {
		t.Fatalf("expected fired after Fire()")
	}
	if got := n.HistoryAt(-1); got != 5 {
		t.Fatalf("HistoryAt(-1) = %d, want 5", got)
	}
	n.ClearFired()
	if n.Fired() {
		t.Fatalf("expected fired flag cleared")
	}
	// history survives the clear
	if got := n.HistoryAt(-1); got != 5 {
		t.Fatalf("HistoryAt(-1) after clear = %d, want 5", got)
	}
}

func TestPoolFiredAndHistory(t *testing.T) {
	p := NewPool(3, 8)
	p.Neurons[1].Fire(42)

	if !p.Fired(1) {
		t.Fatalf("expected neuron 1 to have fired")
	}
	if p.Fired(0) || p.Fired(2) {
		t.Fatalf("expected neurons 0 and 2 to not have fired")
	}
	if got := p.HistoryAt(1, -1); got != 42 {
		t.Fatalf("HistoryAt(1, -1) = %d, want 42", got)
	}

	p.ClearFired()
	if p.Fired(1) {
		t.Fatalf("expected fired flags cleared across pool")
	}
}

/*
=================================================================================
NEURON COLLABORATOR - MINIMAL SPIKING VIEW
=================================================================================

This package intentionally does not model membrane dynamics, dendritic
integration, or firing decisions -- deciding how a neuron
decides to fire is left entirely to the caller. What the synapse engine requires of a
neuron is narrow: a per-tick fired() view, and an append-only spike history it
can walk backwards. Neuron is the minimal struct satisfying that; real networks
are free to wrap a richer neuron model behind the same Population interface.
=================================================================================
*/
package neuron

// Neuron is the minimal spiking collaborator the synapse engine depends on.
type Neuron struct {
	Index   int
	History *SpikeHistory

	fired bool
}

// NewNeuron constructs a neuron with the given dense index and history
// capacity (0 selects DefaultHistoryCapacity).
func NewNeuron(index int, historyCapacity int) *Neuron {
	return &Neuron{
		Index:   index,
		History: NewSpikeHistory(historyCapacity),
	}
}

// Fire records a spike at the given step and marks the neuron as having fired
// this tick. Called once per tick by the caller's neuron-update phase, before
// the synapse phase begins.
func (n *Neuron) Fire(step uint64) {
	n.History.Record(step)
	n.fired = true
}

// ClearFired resets the per-tick fired flag. Called at the start of each tick
// by the step driver, before neuron update.
func (n *Neuron) ClearFired() {
	n.fired = false
}

// Fired reports whether this neuron fired during the current tick.
func (n *Neuron) Fired() bool {
	return n.fired
}

// HistoryAt returns the step index at the given offset from this neuron's
// most recent spike (offset <= 0, offset -1 = most recent). Returns Missing
// when unavailable.
func (n *Neuron) HistoryAt(offset int) uint64 {
	return n.History.At(offset)
}

// Population is the collection view the synapse engine depends on: a dense
// index space of neurons exposing per-tick firing state and spike history.
// Satisfied by *Pool below, or by any richer neuron model a caller wires in.
type Population interface {
	Fired(index int) bool
	HistoryAt(index int, offset int) uint64
}

// Pool is a dense array of Neurons implementing Population. It is the
// collaborator the step driver owns during the neuron-update phase of a tick.
type Pool struct {
	Neurons []*Neuron
}

// NewPool constructs a pool of n neurons, each with the given spike-history
// capacity (0 selects the default).
func NewPool(n int, historyCapacity int) *Pool {
	neurons := make([]*Neuron, n)
	for i := range neurons {
		neurons[i] = NewNeuron(i, historyCapacity)
	}
	return &Pool{Neurons: neurons}
}

// Fired implements Population.
func (p *Pool) Fired(index int) bool {
	return p.Neurons[index].Fired()
}

// HistoryAt implements Population.
func (p *Pool) HistoryAt(index int, offset int) uint64 {
	return p.Neurons[index].HistoryAt(offset)
}

// ClearFired resets every neuron's per-tick fired flag. Called once at the
// start of each tick, before the neuron-update phase runs.
func (p *Pool) ClearFired() {
	for _, n := range p.Neurons {
		n.ClearFired()
	}
}

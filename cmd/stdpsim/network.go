package main

import (
	"github.com/SynapticNetworks/stdp-core/config"
	"github.com/SynapticNetworks/stdp-core/neuron"
	"github.com/SynapticNetworks/stdp-core/simclock"
	"github.com/SynapticNetworks/stdp-core/stepdriver"
	"github.com/SynapticNetworks/stdp-core/synapse"
)

// ringNetwork wires a single-ring topology: neuron i connects to neuron
// (i+1)%N with one STDP synapse. Every neuron's one incoming synapse shares
// its own summation slot, and a neuron fires whenever that slot's
// accumulated response crosses a fixed threshold -- a minimal, explicit
// stand-in for the "how neurons decide to fire" decision the core engine
// leaves entirely to the caller.
type ringNetwork struct {
	pop       *neuron.Pool
	store     *synapse.Store
	driver    *stepdriver.Driver
	sums      []*synapse.SumSlot
	threshold float64
}

func newRingNetwork(cfg config.Config) (*ringNetwork, error) {
	n := cfg.Network.Neurons
	pop := neuron.NewPool(n, 0)
	store := synapse.NewStore(n, cfg.Network.MaxPerNeuron)

	sums := make([]*synapse.SumSlot, n)
	for i := 0; i < n; i++ {
		sums[i] = synapse.NewSumSlot()
	}

	for i := 0; i < n; i++ {
		dst := (i + 1) % n
		if err := store.Create(i, i, dst, sums[dst], cfg.Network.DeltaT, synapse.Excitatory, 1, 1); err != nil {
			return nil, err
		}
		store.Params[i] = cfg.STDP.Apply()
		store.W[i] = store.Params[i].Wex / 2
	}

	driver := stepdriver.NewDriver(pop, store, n, cfg.Network.DeltaT, cfg.Network.Workers)
	driver.DeterministicReduction = cfg.Network.Deterministic

	return &ringNetwork{pop: pop, store: store, driver: driver, sums: sums, threshold: 1e-7}, nil
}

// update is the ring network's NeuronUpdateFunc: neuron 0 is externally
// driven to fire once every 50 steps (seeding activity into an otherwise
// silent ring); every other neuron fires when its summation slot exceeds
// threshold, at which point the slot is drained back to zero.
func (r *ringNetwork) update(tick simclock.TickContext, pop *neuron.Pool, store *synapse.Store) {
	if tick.Step%50 == 0 {
		r.fire(0, tick.Step)
	}

	for i := 1; i < len(r.sums); i++ {
		if r.sums[i].Load() >= r.threshold {
			r.fire(i, tick.Step)
			r.sums[i].Store(0)
		}
	}
}

func (r *ringNetwork) fire(i int, step uint64) {
	r.pop.Neurons[i].Fire(step)
	r.store.PreSpikeHit(i)
	if r.store.AllowBackPropagation() {
		// back-propagation targets the synapse whose destination is i:
		// in this single-ring topology that is the synapse owned by i's
		// predecessor, i.e. index (i-1+N) mod N.
		n := len(r.sums)
		pred := (i - 1 + n) % n
		r.store.PostSpikeHit(pred)
	}
}

/*
=================================================================================
STEP DRIVER - PER-TICK ORCHESTRATION
=================================================================================

Driver owns the two things nothing else is allowed to: the global step
counter and the phase ordering within a tick. Each tick runs two disjoint
phases separated by a barrier -- neuron update, then synapse advance -- never
interleaved, per the concurrency model this system relies on.

The neuron-update phase is supplied by the caller: deciding how a neuron
integrates its summation point and whether it fires is explicitly out of
this engine's scope. The caller's NeuronUpdateFunc is handed the tick
context and is expected to call Store.PreSpikeHit / Store.PostSpikeHit on
behalf of any neuron that fires before returning.

The synapse-advance phase is this package's responsibility: data-parallel
across synapses, fanned out across Workers goroutines via errgroup, with a
sequential path for Workers <= 1. DeterministicReduction keeps the fan-out
but merges contributions in a fixed order, for debugging floating-point
drift between runs.
=================================================================================
*/
package stepdriver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SynapticNetworks/stdp-core/neuron"
	"github.com/SynapticNetworks/stdp-core/simclock"
	"github.com/SynapticNetworks/stdp-core/synapse"
)

// NeuronUpdateFunc performs one tick's worth of neuron integration and
// firing decisions. Implementations call pop.Neurons[i].Fire(tick.Step) for
// any neuron that fires, then store.PreSpikeHit(iSyn) for each of its
// outgoing synapses and, if store.AllowBackPropagation(), store.PostSpikeHit
// for each of its incoming synapses.
type NeuronUpdateFunc func(tick simclock.TickContext, pop *neuron.Pool, store *synapse.Store)

// Driver orchestrates one spiking network's simulation loop.
type Driver struct {
	Pop          *neuron.Pool
	Store        *synapse.Store
	SynapseCount int
	DeltaT       float64

	// Workers is the number of goroutines the synapse-advance phase fans
	// out across. 0 or 1 runs the phase sequentially on the calling
	// goroutine.
	Workers int

	// DeterministicReduction routes each synapse's PSR contribution through
	// a per-call return value instead of a shared atomic add, merging all
	// contributions into their summation slots in ascending synapse-index
	// order once every worker has finished. The synapse phase still runs
	// across Workers goroutines; only the summation-slot reduction order
	// becomes fixed. A debug aid for reproducing a run bit-for-bit, not the
	// default.
	DeterministicReduction bool

	step uint64
}

// NewDriver constructs a Driver over an already-populated neuron pool and
// synapse store.
func NewDriver(pop *neuron.Pool, store *synapse.Store, synapseCount int, deltaT float64, workers int) *Driver {
	return &Driver{
		Pop:          pop,
		Store:        store,
		SynapseCount: synapseCount,
		DeltaT:       deltaT,
		Workers:      workers,
	}
}

// Step runs a single simulation tick: clear the fired flags, run the
// caller's neuron-update phase, advance every synapse, then increment the
// step counter.
func (d *Driver) Step(update NeuronUpdateFunc) error {
	d.Pop.ClearFired()

	tick := simclock.TickContext{Step: d.step, DeltaT: d.DeltaT}
	update(tick, d.Pop, d.Store)

	if err := d.advanceSynapses(tick); err != nil {
		return err
	}

	d.step++
	return nil
}

// Run executes ticks consecutive steps, stopping at the first error any
// synapse-advance phase returns.
func (d *Driver) Run(ticks int, update NeuronUpdateFunc) error {
	for i := 0; i < ticks; i++ {
		if err := d.Step(update); err != nil {
			return err
		}
	}
	return nil
}

// CurrentStep returns the global step counter the driver currently sits at
// (the step the next call to Step will execute).
func (d *Driver) CurrentStep() uint64 {
	return d.step
}

func (d *Driver) advanceSynapses(tick simclock.TickContext) error {
	n := d.SynapseCount
	if n == 0 {
		return nil
	}

	if d.Workers <= 1 {
		for i := 0; i < n; i++ {
			if err := d.Store.Advance(i, d.Pop, tick); err != nil {
				return err
			}
		}
		return nil
	}

	if d.DeterministicReduction {
		return d.advanceSynapsesDeterministic(tick)
	}

	g, _ := errgroup.WithContext(context.Background())
	chunk := (n + d.Workers - 1) / d.Workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := d.Store.Advance(i, d.Pop, tick); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// advanceSynapsesDeterministic fans the same per-synapse work across
// Workers goroutines, but each worker writes its synapses' PSR
// contributions into its own slice range instead of the shared summation
// slots. Once every worker has finished, the contributions are merged into
// their summation slots sequentially in ascending synapse-index order,
// giving a run-to-run-reproducible reduction order independent of
// goroutine scheduling.
func (d *Driver) advanceSynapsesDeterministic(tick simclock.TickContext) error {
	n := d.SynapseCount
	contributions := make([]float64, n)

	g, _ := errgroup.WithContext(context.Background())
	chunk := (n + d.Workers - 1) / d.Workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				c, err := d.Store.AdvanceDeferred(i, d.Pop, tick)
				if err != nil {
					return err
				}
				contributions[i] = c
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, c := range contributions {
		d.Store.Sum[i].Add(c)
	}
	return nil
}

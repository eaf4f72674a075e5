/*
=================================================================================
SYNAPSE ADVANCER - PER-TICK DELIVERY AND LEARNING
=================================================================================

Advance is the hot-path method invoked once per synapse per tick, grounded on
AllSTDPSynapses::advanceSynapse. Two independent delay lines are ticked every
step: the pre line carries the forward PSR contribution, the post line
carries the back-propagation notification STDP needs to pair a post-synaptic
spike with the synapse's recent pre-synaptic history.

A synapse whose weight has decayed to zero or below is inert: advanceBase
reproduces the original's fallback to the base spiking-synapse behavior,
which only services the pre-delay line. The post-delay line is deliberately
left unticked in that path -- preserved exactly as the original implements
it, not a bug introduced here.
=================================================================================
*/
package synapse

import (
	"math"

	"github.com/SynapticNetworks/stdp-core/neuron"
	"github.com/SynapticNetworks/stdp-core/simclock"
)

// Advance services synapse iSyn for the current tick: it ticks both delay
// lines (only the pre line when W <= 0, see advanceBase), applies any
// pending STDP weight updates, and decays and
// atomically accumulates the post-synaptic response into the destination's
// summation point. Returns ErrUnknownSynapse if iSyn is outside the Store's
// allocated range.
func (s *Store) Advance(iSyn int, pop neuron.Population, tick simclock.TickContext) error {
	contribution, err := s.AdvanceDeferred(iSyn, pop, tick)
	if err != nil {
		return err
	}
	s.Sum[iSyn].Add(contribution)
	return nil
}

// AdvanceDeferred performs the same per-tick work as Advance but returns the
// resulting PSR contribution instead of adding it into the summation slot.
// Used by a caller that wants to collect contributions from many synapses
// and merge them into their summation slots in a fixed order afterward, for
// a reproducible reduction order across runs.
func (s *Store) AdvanceDeferred(iSyn int, pop neuron.Population, tick simclock.TickContext) (float64, error) {
	if !s.indexInRange(iSyn) {
		return 0, ErrUnknownSynapse
	}

	if s.W[iSyn] <= 0 {
		s.advanceBase(iSyn, tick)
		return s.decay(iSyn), nil
	}

	fPre := s.PreDelay[iSyn].Tick()
	fPost := s.PostDelay[iSyn].Tick()

	p := &s.Params[iSyn]
	src := s.SrcNeuron[iSyn]
	dst := s.DstNeuron[iSyn]

	if fPre {
		epre := 1.0
		if p.UseFroemkeDanSTDP {
			if s2 := pop.HistoryAt(src, -2); s2 != neuron.Missing {
				epre = efficacy(tick.Step, s2, p.Tauspre, tick.DeltaT)
			}
		}

		for offset := -1; ; offset-- {
			h := pop.HistoryAt(dst, offset)
			if h == neuron.Missing {
				break
			}
			delta := -float64(tick.Step-h) * tick.DeltaT
			if delta <= -3*p.Tauneg {
				break
			}

			epost := 1.0
			if p.UseFroemkeDanSTDP {
				prior := pop.HistoryAt(dst, offset-1)
				if prior == neuron.Missing {
					break
				}
				epost = efficacy(h, prior, p.Tauspost, tick.DeltaT)
			}
			s.W[iSyn] = StdpLearning(*p, s.W[iSyn], s.SynType[iSyn], delta, epost, epre)
		}
		s.changePSR(iSyn)
	}

	if fPost && s.AllowBackPropagation() {
		epost := 1.0
		if p.UseFroemkeDanSTDP {
			if s2 := pop.HistoryAt(dst, -2); s2 != neuron.Missing {
				epost = efficacy(tick.Step, s2, p.Tauspost, tick.DeltaT)
			}
		}
		totalDelay := uint64(s.PreDelay[iSyn].TotalDelay)

		for offset := -1; ; offset-- {
			h := pop.HistoryAt(src, offset)
			if h == neuron.Missing {
				break
			}
			if h+totalDelay > tick.Step {
				// this spike's forward delivery has not reached the
				// synapse yet; keep walking further into the past rather
				// than giving up. This relies on TotalDelay being constant
				// per synapse: once one entry is ready, every older one is.
				continue
			}
			delta := (float64(tick.Step-h) - float64(totalDelay)) * tick.DeltaT
			if delta >= 3*p.Taupos {
				break
			}

			epre := 1.0
			if p.UseFroemkeDanSTDP {
				prior := pop.HistoryAt(src, offset-1)
				if prior == neuron.Missing {
					break
				}
				epre = efficacy(h, prior, p.Tauspre, tick.DeltaT)
			}
			s.W[iSyn] = StdpLearning(*p, s.W[iSyn], s.SynType[iSyn], delta, epost, epre)
		}
	}

	return s.decay(iSyn), nil
}

// advanceBase reproduces the base spiking-synapse fallback a synapse whose
// weight has decayed to zero or below receives: only the pre-delay line is
// serviced, and a pending delivery still deposits its (non-positive)
// contribution into the PSR. The post-delay line is not ticked here.
func (s *Store) advanceBase(iSyn int, tick simclock.TickContext) {
	if s.PreDelay[iSyn].Tick() {
		s.changePSR(iSyn)
	}
}

// changePSR deposits the synapse's current weight into its post-synaptic
// response accumulator following a serviced pre-delay delivery.
func (s *Store) changePSR(iSyn int) {
	s.PSR[iSyn] += s.W[iSyn]
}

// decay applies one step of exponential PSR decay and returns the resulting
// response, ready to be added into the destination's summation point. Runs
// unconditionally, once per synapse per tick.
func (s *Store) decay(iSyn int) float64 {
	s.PSR[iSyn] *= s.Decay[iSyn]
	return s.PSR[iSyn]
}

// efficacy computes the Froemke-Dan (2002) spike efficacy factor
// 1 - exp(-ISI/tau) for the interval between a triggering step t and the
// spike that preceded it, prior. Both callers supply whichever pair of
// step indices defines the relevant preceding interval: the engine-call
// step and its own neuron's second-most-recent spike when computing the
// fixed pre/post efficacy, or a walked history entry and the spike before
// it when computing the paired entry's efficacy.
func efficacy(t, prior uint64, tau, deltaT float64) float64 {
	isi := float64(t-prior) * deltaT
	return 1.0 - math.Exp(-isi/tau)
}

/*
=================================================================================
STDP ENGINE - PAIR-BASED WEIGHT UPDATE RULE
=================================================================================

Grounded directly on AllSTDPSynapses::stdpLearning (original_source). Given the
signed spike-pair interval Δ and the Froemke-Dan pre/post efficacies, computes
the new synaptic weight. Pure: the only inputs are the arguments and the
returned weight; no queue or history access, no side effects.

Sign convention: Δ < 0 means the destination fired before the (delayed) source
spike arrived -- depression. Δ > 0 means the source's contribution arrived
before the destination fired -- potentiation. |Δ| <= STDPgap is a dead zone:
no update.
=================================================================================
*/
package synapse

import "math"

// StdpLearning computes the synaptic weight that results from a single
// pre/post spike pairing at interval delta, given the synapse's current
// weight, type, and STDP parameters.
func StdpLearning(p STDPParams, currentWeight float64, synType Type, delta, epost, epre float64) float64 {
	var dw float64

	switch {
	case delta < -p.STDPgap:
		// depression: normalize by the weight's current fraction of Wex
		dw = math.Pow(math.Abs(currentWeight)/p.Wex, p.Muneg) * p.Aneg * math.Exp(delta/p.Tauneg)
	case delta > p.STDPgap:
		// potentiation: normalize by remaining headroom to Wex
		dw = math.Pow(math.Abs(p.Wex-math.Abs(currentWeight))/p.Wex, p.Mupos) * p.Apos * math.Exp(-delta/p.Taupos)
	default:
		return currentWeight
	}

	// dw is a fractional change; 1+dw is the multiplicative scaling ratio.
	scale := 1 + dw*epre*epost
	if scale < 0 {
		scale = 0
	}

	w := currentWeight * scale
	if math.Abs(w) > p.Wex {
		w = synType.Sign() * p.Wex
	}
	return w
}

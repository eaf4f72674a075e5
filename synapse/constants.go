/*
=================================================================================
STDP CONSTANTS
=================================================================================

Default parameters for newly created synapses, taken from:

  Froemke RC, Dan Y. "Spike-timing-dependent synaptic modification induced by
  natural spike trains." Nature 416 (3/2002).

These are the literal defaults the original AllSTDPSynapses::createSynapse
assigns on every new synapse, reproduced unchanged.
=================================================================================
*/
package synapse

// DefaultSTDPParams returns the Froemke-Dan (2002) defaults assigned to every
// newly created synapse.
func DefaultSTDPParams() STDPParams {
	return STDPParams{
		Apos:              1.01,
		Aneg:              -0.52,
		STDPgap:           2e-3,
		Tauspost:          75e-3,
		Tauspre:           34e-3,
		Taupos:            14.8e-3,
		Tauneg:            33.8e-3,
		Wex:               5.0265e-7,
		Mupos:             0,
		Muneg:             0,
		UseFroemkeDanSTDP: false,
	}
}

// DefaultPSRTimeConstant is the decay time constant used to resolve a newly
// created synapse's per-step PSR decay factor when the caller does not
// override it. The governing spiking-synapse base class this STDP layer
// composes over is never defined explicitly here -- it is inherited
// behavior of the spiking-synapse base class this layer builds on; 3ms
// matches the fast AMPA-receptor decay Graphitti's default
// network configurations use for excitatory synapses.
const DefaultPSRTimeConstant = 3e-3

// checkpointFieldCount is the number of whitespace-separated fields the STDP
// layer appends after the base spiking-synapse record.
const checkpointFieldCount = 15

package config

import "github.com/SynapticNetworks/stdp-core/synapse"

// Apply returns synapse.DefaultSTDPParams() with every non-nil field in o
// overlaid on top, the pattern a harness uses to seed every synapse it
// creates with a run's configured overrides.
func (o STDPOverrides) Apply() synapse.STDPParams {
	p := synapse.DefaultSTDPParams()

	if o.Apos != nil {
		p.Apos = *o.Apos
	}
	if o.Aneg != nil {
		p.Aneg = *o.Aneg
	}
	if o.Taupos != nil {
		p.Taupos = *o.Taupos
	}
	if o.Tauneg != nil {
		p.Tauneg = *o.Tauneg
	}
	if o.Mupos != nil {
		p.Mupos = *o.Mupos
	}
	if o.Muneg != nil {
		p.Muneg = *o.Muneg
	}
	if o.Wex != nil {
		p.Wex = *o.Wex
	}
	if o.STDPgap != nil {
		p.STDPgap = *o.STDPgap
	}
	if o.Tauspre != nil {
		p.Tauspre = *o.Tauspre
	}
	if o.Tauspost != nil {
		p.Tauspost = *o.Tauspost
	}
	if o.UseFroemkeDanSTDP != nil {
		p.UseFroemkeDanSTDP = *o.UseFroemkeDanSTDP
	}

	return p
}

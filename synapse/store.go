/*
=================================================================================
SYNAPSE STORE - STRUCTURE-OF-ARRAYS SYNAPSE STATE
=================================================================================

Store owns every per-synapse array: endpoints, weight,
PSR and its decay, the independent pre/post delay lines, STDP parameters, and
a handle into the destination neuron's summation point. It is created once
per run via Setup, populated synapse-by-synapse via Create, and is the
collaborator both the Synapse Advancer (advance.go) and a checkpoint
collaborator (Read/Write) operate against.

Following a composition-over-inheritance convention: there is no
separate "base spiking synapse" type here. The STDP layer's row simply
carries both the base spiking fields (weight, PSR, decay, pre-delay line,
endpoints) and the STDP-specific fields (post-delay line, Froemke-Dan
parameters) in one structure-of-arrays, and Write/Read still emit the base
fields first to preserve the original's on-disk field ordering.
=================================================================================
*/
package synapse

import (
	"bufio"
	"fmt"
	"io"

	"github.com/SynapticNetworks/stdp-core/delayline"
)

// Store is a structure-of-arrays collection of up to N*MaxPerNeuron synapses.
type Store struct {
	N            int
	MaxPerNeuron int

	// === endpoints ===
	SrcNeuron []int
	DstNeuron []int
	SynType   []Type

	// === aggregation ===
	Sum []*SumSlot

	// === weight and PSR ===
	W     []float64
	PSR   []float64
	Decay []float64

	// === delay lines ===
	PreDelay  []delayline.DelayLine
	PostDelay []delayline.DelayLine

	// === STDP parameters ===
	Params []STDPParams
}

// NewStore allocates a Store sized for N neurons with up to maxPerNeuron
// synapses each.
func NewStore(n, maxPerNeuron int) *Store {
	s := &Store{}
	s.Setup(n, maxPerNeuron)
	return s
}

// Setup (re-)allocates every per-synapse array. Mirrors
// AllSTDPSynapses::setupSynapses: safe to call on a zero-value Store, and
// idempotent for the same (n, maxPerNeuron).
func (s *Store) Setup(n, maxPerNeuron int) {
	s.N = n
	s.MaxPerNeuron = maxPerNeuron
	total := n * maxPerNeuron

	s.SrcNeuron = make([]int, total)
	s.DstNeuron = make([]int, total)
	s.SynType = make([]Type, total)
	s.Sum = make([]*SumSlot, total)
	s.W = make([]float64, total)
	s.PSR = make([]float64, total)
	s.Decay = make([]float64, total)
	s.PreDelay = make([]delayline.DelayLine, total)
	s.PostDelay = make([]delayline.DelayLine, total)
	s.Params = make([]STDPParams, total)
}

// Cleanup releases the Store's arrays. Mirrors
// AllSTDPSynapses::cleanupSynapses; present for symmetry with the family
// contract even though Go's GC reclaims the backing arrays once
// the Store itself is unreachable.
func (s *Store) Cleanup() {
	*s = Store{}
}

// Create initializes synapse iSyn connecting srcNeuron to dstNeuron, with
// its PSR accumulating into sum, at the given simulation Δt and synaptic
// type. preDelaySteps/postDelaySteps configure the two delay lines' fixed
// latency (topology/connectivity decisions are an external collaborator's
// responsibility; the Store only needs the
// resolved step counts). Every STDP parameter is set to its Froemke-Dan
// (2002) default; decay is resolved from DefaultPSRTimeConstant and deltaT.
// Returns ErrUnknownSynapse if iSyn is outside the Store's allocated range.
func (s *Store) Create(iSyn, srcNeuron, dstNeuron int, sum *SumSlot, deltaT float64, synType Type, preDelaySteps, postDelaySteps int) error {
	if !s.indexInRange(iSyn) {
		return ErrUnknownSynapse
	}

	s.SrcNeuron[iSyn] = srcNeuron
	s.DstNeuron[iSyn] = dstNeuron
	s.SynType[iSyn] = synType
	s.Sum[iSyn] = sum

	s.W[iSyn] = 0
	s.PSR[iSyn] = 0
	s.Decay[iSyn] = decayFromTau(DefaultPSRTimeConstant, deltaT)

	s.PreDelay[iSyn] = *delayline.New(preDelaySteps)
	s.PostDelay[iSyn] = *delayline.New(postDelaySteps)

	s.Params[iSyn] = DefaultSTDPParams()
	return nil
}

// indexInRange reports whether iSyn falls within the Store's allocated
// arrays.
func (s *Store) indexInRange(iSyn int) bool {
	return iSyn >= 0 && iSyn < len(s.W)
}

func decayFromTau(tau, deltaT float64) float64 {
	return expNeg(deltaT / tau)
}

// AllowBackPropagation reports whether this synapse family notifies its
// pre-synaptic partner of post-synaptic spikes. Always true for STDP
// synapses.
func (s *Store) AllowBackPropagation() bool {
	return true
}

// PreSpikeHit schedules a forward delivery on the pre-delay line, called by
// the neuron-update phase when the source neuron fires.
func (s *Store) PreSpikeHit(iSyn int) {
	s.PreDelay[iSyn].Schedule()
}

// PostSpikeHit schedules a back-propagation notification on the post-delay
// line, called by the neuron-update phase when the destination neuron fires
// (gated by AllowBackPropagation in the caller).
func (s *Store) PostSpikeHit(iSyn int) {
	s.PostDelay[iSyn].Schedule()
}

// PrintProperties writes a diagnostic dump of every synapse with a nonzero
// weight, mirroring AllSTDPSynapses::printSynapsesProps.
func (s *Store) PrintProperties(w io.Writer) {
	for i := range s.W {
		if s.W[i] == 0 {
			continue
		}
		p := s.Params[i]
		fmt.Fprintf(w, "total_delayPost[%d] = %d tauspost: %g tauspre: %g taupos: %g tauneg: %g STDPgap: %g Wex: %g Aneg: %g Apos: %g mupos: %g muneg: %g useFroemkeDanSTDP: %v\n",
			i, s.PostDelay[i].TotalDelay, p.Tauspost, p.Tauspre, p.Taupos, p.Tauneg, p.STDPgap, p.Wex, p.Aneg, p.Apos, p.Mupos, p.Muneg, p.UseFroemkeDanSTDP)
	}
}

// Write serializes synapse iSyn's full record -- base spiking fields
// followed by the STDP-specific block -- as whitespace-separated text, one
// field per line.
func (s *Store) Write(iSyn int, w io.Writer) error {
	bw := bufio.NewWriter(w)

	// base spiking-synapse record
	fmt.Fprintln(bw, s.SrcNeuron[iSyn])
	fmt.Fprintln(bw, s.DstNeuron[iSyn])
	fmt.Fprintln(bw, int(s.SynType[iSyn]))
	fmt.Fprintln(bw, s.W[iSyn])
	fmt.Fprintln(bw, s.PSR[iSyn])
	fmt.Fprintln(bw, s.Decay[iSyn])
	pre := s.PreDelay[iSyn]
	fmt.Fprintln(bw, pre.TotalDelay)
	fmt.Fprintln(bw, pre.Queue)
	fmt.Fprintln(bw, pre.Idx)
	fmt.Fprintln(bw, pre.Length)

	// STDP-appended block
	post := s.PostDelay[iSyn]
	fmt.Fprintln(bw, post.TotalDelay)
	fmt.Fprintln(bw, post.Queue)
	fmt.Fprintln(bw, post.Idx)
	fmt.Fprintln(bw, post.Length)

	p := s.Params[iSyn]
	fmt.Fprintln(bw, p.Tauspost)
	fmt.Fprintln(bw, p.Tauspre)
	fmt.Fprintln(bw, p.Taupos)
	fmt.Fprintln(bw, p.Tauneg)
	fmt.Fprintln(bw, p.STDPgap)
	fmt.Fprintln(bw, p.Wex)
	fmt.Fprintln(bw, p.Aneg)
	fmt.Fprintln(bw, p.Apos)
	fmt.Fprintln(bw, p.Mupos)
	fmt.Fprintln(bw, p.Muneg)
	fmt.Fprintln(bw, p.UseFroemkeDanSTDP)

	return bw.Flush()
}

// Read is symmetric with Write: reading back what Write produced for the
// same synapse reconstructs it field-for-field. Whitespace (including
// newlines) separates tokens, so the reader tolerates either the one-field-
// per-line layout Write produces or plain space separation.
func (s *Store) Read(iSyn int, r io.Reader) error {
	if !s.indexInRange(iSyn) {
		return ErrUnknownSynapse
	}

	sc := newFieldScanner(r)

	const baseFieldCount = 10
	fields := []struct {
		name string
		dst  interface{}
	}{
		{"srcNeuron", &s.SrcNeuron[iSyn]},
		{"dstNeuron", &s.DstNeuron[iSyn]},
		{"synType", (*intType)(&s.SynType[iSyn])},
		{"W", &s.W[iSyn]},
		{"psr", &s.PSR[iSyn]},
		{"decay", &s.Decay[iSyn]},
		{"totalDelay", &s.PreDelay[iSyn].TotalDelay},
		{"queue", &s.PreDelay[iSyn].Queue},
		{"idx", &s.PreDelay[iSyn].Idx},
		{"length", &s.PreDelay[iSyn].Length},
		{"totalDelayPost", &s.PostDelay[iSyn].TotalDelay},
		{"queuePost", &s.PostDelay[iSyn].Queue},
		{"idxPost", &s.PostDelay[iSyn].Idx},
		{"lengthPost", &s.PostDelay[iSyn].Length},
		{"tauspost", &s.Params[iSyn].Tauspost},
		{"tauspre", &s.Params[iSyn].Tauspre},
		{"taupos", &s.Params[iSyn].Taupos},
		{"tauneg", &s.Params[iSyn].Tauneg},
		{"STDPgap", &s.Params[iSyn].STDPgap},
		{"Wex", &s.Params[iSyn].Wex},
		{"Aneg", &s.Params[iSyn].Aneg},
		{"Apos", &s.Params[iSyn].Apos},
		{"mupos", &s.Params[iSyn].Mupos},
		{"muneg", &s.Params[iSyn].Muneg},
		{"useFroemkeDanSTDP", &s.Params[iSyn].UseFroemkeDanSTDP},
	}
	if len(fields)-baseFieldCount != checkpointFieldCount {
		panic(fmt.Sprintf("synapse: STDP checkpoint field list has %d entries, want %d", len(fields)-baseFieldCount, checkpointFieldCount))
	}

	for i, f := range fields {
		if err := sc.scan(f.dst); err != nil {
			return &CheckpointError{SynapseIndex: iSyn, FieldIndex: i, FieldName: f.name, Err: err}
		}
	}
	return nil
}

// intType lets Read scan a Type field (an int-kinded named type) through the
// same generic field scanner used for every other field.
type intType Type

func (it *intType) fromInt(v int) { *it = intType(v) }

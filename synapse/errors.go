package synapse

import (
	"errors"
	"fmt"
)

// Sentinel errors for recoverable, non-fatal conditions. Invariant
// violations (delay-queue overflow, scheduling into an occupied slot) remain
// panics raised by the delayline package -- those are programming errors, not
// conditions a caller can meaningfully recover from.
var (
	// ErrUnknownSynapse is returned by Store.Create, Store.Read and
	// Store.Advance/AdvanceDeferred when given an index outside
	// [0, N*MaxPerNeuron).
	ErrUnknownSynapse = errors.New("synapse: index out of range")
)

// CheckpointError reports a checkpoint-stream parse failure, naming the
// synapse index and field position that failed.
type CheckpointError struct {
	SynapseIndex int
	FieldIndex   int
	FieldName    string
	Err          error
}

func (e *CheckpointError) Error() string {
	return fmt.Sprintf("synapse: checkpoint read failed for synapse %d, field %d (%s): %v",
		e.SynapseIndex, e.FieldIndex, e.FieldName, e.Err)
}

func (e *CheckpointError) Unwrap() error {
	return e.Err
}

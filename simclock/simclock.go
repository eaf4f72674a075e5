// Package simclock defines the tick context threaded through per-step
// operations: the global step counter and the simulation's fixed Δt.
//
// The source this system was distilled from kept both as process-wide
// singletons (Simulator::getInstance(), g_simulationStep); re-expressed here
// as an explicit, immutable value passed into Advance calls. The Step Driver
// owns the only mutable copy; nothing else holds ambient state.
package simclock

// TickContext carries the current simulation step and the per-step duration.
// Both are immutable for the duration of a run once the driver is
// constructed; only Step changes, once per tick, owned exclusively by the
// step driver between ticks.
type TickContext struct {
	Step   uint64  // process-wide monotonically increasing step counter
	DeltaT float64 // seconds per step
}

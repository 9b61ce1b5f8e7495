// Package services implements the fleet simulation and analytics engine: a
// deterministic, side-effect-free computation core that advances a fleet
// snapshot by one time step.
//
// The package includes:
//   - Validator: per-record and batch validation/sanitization of fleet entries
//   - TransitionStatus: Markov-chain status transitions
//   - CalculateSpeed: status- and traffic-aware speed sampling
//   - MovementModel: per-tick position updates with operational-bounds clamping
//   - HashPositions/HashState: FNV-1a fingerprints for change detection
//   - Summarize: fleet-wide statistics (counts, speed extremes, centroid)
//   - FindNearest/FindWithinRadius: geographic queries over a snapshot
//   - Simulator: the orchestrator composing all of the above into one atomic tick
//
// Every operation is a pure function of its explicit inputs: no I/O, no hidden
// shared state, no ambient randomness. All stochastic behavior derives from the
// caller-supplied seed and each record's id, so repeated calls with identical
// inputs produce identical results, across processes and platforms. Concurrent
// callers may invoke the engine from multiple goroutines as long as each call
// receives its own snapshot.
package services

// Package metrics defines the solver's stable counter contract: monotonically
// increasing counts of hashes computed, edges touched, passes run and
// attempts made, plus the constant bin count.
//
// Counters is written by many goroutines per attempt (one per bin worker).
// The convention used throughout this module is per-worker deltas merged at
// the worker's WaitGroup join, per spec §5 ("preferred") — each worker
// accumulates into its own Counters value, and Add folds one worker's delta
// into the attempt-level aggregate. Nothing here takes a lock on the hot
// path; the only synchronization is around that final Add (package attempt
// guards it with a mutex when a worker finishes).
package metrics

// Counters holds the stable metrics contract named in spec §6, plus two
// supplemental, non-contractual counters (WorkerFaults, SearchBudgetHits)
// that this expansion's harness surfaces for operators without promising
// cross-implementation stability.
type Counters struct {
	HashesComputed uint64
	EdgesTouched   uint64
	Passes         uint64
	Attempts       uint64
	Bins           uint64

	// WorkerFaults counts bins whose worker failed and was treated as "no
	// cycle" (spec §7, WorkerFault class). Optional per spec §7.
	WorkerFaults uint64

	// SearchBudgetHits counts cycle searches that exhausted their
	// expansion budget before exhausting the survivor graph (spec §9,
	// "Search budget"). Purely informational.
	SearchBudgetHits uint64
}

// Add accumulates delta's fields into c in place. Intended for a single
// owner goroutine (e.g. the attempt orchestrator after a worker's delta is
// handed back over a channel or merged at WaitGroup join).
func (c *Counters) Add(delta Counters) {
	c.HashesComputed += delta.HashesComputed
	c.EdgesTouched += delta.EdgesTouched
	c.Passes += delta.Passes
	c.Attempts += delta.Attempts
	// Bins is a constant of the run, not an accumulating count; callers
	// set it once rather than summing worker deltas.
	c.WorkerFaults += delta.WorkerFaults
	c.SearchBudgetHits += delta.SearchBudgetHits
}

// ToMap renders the stable contract keys (spec §6) plus the supplemental
// ones, for JSON/CSV emission in the cmd/ harness. Keys match spec §6
// exactly: hashes_computed, edges_touched, passes, attempts, bins.
func (c Counters) ToMap() map[string]any {
	return map[string]any{
		"hashes_computed":    c.HashesComputed,
		"edges_touched":      c.EdgesTouched,
		"passes":             c.Passes,
		"attempts":           c.Attempts,
		"bins":               c.Bins,
		"worker_faults":      c.WorkerFaults,
		"search_budget_hits": c.SearchBudgetHits,
	}
}

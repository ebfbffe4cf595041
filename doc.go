// Package solve is the Cuckatoo tradeoff solver's root package: it runs
// the solve loop (spec §4.G) that drives attempt.Run across attempt-count
// and wall-clock budgets, and assembles the public Result envelope.
//
// Package layout:
//
//	oracle/     — deterministic keyed endpoint hash (spec §4.A)
//	partition/  — bin assignment (spec §4.B)
//	degree/     — degree-count pass (spec §4.C)
//	trim/       — leaf-trimming engine (spec §4.D)
//	cycle/      — cycle search over a bin's survivors (spec §4.E)
//	attempt/    — per-attempt orchestrator across bins (spec §4.F)
//	metrics/    — the stable counter contract (spec §6)
//	verify/     — independent cycle verifier
//	internal/   — CLI/logging/build-info ambient support
//	cmd/        — solve and bench command-line front-ends
//
// Known limitation: bins are partitioned by e mod k, so any 42-cycle
// whose edges span more than one bin is invisible to this solver. This is
// the accepted cost of the memory/time tradeoff the bin count buys; it is
// not a bug.
package solve

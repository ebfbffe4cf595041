// Package attempt drives one C->D->E sweep (degree count, trim, cycle
// search) across every bin of a single attempt, in parallel, and returns
// the first cycle any bin reports.
//
// Workers share a single read-only oracle.Endpointer and a pool of bin
// indices; each worker owns its degree maps and survivor set exclusively
// for the bins it processes (spec §3, §5). The first worker to find a
// cycle publishes it through a single-producer result slot guarded by
// sync.Once; every other worker's result is discarded. Per-worker metrics
// deltas are merged into the shared Counters only at join, so there is no
// hot-path lock contention (spec §5, §9).
package attempt

// Package verify re-derives cycle endpoints from a header and confirms
// adjacency and closure, independently of however the cycle was found.
package verify

import (
	"github.com/cuckatoo/solve/cycle"
	"github.com/cuckatoo/solve/oracle"
)

// Cycle returns true iff edges is a valid 42-edge simple cycle under
// header and n: exactly 42 entries, no repeated edge index, every entry's
// endpoints match the oracle, and each entry's V equals the next entry's
// U (indices mod 42). It never panics; malformed input simply returns
// false (spec §6/§7 — the verifier is total).
//
// Cycle always rechecks against the default BLAKE2b oracle (package
// oracle's Oracle). Callers that solved against an alternate Endpointer
// (e.g. via solve.WithOracle) must use WithEndpointer instead, so the
// recheck uses the same hash the solve ran against.
func Cycle(header [32]byte, n uint8, edges []cycle.Edge) bool {
	return WithEndpointer(oracle.New(header), n, edges)
}

// WithEndpointer is Cycle generalized to an arbitrary oracle.Endpointer,
// so a caller that solved with a non-default oracle can still run the
// same independent recheck.
func WithEndpointer(o oracle.Endpointer, n uint8, edges []cycle.Edge) bool {
	if len(edges) != cycle.Length {
		return false
	}

	seen := make(map[uint64]bool, cycle.Length)

	for i, e := range edges {
		if seen[e.Index] {
			return false
		}
		seen[e.Index] = true

		if o.Endpoint(e.Index, 0, n) != e.U || o.Endpoint(e.Index, 1, n) != e.V {
			return false
		}

		next := edges[(i+1)%cycle.Length]
		if e.V != next.U {
			return false
		}
	}
	return true
}

// Package trim implements leaf trimming: iterative removal of edges that
// have an endpoint of degree 1, which never removes an edge that
// participates in a cycle (every node on a cycle has degree >= 2) while
// shrinking everything else away.
package trim

import (
	"context"

	"github.com/cuckatoo/solve/cycle"
	"github.com/cuckatoo/solve/degree"
	"github.com/cuckatoo/solve/metrics"
	"github.com/cuckatoo/solve/oracle"
	"github.com/cuckatoo/solve/partition"
)

// DefaultRounds is the reference implementation's round count (spec §4.D).
// Larger values shrink the survivor set further at the cost of more passes.
const DefaultRounds = 2

// Run performs rounds of mark/rebuild trimming over bin binIdx, starting
// from the degree maps produced by degree.Count, and returns the survivor
// edges as materialized triples.
//
// Each round:
//  1. Mark pass: stream e over the bin; mark it a survivor iff both
//     deg_u[u] > 1 and deg_v[v] > 1 under the CURRENT degree maps.
//  2. Rebuild pass: clear both degree maps and recompute them restricted
//     to the marked survivors.
//
// Invariant: once a round removes no edges (the fixed point), every
// survivor's endpoints both have degree >= 2 in the post-round maps. After
// a fixed number of rounds short of that point, a survivor can still have
// an endpoint of degree 1 in the rebuilt maps, because an edge sharing that
// endpoint may have been cut for its other endpoint in the same round.
// Every node of a 42-edge simple cycle has degree >= 2 from the cycle's own
// edges, so trimming can never discard a cycle edge, only the tree
// material hanging off one.
//
// degU and degV are mutated in place across rounds and are not safe for
// concurrent reuse by another bin; callers own them exclusively for the
// duration of Run, per spec §3 ("Degree maps ... belong exclusively to
// their bin worker"). Being map-backed (package degree), their live size
// tracks the bin's edge count rather than the full 2^n node space.
func Run(ctx context.Context, o oracle.Endpointer, binIdx, bins uint32, n uint8, degU, degV degree.Counts, rounds int, m *metrics.Counters) ([]cycle.Edge, error) {
	if rounds < 1 {
		return nil, ErrRoundsTooLow
	}

	total := uint64(1) << n
	capHint := partition.Size(total, bins, binIdx)
	survivors := make([]uint64, 0, capHint)

	for r := 0; r < rounds; r++ {
		survivors = survivors[:0]

		// Mark pass.
		for e := uint64(0); e < total; e++ {
			if e%4096 == 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				default:
				}
			}
			if partition.Bin(e, bins) != binIdx {
				continue
			}
			u := o.Endpoint(e, 0, n)
			v := o.Endpoint(e, 1, n)
			m.HashesComputed += 2
			m.EdgesTouched++
			if degU.Get(u) > 1 && degV.Get(v) > 1 {
				survivors = append(survivors, e)
			}
		}

		// Rebuild pass.
		degU.Reset()
		degV.Reset()
		for _, e := range survivors {
			u := o.Endpoint(e, 0, n)
			v := o.Endpoint(e, 1, n)
			m.HashesComputed += 2
			m.EdgesTouched++
			degU.Inc(u)
			degV.Inc(v)
		}
		m.Passes += 2
	}

	out := make([]cycle.Edge, len(survivors))
	for i, e := range survivors {
		out[i] = cycle.Edge{
			Index: e,
			U:     o.Endpoint(e, 0, n),
			V:     o.Endpoint(e, 1, n),
		}
		m.HashesComputed += 2
	}
	return out, nil
}

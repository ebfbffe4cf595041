package degree

import (
	"context"

	"github.com/cuckatoo/solve/metrics"
	"github.com/cuckatoo/solve/oracle"
	"github.com/cuckatoo/solve/partition"
)

// saturate is the ceiling trimming cares about: any degree above 1 behaves
// identically to trim.Run, so counts never need to grow past it.
const saturate = 2

// Counts is a map-backed degree map that only allocates entries for nodes
// actually touched while building it — degree zero is the map's implicit
// zero value, so a bin's working set costs O(|bin|) space (spec §4.C),
// not O(2^n). It saturates at 2 since trimming only ever asks "degree >
// 1?".
type Counts map[uint32]uint8

// NewCounts allocates a Counts pre-sized for capHint entries. capHint is
// only a hint (e.g. partition.Size's estimate of a bin's edge count); the
// map grows past it like any Go map if the estimate undershoots.
func NewCounts(capHint int) Counts {
	if capHint < 0 {
		capHint = 0
	}
	return make(Counts, capHint)
}

// Inc increments node's degree, saturating at 2.
func (c Counts) Inc(node uint32) {
	if c[node] < saturate {
		c[node]++
	}
}

// Get returns node's current (possibly saturated) degree, or 0 if unseen.
func (c Counts) Get(node uint32) int {
	return int(c[node])
}

// Reset clears every entry, for reuse across trimming rounds.
func (c Counts) Reset() {
	for k := range c {
		delete(c, k)
	}
}

// Count performs the degree-count pass (spec §4.C): it streams every edge
// index in [0, 2^n), skips those not in bin binIdx, and increments both
// side's degree map for the edges that remain. Edges are never stored.
//
// Guarantees: sum(degU) == sum(degV) == the number of edges in binIdx
// (ignoring saturation, which Counts applies for memory economy — see
// trim.Run, the only consumer, which only needs ">1").
//
// Complexity: 2*|bin| oracle calls, O(|bin|) memory in the two degree
// maps — this is the payoff of bin partitioning (package partition):
// doubling the bin count halves each map's live entry count.
func Count(ctx context.Context, o oracle.Endpointer, binIdx, bins uint32, n uint8, m *metrics.Counters) (degU, degV Counts) {
	total := uint64(1) << n
	capHint := int(partition.Size(total, bins, binIdx))
	degU = NewCounts(capHint)
	degV = NewCounts(capHint)

	for e := uint64(0); e < total; e++ {
		if e%4096 == 0 {
			select {
			case <-ctx.Done():
				return degU, degV
			default:
			}
		}
		if partition.Bin(e, bins) != binIdx {
			continue
		}
		u := o.Endpoint(e, 0, n)
		v := o.Endpoint(e, 1, n)
		m.HashesComputed += 2
		degU.Inc(u)
		degV.Inc(v)
		m.EdgesTouched++
	}
	m.Passes++
	return degU, degV
}

package fixtures

import (
	"fmt"

	"github.com/cuckatoo/solve/cycle"
	"github.com/cuckatoo/solve/oracle"
)

// PlantedCycle builds a cycle.Length-node ring via buildRing, checks every
// edge it expects lands where the ring topology says it should, and
// returns an oracle.Endpointer whose planted 42-edge cycle follows that
// ring exactly.
//
// A plain simple cycle gives every node degree 1 on each side, which
// trim.Run would discard as leaves (the trimming invariant requires
// degree > 1 on both sides to survive). So each ring edge is doubled: a
// second, distinct edge index carries the same (U, V) pair, exactly as a
// real Cuckoo edge space routinely hashes multiple edge indices onto the
// same node pair. That parallel edge gives every ring node degree 2 on
// both sides without changing the cycle's shape.
//
// PlantedCycle plants the ring (and its doubles) on indices that are
// multiples of step, so callers partitioning edges into bins (e mod K)
// can choose step == K to keep the whole ring inside a single bin.
func PlantedCycle(step uint64) (oracle.Endpointer, error) {
	if step == 0 {
		step = 1
	}

	ring, err := buildRing(cycle.Length)
	if err != nil {
		return nil, fmt.Errorf("fixtures: building ring: %w", err)
	}
	for i, e := range ring {
		if e.U != i || e.V != (i+1)%cycle.Length {
			return nil, fmt.Errorf("fixtures: unexpected ring edge at position %d: %+v", i, e)
		}
	}

	return &ringFixture{step: step}, nil
}

// ringFixture is the Endpointer returned by PlantedCycle.
type ringFixture struct {
	step uint64
}

// ringPosition returns the ring position (0..41) that edge index e plants,
// and whether e is a ring position at all. Indices k*step for k in
// [0, 42) carry the ring itself; indices (42+k)*step carry the doubling
// edge for ring position k, giving every node degree 2 on both sides.
func (r *ringFixture) ringPosition(e uint64) (pos uint64, ok bool) {
	if e%r.step != 0 {
		return 0, false
	}
	k := e / r.step
	length := uint64(cycle.Length)
	switch {
	case k < length:
		return k, true
	case k < 2*length:
		return k - length, true
	default:
		return 0, false
	}
}

func (r *ringFixture) Endpoint(e uint64, side uint8, n uint8) uint32 {
	if i, ok := r.ringPosition(e); ok {
		if side == 0 {
			return uint32(i)
		}
		return uint32((i + 1) % uint64(cycle.Length))
	}

	bound := uint64(1) << n
	base := uint64(cycle.Length) + 2
	span := bound - base
	if side == 0 {
		return uint32(base + (e % span))
	}
	return uint32(base + ((e*7 + 3) % span))
}

var _ oracle.Endpointer = (*ringFixture)(nil)

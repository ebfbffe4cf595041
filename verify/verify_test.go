package verify_test

import (
	"testing"

	"github.com/cuckatoo/solve/cycle"
	"github.com/cuckatoo/solve/oracle"
	"github.com/cuckatoo/solve/verify"
	"github.com/stretchr/testify/require"
)

func header(b byte) [32]byte {
	var h [32]byte
	for i := range h {
		h[i] = b
	}
	return h
}

// TestVerifyRejectsWrongLength covers spec property 3 / scenario S3.
func TestVerifyRejectsWrongLength(t *testing.T) {
	require.False(t, verify.Cycle(header(0x02), 10, nil))
	require.False(t, verify.Cycle(header(0x02), 10, make([]cycle.Edge, 41)))
	require.False(t, verify.Cycle(header(0x02), 10, make([]cycle.Edge, 43)))
}

// buildFakeCycle mirrors scenario S4: a length-42 list built from real
// oracle endpoints but with no attempt at adjacency, which must fail.
func buildFakeCycle(h [32]byte, n uint8) []cycle.Edge {
	o := oracle.New(h)
	edges := make([]cycle.Edge, cycle.Length)
	for i := 0; i < cycle.Length; i++ {
		e := uint64(i)
		edges[i] = cycle.Edge{Index: e, U: o.Endpoint(e, 0, n), V: o.Endpoint(e, 1, n)}
	}
	return edges
}

// TestVerifyRejectsBrokenAdjacency covers scenario S4 and property 6.
func TestVerifyRejectsBrokenAdjacency(t *testing.T) {
	h := header(0x03)
	edges := buildFakeCycle(h, 10)
	require.False(t, verify.Cycle(h, 10, edges))
}

// TestVerifyRejectsDuplicateEdges covers scenario S5 and property 4.
func TestVerifyRejectsDuplicateEdges(t *testing.T) {
	h := header(0x03)
	edges := buildFakeCycle(h, 10)
	edges[1] = edges[0]
	require.False(t, verify.Cycle(h, 10, edges))
}

// TestVerifyRejectsWrongEndpoints covers property 5: flipping any
// endpoint must fail verification.
func TestVerifyRejectsWrongEndpoints(t *testing.T) {
	h := header(0x03)
	edges := buildFakeCycle(h, 10)
	edges[0].U ^= 1
	require.False(t, verify.Cycle(h, 10, edges))
}

// TestVerifyNeverPanicsOnGarbage exercises the totality guarantee (spec
// §7: "the verifier is total... never a fault") against inputs that are
// neither well-formed nor oracle-consistent.
func TestVerifyNeverPanicsOnGarbage(t *testing.T) {
	h := header(0x09)
	garbage := make([]cycle.Edge, cycle.Length)
	for i := range garbage {
		garbage[i] = cycle.Edge{Index: uint64(i), U: ^uint32(i), V: uint32(i) * 7}
	}
	require.NotPanics(t, func() {
		require.False(t, verify.Cycle(h, 10, garbage))
	})
}

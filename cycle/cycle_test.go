package cycle_test

import (
	"testing"

	"github.com/cuckatoo/solve/cycle"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyIsNoCycle(t *testing.T) {
	res := cycle.Search(nil, cycle.Budget{})
	require.False(t, res.Found)
	require.False(t, res.BudgetExhausted)
}

// buildRing constructs a clean n-edge ring 0 -> 1 -> 2 -> ... -> n-1 -> 0
// where edge i has U=i, V=(i+1)%n, so a search can find it deterministically.
func buildRing(n int) []cycle.Edge {
	edges := make([]cycle.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = cycle.Edge{Index: uint64(i), U: uint32(i), V: uint32((i + 1) % n)}
	}
	return edges
}

func TestSearchFindsExactRing(t *testing.T) {
	edges := buildRing(cycle.Length)
	res := cycle.Search(edges, cycle.Budget{})
	require.True(t, res.Found)

	seen := make(map[uint64]bool, cycle.Length)
	for i, e := range res.Path {
		require.False(t, seen[e.Index], "duplicate edge in returned cycle")
		seen[e.Index] = true
		next := res.Path[(i+1)%cycle.Length]
		require.Equal(t, e.V, next.U)
	}
}

func TestSearchRejectsShortRing(t *testing.T) {
	// A ring shorter than 42 edges can never produce a 42-cycle.
	edges := buildRing(10)
	res := cycle.Search(edges, cycle.Budget{})
	require.False(t, res.Found)
}

func TestSearchHonorsBudget(t *testing.T) {
	// A dense complete bipartite blob is cheap to search exhaustively at
	// full budget but, capped to a single expansion, must bail out long
	// before any 42-edge path could close.
	const n = 60
	edges := make([]cycle.Edge, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			edges = append(edges, cycle.Edge{Index: uint64(i*n + j), U: uint32(i), V: uint32(j)})
		}
	}
	res := cycle.Search(edges, cycle.Budget{MaxExpansions: 1})
	require.False(t, res.Found)
	require.True(t, res.BudgetExhausted)
}

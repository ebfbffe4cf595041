package cycle

// Length is the fixed cycle length the Cuckatoo proof-of-work searches for.
const Length = 42

// Edge is the materialized representation of an edge after hashing: its
// index plus both endpoints. u = H(e, 0), v = H(e, 1) is an invariant every
// Edge the core emits must satisfy (enforced by trim.Run, the only
// producer of Edge values upstream of this package, and rechecked
// independently by package verify).
type Edge struct {
	Index uint64
	U, V  uint32
}

// Budget caps the work a single Search call may perform, per spec §9
// ("Search budget" — the reference DFS has no explicit cap; a production
// rewrite must add one). Zero value means "use DefaultMaxExpansions".
type Budget struct {
	// MaxExpansions bounds the total number of DFS stack frames explored
	// across every start edge in one Search call.
	MaxExpansions int
}

// DefaultMaxExpansions is used when a Budget's MaxExpansions is <= 0. It is
// generous enough to explore a sparse survivor set exhaustively while
// still bounding adversarial inputs.
const DefaultMaxExpansions = 2_000_000

// Result reports whether Search found a cycle and whether it stopped early
// because the expansion budget was exhausted.
type Result struct {
	Found           bool
	Path            [Length]Edge
	BudgetExhausted bool
}

// Search looks for a 42-edge simple cycle among edges: a directed path
// edges[i0] -> edges[i1] -> ... -> edges[i41] -> edges[i0] where each step
// matches the current edge's V to the next edge's U, every edge index is
// distinct, and the final V closes back to the first edge's U.
//
// Per spec §4.E: an empty survivor set is an immediate "no cycle"; multiple
// candidate cycles may exist, and the first one discovered is returned (the
// verifier accepts any valid cycle, so there is no notion of "the best"
// one here).
func Search(edges []Edge, budget Budget) Result {
	if len(edges) == 0 {
		return Result{}
	}

	maxExp := budget.MaxExpansions
	if maxExp <= 0 {
		maxExp = DefaultMaxExpansions
	}

	byU := make(map[uint32][]int, len(edges))
	for i, e := range edges {
		byU[e.U] = append(byU[e.U], i)
	}

	used := make([]bool, len(edges))
	expansions := 0
	exhausted := false

	var dfs func(startIdx, curIdx, length int) bool
	dfs = func(startIdx, curIdx, length int) bool {
		expansions++
		if expansions > maxExp {
			exhausted = true
			return false
		}
		if length == Length {
			return edges[curIdx].V == edges[startIdx].U
		}
		for _, nxt := range byU[edges[curIdx].V] {
			if used[nxt] {
				continue
			}
			used[nxt] = true
			if dfs(startIdx, nxt, length+1) {
				return true
			}
			used[nxt] = false
			if exhausted {
				return false
			}
		}
		return false
	}

	for start := range edges {
		used[start] = true
		if dfs(start, start, 1) {
			if path, ok := reconstruct(edges, byU, start); ok && path[Length-1].V == path[0].U {
				return Result{Found: true, Path: path}
			}
			// The DFS confirmed a closing path exists, but greedy
			// reconstruction (the tie-break policy in spec §4.E) either
			// didn't reach 42 edges or didn't close back to the start;
			// keep searching other start edges rather than declaring
			// failure outright.
		}
		used[start] = false
		if exhausted {
			break
		}
	}

	return Result{BudgetExhausted: exhausted}
}

// reconstruct walks greedily from edges[start]: at each step it picks the
// first unused neighbor in byU[cur.V], per spec §4.E's tie-break policy
// ("any deterministic ordering suffices because the final validity check
// recomputes endpoints via the oracle"). It returns ok=false if the greedy
// walk runs out of neighbors before reaching Length edges.
func reconstruct(edges []Edge, byU map[uint32][]int, start int) ([Length]Edge, bool) {
	var path [Length]Edge
	usedIdx := make(map[int]bool, Length)
	cur := start
	for i := 0; i < Length; i++ {
		path[i] = edges[cur]
		usedIdx[cur] = true

		next := -1
		for _, cand := range byU[edges[cur].V] {
			if !usedIdx[cand] {
				next = cand
				break
			}
		}
		if next == -1 {
			if i == Length-1 {
				// Last edge needs no successor; the caller checks
				// that the path closes back to the start edge.
				break
			}
			return path, false
		}
		cur = next
	}
	return path, true
}

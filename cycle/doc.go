// Package cycle searches a bin's survivor edges for a 42-edge simple cycle.
//
// The survivor set is small by construction (trimming has already removed
// every edge that cannot participate in a cycle whose endpoints both have
// degree >= 2), so the search builds one adjacency map once — by_u, edge
// positions keyed by their U node; no by_v map is built — and performs a
// depth-limited, budget-capped DFS from each candidate start edge.
package cycle

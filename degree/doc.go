// Package degree tallies per-node degrees on both sides of a bin's edges,
// without ever materializing the edges themselves.
//
// Per spec §9 ("Dynamic mappings → compact structures") and §4.C's O(|bin|)
// memory guarantee, the degree map only ever grows with the nodes a bin's
// edges actually touch: Counts is map-backed and saturates at 2, since the
// trimming engine (package trim) only ever asks "is this degree > 1?".
// This is what makes the bin count (package partition) an actual
// memory-tradeoff knob rather than a cosmetic one — a dense, 2^n-wide
// array would cost the same regardless of how many bins the edge space
// is split into.
package degree

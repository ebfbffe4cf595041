// Package oracle implements the Cuckatoo endpoint oracle: a deterministic,
// keyed hash that maps an edge index and a side (0 or 1) to a node id in
// [0, 2^n).
//
// The oracle is the one cryptographic primitive the rest of the solver
// depends on. It is read-only after construction, so a single *Oracle is
// freely shareable across goroutines without locking.
package oracle

package solve

import "errors"

// ErrUnsupportedN indicates an N outside the reference set {27, 29, 31}.
var ErrUnsupportedN = errors.New("solve: n must be one of 27, 29, 31")

// ErrBinCountTooLow indicates a K below the minimum of 2 bins (spec §4.B:
// a single bin degenerates the bin/trim tradeoff into the naive solver).
var ErrBinCountTooLow = errors.New("solve: k (bin count) must be >= 2")

// ErrUnsupportedThreads indicates a thread count outside {1, 2, 4, 8}.
var ErrUnsupportedThreads = errors.New("solve: threads must be one of 1, 2, 4, 8")

// ErrNegativeMaxAttempts indicates a max-attempts value below zero.
var ErrNegativeMaxAttempts = errors.New("solve: max attempts must be >= 0")

// ErrBadHeaderLength indicates a header byte slice that is not exactly 32
// bytes, surfaced by NewConfigFromBytes.
var ErrBadHeaderLength = errors.New("solve: header must be exactly 32 bytes")

// ErrDegreeSumMismatch is an InternalInvariant-class error (spec §7): the
// bin sizes partition.Size computes for a given (N, K) must sum to
// exactly 2^N (every edge belongs to exactly one bin, spec property 9).
// This is checked once per Solve call before any attempt runs; a failure
// here means partition.Resolve/partition.Size disagree with each other,
// not that the puzzle is unsolvable.
var ErrDegreeSumMismatch = errors.New("solve: internal invariant violated: bin sizes do not sum to 2^n")

// ErrRoundsTooLow indicates a trimming round count below one. It is this
// package's own sentinel, distinct from trim.ErrRoundsTooLow, so callers
// configuring solve.Config see a single error surface without reaching
// into package trim directly.
var ErrRoundsTooLow = errors.New("solve: rounds must be >= 1")

// ErrOracleRecheckFailed is an InternalInvariant-class error (spec §7): it
// fires only if attempt.Run reports a found cycle that this package's own
// defensive verify.Cycle recheck, against the very same header/oracle used
// to find it, then rejects. This should be unreachable; surfacing it as a
// hard error rather than silently retrying is deliberate, since it would
// indicate a bug in the cycle/trim/degree pipeline rather than bad luck.
var ErrOracleRecheckFailed = errors.New("solve: internal invariant violated: found cycle failed independent recheck")

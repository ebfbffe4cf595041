package oracle

import "errors"

// ErrBadHeaderLength indicates a header slice that is not exactly 32 bytes.
// Callers MUST check with errors.Is, not string comparison.
var ErrBadHeaderLength = errors.New("oracle: header must be exactly 32 bytes")

// ErrUnsupportedN indicates an n outside the range the caller's contract
// promises to honor. The oracle itself tolerates any n in [MinN, MaxN] and
// never returns it; package solve reports its own solve.ErrUnsupportedN
// for n outside {27, 29, 31}.
var ErrUnsupportedN = errors.New("oracle: unsupported n")

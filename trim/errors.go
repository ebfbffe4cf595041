package trim

import "errors"

// ErrRoundsTooLow indicates a caller asked for fewer than one trimming
// round. The contract (spec §4.D) admits any R >= 1.
var ErrRoundsTooLow = errors.New("trim: rounds must be >= 1")

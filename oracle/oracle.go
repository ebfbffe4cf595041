package oracle

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// MinN and MaxN bound the supported node-space exponents. The reference
// sizes are 27, 29 and 31; the oracle itself is correct for any n in
// [1, 32] (Endpoint returns a uint32), but the solver only ever asks for
// these three.
const (
	MinN = 1
	MaxN = 32
)

// Endpointer is the single capability the rest of the solver needs from a
// hash oracle: map (edge index, side, n) to a node id. Keeping the pipeline
// (degree, trim, cycle, attempt) coded against this interface rather than
// *Oracle lets an alternate oracle — e.g. the SipHash-2-4 variant in
// internal/siphashoracle — be substituted without touching those packages.
type Endpointer interface {
	// Endpoint returns the node id for edge index e on the given side,
	// restricted to [0, 2^n).
	Endpoint(e uint64, side uint8, n uint8) uint32
}

// Oracle is the default, bit-exact BLAKE2b endpoint oracle.
//
// Algorithm (fixed, for interop with any reference verifier): compute a
// keyed BLAKE2b digest of 16 bytes with key = header, message = the
// little-endian 8-byte edge index followed by a single side byte (masked
// to its low bit). The first 8 bytes of the digest, read little-endian,
// are masked to n bits.
type Oracle struct {
	key [32]byte
}

// New constructs an Oracle keyed by header. The header is copied; mutating
// the caller's slice afterward has no effect on the oracle.
func New(header [32]byte) *Oracle {
	return &Oracle{key: header}
}

// NewFromBytes is a convenience constructor for callers holding a header as
// a slice (e.g. freshly hex-decoded by a CLI). It returns an error rather
// than panicking on the wrong length, matching this repository's "never
// panic on caller input" convention.
func NewFromBytes(header []byte) (*Oracle, error) {
	if len(header) != 32 {
		return nil, fmt.Errorf("oracle: header must be 32 bytes, got %d: %w", len(header), ErrBadHeaderLength)
	}
	var h [32]byte
	copy(h[:], header)
	return New(h), nil
}

// Endpoint returns H(e, side) & ((1<<n) - 1).
//
// Complexity: two BLAKE2b compressions, one over the padded key block and
// one over the 9-byte message block. Safe for
// concurrent use: the oracle holds no mutable state past construction.
func (o *Oracle) Endpoint(e uint64, side uint8, n uint8) uint32 {
	h, err := blake2b.New(16, o.key[:])
	if err != nil {
		// Only possible if the key length is invalid, which New forbids
		// by construction (key is always exactly 32 bytes).
		panic(fmt.Sprintf("oracle: unreachable blake2b keying failure: %v", err))
	}

	var msg [9]byte
	binary.LittleEndian.PutUint64(msg[:8], e)
	msg[8] = side & 1
	_, _ = h.Write(msg[:])

	digest := h.Sum(nil)
	x := binary.LittleEndian.Uint64(digest[:8])
	mask := uint64(1)<<uint(n) - 1
	return uint32(x & mask)
}

var _ Endpointer = (*Oracle)(nil)

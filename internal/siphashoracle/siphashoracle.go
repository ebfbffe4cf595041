// Package siphashoracle provides an alternate endpoint oracle built on
// SipHash-2-4 instead of BLAKE2b, exercising the Endpointer abstraction
// boundary spec §9 calls for ("Polymorphic hash... alternative oracles,
// e.g. SipHash-2-4 for reference-client bit-exactness, can be plugged in
// without touching the pipeline").
//
// This is not the solver's default oracle (package oracle's BLAKE2b
// implementation is, per spec §4.A's bit-exact algorithm); it exists for
// interop experiments and is reachable from the bench CLI's
// --oracle=siphash flag.
package siphashoracle

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Oracle is a SipHash-2-4 keyed endpoint oracle. Grounded on
// github.com/dchest/siphash, the SipHash library this corpus's
// dblokhin-gringo Cuckoo/Cuckatoo implementation depends on directly.
type Oracle struct {
	k0, k1 uint64
}

// New derives the two 64-bit SipHash keys from header bytes 0-7 and 8-15
// (little-endian); header bytes 16-31 are not used.
func New(header [32]byte) *Oracle {
	return &Oracle{
		k0: binary.LittleEndian.Uint64(header[0:8]),
		k1: binary.LittleEndian.Uint64(header[8:16]),
	}
}

// Endpoint hashes (edge index, side) with SipHash-2-4 and masks the
// result to n bits, mirroring oracle.Oracle's contract but with a
// different underlying primitive.
func (o *Oracle) Endpoint(e uint64, side uint8, n uint8) uint32 {
	var msg [9]byte
	binary.LittleEndian.PutUint64(msg[:8], e)
	msg[8] = side & 1

	x := siphash.Hash(o.k0, o.k1, msg[:])
	mask := uint64(1)<<uint(n) - 1
	return uint32(x & mask)
}

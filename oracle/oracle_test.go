package oracle_test

import (
	"testing"

	"github.com/cuckatoo/solve/oracle"
	"github.com/stretchr/testify/require"
)

// TestEndpointDeterminism covers spec property 1: repeated calls with the
// same inputs return identical values.
func TestEndpointDeterminism(t *testing.T) {
	var header [32]byte
	for i := range header {
		header[i] = 0x01
	}
	o := oracle.New(header)

	const n = uint8(16)
	const e = uint64(123456)

	u1 := o.Endpoint(e, 0, n)
	v1 := o.Endpoint(e, 1, n)
	u2 := o.Endpoint(e, 0, n)
	v2 := o.Endpoint(e, 1, n)

	require.Equal(t, u1, u2)
	require.Equal(t, v1, v2)
	require.Less(t, u1, uint32(1)<<n)
	require.Less(t, v1, uint32(1)<<n)
}

// TestEndpointBoundedness covers spec property 2 across a spread of edge
// indices and both sides.
func TestEndpointBoundedness(t *testing.T) {
	var header [32]byte
	o := oracle.New(header)

	const n = uint8(20)
	bound := uint32(1) << n
	for e := uint64(0); e < 5000; e += 37 {
		for side := uint8(0); side < 2; side++ {
			got := o.Endpoint(e, side, n)
			require.Less(t, got, bound)
		}
	}
}

// TestEndpointVariesWithHeader guards against a degenerate oracle that
// ignores its key.
func TestEndpointVariesWithHeader(t *testing.T) {
	var h1, h2 [32]byte
	h2[0] = 0xff

	o1 := oracle.New(h1)
	o2 := oracle.New(h2)

	same := 0
	const trials = 64
	for e := uint64(0); e < trials; e++ {
		if o1.Endpoint(e, 0, 24) == o2.Endpoint(e, 0, 24) {
			same++
		}
	}
	require.Less(t, same, trials, "oracle output must depend on the header key")
}

func TestNewFromBytesRejectsBadLength(t *testing.T) {
	_, err := oracle.NewFromBytes(make([]byte, 31))
	require.ErrorIs(t, err, oracle.ErrBadHeaderLength)

	o, err := oracle.NewFromBytes(make([]byte, 32))
	require.NoError(t, err)
	require.NotNil(t, o)
}

func TestSideBitIsMasked(t *testing.T) {
	var header [32]byte
	o := oracle.New(header)
	// side values beyond the low bit must behave identically to their
	// masked counterpart (side & 1).
	require.Equal(t, o.Endpoint(7, 0, 16), o.Endpoint(7, 2, 16))
	require.Equal(t, o.Endpoint(7, 1, 16), o.Endpoint(7, 3, 16))
}

package siphashoracle_test

import (
	"testing"

	"github.com/cuckatoo/solve/internal/siphashoracle"
	"github.com/stretchr/testify/require"
)

func TestEndpointDeterministicAndBounded(t *testing.T) {
	var header [32]byte
	header[0] = 0x7a
	o := siphashoracle.New(header)

	const n = 18
	bound := uint32(1) << n
	for e := uint64(0); e < 200; e++ {
		u1 := o.Endpoint(e, 0, n)
		u2 := o.Endpoint(e, 0, n)
		require.Equal(t, u1, u2)
		require.Less(t, u1, bound)
	}
}

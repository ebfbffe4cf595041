package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	solve "github.com/cuckatoo/solve"
)

func TestResolveOracleDefaultsToBlake2b(t *testing.T) {
	opt, err := resolveOracle("")
	require.NoError(t, err)
	require.Nil(t, opt)

	opt, err = resolveOracle("blake2b")
	require.NoError(t, err)
	require.Nil(t, opt)
}

func TestResolveOracleSiphashReturnsOption(t *testing.T) {
	opt, err := resolveOracle("siphash")
	require.NoError(t, err)
	require.NotNil(t, opt)

	var header [32]byte
	_, err = solve.NewConfig(header, 27, 2, 1, opt)
	require.NoError(t, err)
}

func TestResolveOracleRejectsUnknownName(t *testing.T) {
	_, err := resolveOracle("md5")
	require.Error(t, err)
}

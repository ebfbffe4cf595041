package solve_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	solve "github.com/cuckatoo/solve"
	"github.com/cuckatoo/solve/oracle"
)

// plantedRingOracle plants a genuine 42-edge cycle entirely among even
// edge indices 0, 2, 4, ..., 82, alternating node values 0 and 1 as the
// cycle progresses. Using only even indices means every cycle edge falls
// in bin (e mod 2) == 0 when K == 2, so the cycle survives bin
// partitioning intact rather than being split across bins.
type plantedRingOracle struct{}

func (plantedRingOracle) Endpoint(e uint64, side uint8, n uint8) uint32 {
	if e%2 == 0 && e < 84 {
		i := e / 2
		if i%2 == 0 {
			if side == 0 {
				return 0
			}
			return 1
		}
		if side == 0 {
			return 1
		}
		return 0
	}
	if side == 0 {
		return uint32(2 + (e % 50))
	}
	return uint32(2 + ((e*7 + 3) % 50))
}

func testHeader(b byte) [32]byte {
	var h [32]byte
	for i := range h {
		h[i] = b
	}
	return h
}

func TestSolveFindsPlantedCycle(t *testing.T) {
	cfg, err := solve.NewConfig(testHeader(0x11), 27, 2, 2,
		solve.WithOracle(func([32]byte) oracle.Endpointer { return plantedRingOracle{} }),
		solve.WithMaxAttempts(1),
	)
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Len(t, res.Cycle, 42)
	require.NotEmpty(t, res.BuildInfo["run_id"])
	require.Equal(t, uint64(2), res.Metrics["bins"])
}

type emptyOracle struct{}

func (emptyOracle) Endpoint(e uint64, side uint8, n uint8) uint32 {
	return uint32((e*2 + uint64(side)) % (uint64(1) << n))
}

func TestSolveReportsNoCycleAfterMaxAttempts(t *testing.T) {
	cfg, err := solve.NewConfig(testHeader(0x22), 27, 2, 2,
		solve.WithOracle(func([32]byte) oracle.Endpointer { return emptyOracle{} }),
		solve.WithMaxAttempts(3),
	)
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), cfg)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, uint64(3), res.Metrics["attempts"])
}

func TestSolveRunsAtLeastOneAttemptWithZeroMaxAttempts(t *testing.T) {
	cfg, err := solve.NewConfig(testHeader(0x33), 27, 2, 1,
		solve.WithOracle(func([32]byte) oracle.Endpointer { return emptyOracle{} }),
		solve.WithMaxAttempts(0),
	)
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), cfg)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, uint64(1), res.Metrics["attempts"])
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	cfg, err := solve.NewConfig(testHeader(0x44), 27, 2, 1,
		solve.WithOracle(func([32]byte) oracle.Endpointer { return emptyOracle{} }),
		solve.WithMaxAttempts(0),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := solve.Solve(ctx, cfg)
	require.NoError(t, err)
	require.False(t, res.Found)
}

func TestNewConfigValidatesParameters(t *testing.T) {
	_, err := solve.NewConfig(testHeader(0x01), 28, 2, 2)
	require.ErrorIs(t, err, solve.ErrUnsupportedN)

	_, err = solve.NewConfig(testHeader(0x01), 27, 1, 2)
	require.ErrorIs(t, err, solve.ErrBinCountTooLow)

	_, err = solve.NewConfig(testHeader(0x01), 27, 2, 3)
	require.ErrorIs(t, err, solve.ErrUnsupportedThreads)

	_, err = solve.NewConfig(testHeader(0x01), 27, 2, 2, solve.WithMaxAttempts(-1))
	require.ErrorIs(t, err, solve.ErrNegativeMaxAttempts)

	_, err = solve.NewConfig(testHeader(0x01), 27, 2, 2, solve.WithRounds(0))
	require.ErrorIs(t, err, solve.ErrRoundsTooLow)

	_, err = solve.NewConfigFromBytes(make([]byte, 31), 27, 2, 2)
	require.ErrorIs(t, err, solve.ErrBadHeaderLength)
}

func TestWithTimeBudgetIsAccepted(t *testing.T) {
	cfg, err := solve.NewConfig(testHeader(0x55), 27, 2, 1,
		solve.WithOracle(func([32]byte) oracle.Endpointer { return emptyOracle{} }),
		solve.WithMaxAttempts(1000),
		solve.WithTimeBudget(20*time.Millisecond),
	)
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), cfg)
	require.NoError(t, err)
	require.False(t, res.Found)
	// The budget is only checked between attempts, never mid-attempt, so a
	// 20ms budget against a much slower first attempt still lets that one
	// attempt finish; it just guarantees a second one never starts.
	require.Equal(t, uint64(1), res.Metrics["attempts"])
}

package solve

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/cuckatoo/solve/attempt"
	"github.com/cuckatoo/solve/cycle"
	"github.com/cuckatoo/solve/internal/buildinfo"
	"github.com/cuckatoo/solve/metrics"
	"github.com/cuckatoo/solve/oracle"
	"github.com/cuckatoo/solve/partition"
	"github.com/cuckatoo/solve/verify"
)

// Result is the public envelope Solve returns: whether a cycle was found,
// the cycle itself if so, timing, the stable metrics contract (spec §6)
// and build/platform metadata for reproducibility.
type Result struct {
	Found     bool
	Cycle     []cycle.Edge
	Elapsed   time.Duration
	ElapsedMs float64
	Metrics   map[string]any
	BuildInfo map[string]string
}

// Solve runs the attempt loop described in spec §4.G: call attempt.Run
// repeatedly, checking ctx and the optional time budget between attempts
// (never mid-attempt), until a cycle is found, MaxAttempts attempts have
// run, or the budget is exhausted. At least one attempt always runs, even
// if MaxAttempts is 0 — a zero MaxAttempts means "one attempt, no
// retries", not "no attempts".
func Solve(ctx context.Context, cfg Config) (Result, error) {
	if err := checkBinPartitionInvariant(cfg.N, cfg.K); err != nil {
		return Result{}, err
	}

	start := time.Now()
	deadline := time.Time{}
	if cfg.timeBudget > 0 {
		deadline = start.Add(cfg.timeBudget)
	}

	searchBudget := cfg.searchBudget
	if searchBudget.MaxExpansions <= 0 {
		searchBudget = cycle.Budget{MaxExpansions: cycle.DefaultMaxExpansions}
	}

	var agg metrics.Counters
	agg.Bins = uint64(cfg.K)

	attemptIdx := 0
	for {
		header := cfg.Header
		if cfg.nonceMixing && attemptIdx > 0 {
			header = mixHeader(cfg.Header, attemptIdx)
		}

		var o oracle.Endpointer
		if cfg.oracleFactory != nil {
			o = cfg.oracleFactory(header)
		} else {
			o = oracle.New(header)
		}

		acfg := attempt.Config{
			Bins:         uint32(cfg.K),
			Threads:      cfg.Threads,
			N:            cfg.N,
			Rounds:       cfg.rounds,
			SearchBudget: searchBudget,
		}

		var delta metrics.Counters
		res := attempt.Run(ctx, o, acfg, &delta)
		delta.Attempts++
		agg.Add(delta)
		attemptIdx++

		if res.Found {
			if !verify.WithEndpointer(o, cfg.N, res.Cycle[:]) {
				return Result{}, fmt.Errorf("attempt %d: %w", attemptIdx, ErrOracleRecheckFailed)
			}
			elapsed := time.Since(start)
			agg.Bins = uint64(cfg.K)
			return Result{
				Found:     true,
				Cycle:     append([]cycle.Edge(nil), res.Cycle[:]...),
				Elapsed:   elapsed,
				ElapsedMs: float64(elapsed.Microseconds()) / 1000.0,
				Metrics:   agg.ToMap(),
				BuildInfo: buildinfo.Collect(),
			}, nil
		}

		// MaxAttempts == 0 means "exactly one attempt, no retries" (spec
		// §4.G: at least one attempt always runs); any positive value caps
		// the total attempt count at that value.
		if cfg.MaxAttempts() == 0 || attemptIdx >= cfg.MaxAttempts() {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}

	elapsed := time.Since(start)
	return Result{
		Found:     false,
		Elapsed:   elapsed,
		ElapsedMs: float64(elapsed.Microseconds()) / 1000.0,
		Metrics:   agg.ToMap(),
		BuildInfo: buildinfo.Collect(),
	}, nil
}

// checkBinPartitionInvariant defends against a broken partition.Size/Bin
// pairing: the sizes partition.Size reports for every bin in [0, K) must
// sum to exactly 2^N, since partition.Bin assigns each of the 2^N edges to
// exactly one bin (spec property 9). This is algebraic and should never
// fail; it runs once per Solve call rather than per attempt.
func checkBinPartitionInvariant(n uint8, k int) error {
	total := uint64(1) << n
	resolved := partition.Resolve(k)

	var sum uint64
	for b := uint32(0); b < resolved; b++ {
		sum += partition.Size(total, resolved, b)
	}
	if sum != total {
		return fmt.Errorf("solve: bins sum to %d, want %d: %w", sum, total, ErrDegreeSumMismatch)
	}
	return nil
}

// mixHeader derives attempt i's sub-header as BLAKE2b-256(header ||
// attempt_index), the nonce-mixing resolution of spec §9's open question
// (see SPEC_FULL.md design note D1). Attempt 0 always uses the header
// unmodified, so a caller with NonceMixing off and one with it on agree
// on the first attempt.
func mixHeader(header [32]byte, attemptIdx int) [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("solve: unreachable blake2b construction failure: %v", err))
	}
	_, _ = h.Write(header[:])
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], uint64(attemptIdx))
	_, _ = h.Write(idx[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

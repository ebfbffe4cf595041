package attempt

import (
	"context"
	"sync"

	"github.com/cuckatoo/solve/cycle"
	"github.com/cuckatoo/solve/degree"
	"github.com/cuckatoo/solve/metrics"
	"github.com/cuckatoo/solve/oracle"
	"github.com/cuckatoo/solve/trim"
)

// Config configures one attempt: the bin count, worker count, node-space
// exponent, trimming round count and cycle-search expansion budget.
type Config struct {
	Bins         uint32
	Threads      int
	N            uint8
	Rounds       int
	SearchBudget cycle.Budget
}

// Result is the outcome of one attempt.
type Result struct {
	Found bool
	Cycle [cycle.Length]cycle.Edge
}

// workerCount returns min(bins, threads), floored at 1, per spec §4.F.
func workerCount(bins uint32, threads int) int {
	if threads < 1 {
		threads = 1
	}
	if uint32(threads) > bins {
		return int(bins)
	}
	return threads
}

// Run drives one attempt: workers pull bin indices from a shared channel
// (work-stealing, spec §4.F/§9 — "avoid spawning one worker per bin when
// bins >> threads") and each runs degree.Count -> trim.Run -> cycle.Search
// on its bin. The first bin to report a cycle wins; per-worker metrics
// deltas are merged into m at join.
func Run(ctx context.Context, o oracle.Endpointer, cfg Config, m *metrics.Counters) Result {
	bins := make(chan uint32, cfg.Bins)
	for b := uint32(0); b < cfg.Bins; b++ {
		bins <- b
	}
	close(bins)

	var (
		once     sync.Once
		result   Result
		mu       sync.Mutex
		wg       sync.WaitGroup
		workerID = workerCount(cfg.Bins, cfg.Threads)
	)

	for w := 0; w < workerID; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local metrics.Counters

			for binIdx := range bins {
				select {
				case <-ctx.Done():
					mergeAndReset(m, &mu, &local)
					return
				default:
				}

				found, cyc, faulted := processBin(ctx, o, binIdx, cfg, &local)
				if faulted {
					local.WorkerFaults++
					continue
				}
				if found {
					once.Do(func() {
						result = Result{Found: true, Cycle: cyc}
					})
					mergeAndReset(m, &mu, &local)
					return
				}
			}
			mergeAndReset(m, &mu, &local)
		}()
	}

	wg.Wait()
	return result
}

// processBin runs the C->D->E sweep for a single bin. faulted reports a
// WorkerFault (spec §7): a context cancellation or internal error that
// isolates this bin without aborting the attempt.
func processBin(ctx context.Context, o oracle.Endpointer, binIdx uint32, cfg Config, local *metrics.Counters) (found bool, cyc [cycle.Length]cycle.Edge, faulted bool) {
	defer func() {
		if r := recover(); r != nil {
			faulted = true
		}
	}()

	degU, degV := degree.Count(ctx, o, binIdx, cfg.Bins, cfg.N, local)
	survivors, err := trim.Run(ctx, o, binIdx, cfg.Bins, cfg.N, degU, degV, cfg.Rounds, local)
	if err != nil {
		return false, cyc, true
	}

	res := cycle.Search(survivors, cfg.SearchBudget)
	if res.BudgetExhausted {
		local.SearchBudgetHits++
	}
	return res.Found, res.Path, false
}

func mergeAndReset(m *metrics.Counters, mu *sync.Mutex, local *metrics.Counters) {
	mu.Lock()
	m.Add(*local)
	mu.Unlock()
	*local = metrics.Counters{}
}

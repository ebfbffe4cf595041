// Command cuckatoo-solve runs the tradeoff solver against a single header
// and prints the result envelope as JSON, mirroring the reference
// implementation's cli.py front-end.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	solve "github.com/cuckatoo/solve"
	"github.com/cuckatoo/solve/internal/headerhex"
	"github.com/cuckatoo/solve/internal/obslog"
	"github.com/cuckatoo/solve/verify"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cuckatoo-solve", flag.ContinueOnError)
	var (
		n            = fs.Uint("n", 27, "node-space exponent: 27, 29 or 31")
		k            = fs.Int("k", 2, "bin count (>= 2)")
		threads      = fs.Int("threads", 1, "worker threads: 1, 2, 4 or 8")
		attempts     = fs.Int("attempts", 1, "max attempts (0 = exactly one)")
		timeBudgetMs = fs.Int("time_budget_ms", 0, "wall-clock budget in milliseconds (0 = unbounded)")
		nonceMixing  = fs.Bool("nonce_mixing", false, "derive a distinct sub-header per attempt")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: cuckatoo-solve [flags] <header-hex>")
	}

	log := obslog.New()

	header, err := headerhex.Parse(fs.Arg(0))
	if err != nil {
		return err
	}

	opts := []solve.Option{solve.WithMaxAttempts(*attempts)}
	if *timeBudgetMs > 0 {
		opts = append(opts, solve.WithTimeBudget(time.Duration(*timeBudgetMs)*time.Millisecond))
	}
	if *nonceMixing {
		opts = append(opts, solve.WithNonceMixing(true))
	}

	cfg, err := solve.NewConfig(header, uint8(*n), *k, *threads, opts...)
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"n": *n, "k": *k, "threads": *threads, "attempts": *attempts,
	}).Info("starting solve")

	res, err := solve.Solve(context.Background(), cfg)
	if err != nil {
		return err
	}

	out := map[string]any{
		"found":      res.Found,
		"cycle":      res.Cycle,
		"elapsed_ms": res.ElapsedMs,
		"metrics":    res.Metrics,
		"build_info": res.BuildInfo,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	if res.Found {
		ok := verify.Cycle(header, uint8(*n), res.Cycle)
		fmt.Printf("verify: %v\n", ok)
		if !ok {
			log.Error("solver reported a cycle that failed independent verification")
		}
	}
	return nil
}

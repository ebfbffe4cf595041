// Command cuckatoo-bench compares the solver's elapsed time against the
// lean-trimming baseline table, mirroring the reference implementation's
// scripts/bench.py.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	solve "github.com/cuckatoo/solve"
	"github.com/cuckatoo/solve/internal/headerhex"
	"github.com/cuckatoo/solve/internal/obslog"
	"github.com/cuckatoo/solve/internal/siphashoracle"
	"github.com/cuckatoo/solve/oracle"
)

type baselineKey struct {
	n       int
	threads int
}

func loadBaseline(path string) (map[baselineKey]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("cuckatoo-bench: baseline file %s has no header row", path)
	}

	tbl := make(map[baselineKey]float64, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		n, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("cuckatoo-bench: bad n column %q: %w", row[0], err)
		}
		threads, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("cuckatoo-bench: bad threads column %q: %w", row[1], err)
		}
		tlean, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("cuckatoo-bench: bad T_lean_ms column %q: %w", row[2], err)
		}
		tbl[baselineKey{n, threads}] = tlean
	}
	return tbl, nil
}

// resolveOracle maps the --oracle flag value to the oracle factory Config
// should use. "" and "blake2b" both mean the default (omit the option
// entirely, letting solve.NewConfig apply its own default); "siphash"
// wires in the SipHash-2-4 alternate oracle (spec §9's "polymorphic
// hash... alternative oracles" note).
func resolveOracle(name string) (solve.Option, error) {
	switch name {
	case "", "blake2b":
		return nil, nil
	case "siphash":
		return solve.WithOracle(func(header [32]byte) oracle.Endpointer {
			return siphashoracle.New(header)
		}), nil
	default:
		return nil, fmt.Errorf("cuckatoo-bench: unknown --oracle %q (want blake2b or siphash)", name)
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cuckatoo-bench", flag.ContinueOnError)
	var (
		headerHex  = fs.String("header", "0000000000000000000000000000000000000000000000000000000000000000", "32-byte header hex (default: all zero)")
		n          = fs.Int("n", 27, "node-space exponent: 27, 29 or 31")
		k          = fs.Int("k", 2, "bin count (>= 2)")
		threads    = fs.Int("threads", 1, "worker threads: 1, 2, 4 or 8")
		attempts   = fs.Int("attempts", 3, "max attempts")
		baseline   = fs.String("baseline", "baseline/baseline_lean.csv", "path to baseline CSV")
		oracleFlag = fs.String("oracle", "blake2b", "endpoint oracle: blake2b or siphash")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	oracleOpt, err := resolveOracle(*oracleFlag)
	if err != nil {
		return err
	}

	log := obslog.New()

	header, err := headerhex.Parse(*headerHex)
	if err != nil {
		return err
	}

	tbl, err := loadBaseline(*baseline)
	if err != nil {
		log.WithError(err).Warn("running without a baseline table")
		tbl = map[baselineKey]float64{}
	}

	opts := []solve.Option{solve.WithMaxAttempts(*attempts)}
	if oracleOpt != nil {
		opts = append(opts, oracleOpt)
	}

	cfg, err := solve.NewConfig(header, uint8(*n), *k, *threads, opts...)
	if err != nil {
		return err
	}

	res, err := solve.Solve(context.Background(), cfg)
	if err != nil {
		return err
	}

	if tlean, ok := tbl[baselineKey{*n, *threads}]; ok {
		allowed := 10 * float64(*k) * tlean
		fmt.Printf("Elapsed %.1f ms; Allowed <= %.1f ms vs baseline %.1f ms\n", res.ElapsedMs, allowed, tlean)
	} else {
		fmt.Printf("Elapsed %.1f ms (no baseline for n=%d threads=%d)\n", res.ElapsedMs, *n, *threads)
	}
	fmt.Printf("found=%v metrics=%v\n", res.Found, res.Metrics)
	return nil
}

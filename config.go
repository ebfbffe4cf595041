package solve

import (
	"fmt"
	"time"

	"github.com/cuckatoo/solve/cycle"
	"github.com/cuckatoo/solve/oracle"
	"github.com/cuckatoo/solve/trim"
)

// supportedN and supportedThreads enumerate the reference parameter sets
// (spec §2/§9). N is restricted to the three Cuckatoo sizes the verifier
// and any interoperating reference client agree on; Threads is restricted
// to powers of two up to 8, matching the reference benchmark harness's
// thread sweep.
var (
	supportedN       = map[uint8]bool{27: true, 29: true, 31: true}
	supportedThreads = map[int]bool{1: true, 2: true, 4: true, 8: true}
)

// defaultMaxAttempts matches the Python reference CLI's own default
// (argparse "--attempts", default=1): a single attempt unless the caller
// asks for more via WithMaxAttempts.
const defaultMaxAttempts = 1

// Config is the immutable configuration for one Solve call. Header, N, K
// and Threads are constructor arguments, not options, following this
// module's convention that anything without a sane zero-value default is
// mandatory; everything else is a functional Option.
type Config struct {
	Header  [32]byte
	N       uint8
	K       int
	Threads int

	maxAttempts   int
	timeBudget    time.Duration
	nonceMixing   bool
	oracleFactory func([32]byte) oracle.Endpointer
	rounds        int
	searchBudget  cycle.Budget
}

// MaxAttempts reports the resolved attempt ceiling (0 means "exactly one
// attempt, no retries" per spec §4.G).
func (c Config) MaxAttempts() int { return c.maxAttempts }

// Option configures optional Config fields beyond the constructor's
// required parameters.
type Option func(*Config)

// WithMaxAttempts bounds how many attempts Solve will run. 0 means "run
// exactly one attempt regardless" (spec §4.G: at least one attempt always
// runs); the default, if this option is never supplied, is 1.
func WithMaxAttempts(n int) Option {
	return func(c *Config) { c.maxAttempts = n }
}

// WithTimeBudget bounds wall-clock time across the whole Solve call (spec
// §4.G). Zero (the default) means unbounded: Solve runs until MaxAttempts
// is exhausted or a cycle is found.
func WithTimeBudget(d time.Duration) Option {
	return func(c *Config) { c.timeBudget = d }
}

// WithNonceMixing enables per-attempt header derivation (spec §9, Open
// Question "nonce/mixing": resolved as deriving attempt i's sub-header as
// BLAKE2b(header || attempt_index) so repeated attempts explore distinct
// regions of the edge space instead of recomputing the same oracle).
func WithNonceMixing(enabled bool) Option {
	return func(c *Config) { c.nonceMixing = enabled }
}

// WithOracle overrides the default BLAKE2b endpoint oracle (package
// oracle) with an alternate Endpointer constructor, e.g.
// siphashoracle.New, for interop experiments (spec §9's "polymorphic
// hash" note).
func WithOracle(factory func([32]byte) oracle.Endpointer) Option {
	return func(c *Config) { c.oracleFactory = factory }
}

// WithRounds overrides the per-attempt trimming round count. Defaults to
// trim.DefaultRounds.
func WithRounds(rounds int) Option {
	return func(c *Config) { c.rounds = rounds }
}

// WithSearchBudget overrides the per-bin cycle search expansion budget.
// Defaults to cycle.DefaultMaxExpansions.
func WithSearchBudget(budget cycle.Budget) Option {
	return func(c *Config) { c.searchBudget = budget }
}

// NewConfig validates and constructs a Config. header is the 32-byte
// puzzle header, n is the node-space exponent (must be 27, 29 or 31), k
// is the bin count (must be >= 2), and threads is the worker count (must
// be one of 1, 2, 4, 8).
func NewConfig(header [32]byte, n uint8, k int, threads int, opts ...Option) (Config, error) {
	if !supportedN[n] {
		return Config{}, ErrUnsupportedN
	}
	if k < 2 {
		return Config{}, ErrBinCountTooLow
	}
	if !supportedThreads[threads] {
		return Config{}, ErrUnsupportedThreads
	}

	cfg := Config{
		Header:      header,
		N:           n,
		K:           k,
		Threads:     threads,
		maxAttempts: defaultMaxAttempts,
		rounds:      trim.DefaultRounds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxAttempts < 0 {
		return Config{}, ErrNegativeMaxAttempts
	}
	if cfg.rounds < 1 {
		return Config{}, ErrRoundsTooLow
	}
	return cfg, nil
}

// NewConfigFromBytes is a convenience constructor for callers holding a
// header as a slice (e.g. freshly hex-decoded by a CLI), returning
// ErrBadHeaderLength rather than panicking on the wrong length.
func NewConfigFromBytes(header []byte, n uint8, k int, threads int, opts ...Option) (Config, error) {
	if len(header) != 32 {
		return Config{}, fmt.Errorf("solve: header must be 32 bytes, got %d: %w", len(header), ErrBadHeaderLength)
	}
	var h [32]byte
	copy(h[:], header)
	return NewConfig(h, n, k, threads, opts...)
}

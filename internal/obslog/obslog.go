// Package obslog centralizes the structured logging used by the cmd/
// front-ends, following the same logrus-based logging this corpus's
// Cuckoo/Cuckatoo proof-of-work code uses (see the gringo consensus
// package's block-validation logging).
package obslog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logrus.Logger configured for the solve/bench CLIs: text
// formatting with full timestamps to stderr, so stdout stays free for the
// result envelope (JSON or CSV) the harness emits.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

// Package policy holds the retry configuration and the builder that
// validates it.
package policy

import (
	"time"

	"github.com/reprise-io/reprise/backoff"
	"github.com/reprise-io/reprise/classify"
)

// Config parametrizes one executor: the retry budget, the base delay between
// tries, the backoff strategy that shapes it, and the error-classification
// policy.
//
// Build a Config through a Builder. Once built it holds no per-call state
// and is safe to share across sequential executions.
type Config struct {
	MaxTries   int
	Delay      time.Duration
	Backoff    backoff.Strategy
	Classifier classify.Classifier
}

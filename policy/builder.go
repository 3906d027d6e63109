package policy

import (
	"fmt"
	"time"

	"github.com/reprise-io/reprise/backoff"
	"github.com/reprise-io/reprise/classify"
)

// Builder accumulates configuration choices and materializes a validated
// Config.
//
// Exactly one backoff strategy and one classification policy may be chosen;
// a second choice of either kind is a configuration error. MaxTries and
// DelayBetweenTries are last-write-wins. Because a fluent chain cannot fail
// mid-call, rule violations are recorded and surface from Build, first
// violation wins.
type Builder struct {
	cfg Config

	triesSet      bool
	delaySet      bool
	backoffSet    bool
	classifierSet bool

	validate bool
	err      error
}

// NewBuilder returns a builder with validation enabled.
func NewBuilder() *Builder {
	return &Builder{validate: true}
}

// NewUnvalidatedBuilder returns a builder that skips every validation rule,
// for advanced callers assembling partial configs.
func NewUnvalidatedBuilder() *Builder {
	return &Builder{}
}

// RetryOnAny retries every failure.
func (b *Builder) RetryOnAny() *Builder {
	return b.setClassifier(classify.RetryAny{})
}

// FailOnAny treats the first failure as terminal.
func (b *Builder) FailOnAny() *Builder {
	return b.setClassifier(classify.FailAny{})
}

// RetryOn retries only failures matching one of kinds (see classify.On for
// the matching rule).
func (b *Builder) RetryOn(kinds ...error) *Builder {
	return b.setClassifier(classify.On(kinds...))
}

// WithClassifier chooses an arbitrary classification policy.
func (b *Builder) WithClassifier(c classify.Classifier) *Builder {
	return b.setClassifier(c)
}

// MaxTries sets the retry budget: the maximum number of attempts per
// execution.
func (b *Builder) MaxTries(n int) *Builder {
	b.cfg.MaxTries = n
	b.triesSet = true
	return b
}

// DelayBetweenTries sets the base delay handed to the backoff strategy.
func (b *Builder) DelayBetweenTries(d time.Duration) *Builder {
	b.cfg.Delay = d
	b.delaySet = true
	return b
}

// WithBackoff chooses an arbitrary backoff strategy.
func (b *Builder) WithBackoff(s backoff.Strategy) *Builder {
	return b.setBackoff(s)
}

func (b *Builder) NoWaitBackoff() *Builder            { return b.setBackoff(backoff.NoWait{}) }
func (b *Builder) FixedBackoff() *Builder             { return b.setBackoff(backoff.Fixed{}) }
func (b *Builder) ExponentialBackoff() *Builder       { return b.setBackoff(backoff.Exponential{}) }
func (b *Builder) FibonacciBackoff() *Builder         { return b.setBackoff(backoff.Fibonacci{}) }
func (b *Builder) RandomBackoff() *Builder            { return b.setBackoff(backoff.Random{}) }
func (b *Builder) RandomExponentialBackoff() *Builder { return b.setBackoff(backoff.RandomExponential{}) }

// Build validates the accumulated choices and returns the Config.
//
// With validation disabled, the accumulated fields are returned as-is. When
// no classification policy was chosen the original fail-on-any behavior is
// preserved as the default.
func (b *Builder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}

	if b.validate {
		if !b.backoffSet || b.cfg.Backoff == nil {
			return Config{}, ErrNoBackoff
		}
		if !b.triesSet {
			return Config{}, ErrNoMaxTries
		}
		if b.cfg.MaxTries < 1 {
			return Config{}, fmt.Errorf("%w: got %d, want a positive count", ErrNoMaxTries, b.cfg.MaxTries)
		}
		if !b.delaySet {
			return Config{}, ErrNoDelay
		}
		if b.cfg.Delay < 0 {
			return Config{}, fmt.Errorf("%w: got %v, want a non-negative duration", ErrNoDelay, b.cfg.Delay)
		}
	}

	cfg := b.cfg
	if cfg.Classifier == nil {
		cfg.Classifier = classify.FailAny{}
	}
	return cfg, nil
}

func (b *Builder) setClassifier(c classify.Classifier) *Builder {
	if b.validate && b.classifierSet {
		b.fail(ErrDuplicateClassifier)
		return b
	}
	b.cfg.Classifier = c
	b.classifierSet = true
	return b
}

func (b *Builder) setBackoff(s backoff.Strategy) *Builder {
	if b.validate && b.backoffSet {
		b.fail(ErrDuplicateBackoff)
		return b
	}
	b.cfg.Backoff = s
	b.backoffSet = true
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

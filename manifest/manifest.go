// Package manifest maps declarative retry definitions onto validated
// configs, the way an annotation or attribute layer would in other
// ecosystems. The core executor never depends on it.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/reprise-io/reprise/backoff"
	"github.com/reprise-io/reprise/classify"
	"github.com/reprise-io/reprise/policy"
)

var (
	ErrUnknownTimeUnit = errors.New("reprise: unknown time unit")
	ErrUnknownBackoff  = errors.New("reprise: unknown backoff selector")
	ErrUnknownKind     = errors.New("reprise: unknown failure kind")
)

// Definition is a declarative retry description, typically decoded from
// JSON. Kind names in RetryOn resolve against a classify.KindRegistry;
// the Backoff selector resolves against a backoff.Registry.
type Definition struct {
	Name     string `json:"name"`
	MaxTries int    `json:"max_tries"`
	Delay    int64  `json:"delay"`

	// TimeUnit scales Delay: "ms", "s" (default), or "m".
	TimeUnit string `json:"time_unit,omitempty"`

	// RetryOn lists the failure kinds that stay retryable. Empty means
	// retry on any failure.
	RetryOn []string `json:"retry_on,omitempty"`

	// Backoff selects the strategy by name. Empty means "fixed".
	Backoff string `json:"backoff,omitempty"`
}

// Config materializes the definition through the policy builder. The
// Backoff selector is honored, never silently replaced with a default
// strategy. Nil registries fall back to the built-in ones.
func (d Definition) Config(kinds *classify.KindRegistry, strategies *backoff.Registry) (policy.Config, error) {
	if kinds == nil {
		kinds = classify.BuiltinKinds()
	}
	if strategies == nil {
		strategies = backoff.Builtins()
	}

	unit, err := parseTimeUnit(d.TimeUnit)
	if err != nil {
		return policy.Config{}, err
	}

	selector := d.Backoff
	if selector == "" {
		selector = backoff.SelectorFixed
	}
	strategy, ok := strategies.Get(selector)
	if !ok {
		return policy.Config{}, fmt.Errorf("%w: %q", ErrUnknownBackoff, selector)
	}

	b := policy.NewBuilder().
		MaxTries(d.MaxTries).
		DelayBetweenTries(time.Duration(d.Delay) * unit).
		WithBackoff(strategy)

	if len(d.RetryOn) == 0 {
		b.RetryOnAny()
	} else {
		targets := make([]error, 0, len(d.RetryOn))
		for _, name := range d.RetryOn {
			kind, ok := kinds.Get(name)
			if !ok {
				return policy.Config{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
			}
			targets = append(targets, kind)
		}
		b.RetryOn(targets...)
	}

	return b.Build()
}

// Load decodes a JSON array of definitions.
func Load(r io.Reader) ([]Definition, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var defs []Definition
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("reprise: decode manifest: %w", err)
	}
	return defs, nil
}

func parseTimeUnit(unit string) (time.Duration, error) {
	switch unit {
	case "", "s":
		return time.Second, nil
	case "ms":
		return time.Millisecond, nil
	case "m":
		return time.Minute, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTimeUnit, unit)
	}
}

package policy

import "errors"

// Configuration errors reported by Builder.Build. They are raised at build
// time, never during execution.
var (
	ErrNoBackoff  = errors.New("reprise: config must specify a backoff strategy")
	ErrNoMaxTries = errors.New("reprise: config must specify a maximum number of tries")
	ErrNoDelay    = errors.New("reprise: config must specify the delay between tries")

	ErrDuplicateBackoff    = errors.New("reprise: config cannot specify more than one backoff strategy")
	ErrDuplicateClassifier = errors.New("reprise: config cannot specify more than one error-classification policy")
)

package retry

import (
	"errors"
	"fmt"

	"github.com/reprise-io/reprise/call"
)

var (
	// ErrRetriesExhausted is matched by errors.Is against ExhaustedError.
	ErrRetriesExhausted = errors.New("reprise: retries exhausted")

	// ErrUnexpected is matched by errors.Is against UnexpectedError.
	ErrUnexpected = errors.New("reprise: unexpected failure")

	// ErrUnknownListener is returned when RegisterListener receives a value
	// that satisfies no recognized hook kind.
	ErrUnknownListener = errors.New("reprise: unrecognized listener")
)

// ExhaustedError reports that the retry budget was consumed without success.
// It carries the final Results so callers can diagnose attempt count and
// elapsed time.
type ExhaustedError struct {
	Results *call.Results
	Err     error // last attempt failure
}

func (e *ExhaustedError) Error() string {
	name, tries := "", 0
	if e.Results != nil {
		name, tries = e.Results.CallName, e.Results.TotalTries
	}
	return fmt.Sprintf("reprise: call %q failed after %d tries", name, tries)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

func (e *ExhaustedError) Is(target error) bool { return target == ErrRetriesExhausted }

// UnexpectedError reports a failure whose kind the classification policy
// declared unretryable. It propagates immediately, without further attempts.
// Results holds whatever was accumulated before the terminal failure; it is
// attached for diagnostics only and was never returned to the caller.
type UnexpectedError struct {
	Results *call.Results
	Reason  string
	Err     error
}

func (e *UnexpectedError) Error() string {
	name := ""
	if e.Results != nil {
		name = e.Results.CallName
	}
	return fmt.Sprintf("reprise: call %q failed with an unretryable error: %v", name, e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

func (e *UnexpectedError) Is(target error) bool { return target == ErrUnexpected }

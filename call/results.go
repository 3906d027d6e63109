// Package call carries the telemetry of a single retried execution and the
// listener hooks an executor fires around retries.
package call

import "time"

// Attempt describes a single invocation of the wrapped operation.
type Attempt struct {
	Number    int // 1-indexed
	StartTime time.Time
	EndTime   time.Time
	Err       error

	// Wait is the backoff applied after this attempt. Zero on the final
	// attempt and on success.
	Wait time.Duration
}

// Results is the telemetry record of one execution: timing, attempt count,
// outcome, and the captured return value.
//
// A Results instance belongs exclusively to the execution that created it.
// The driving executor is the only writer; listeners and callers must treat
// it as read-only and must not retain it past the call.
type Results struct {
	// ID uniquely identifies this execution for log and metric correlation.
	ID string

	// CallName is the diagnostic label for the wrapped operation.
	CallName string

	StartTime    time.Time
	EndTime      time.Time
	TotalElapsed time.Duration

	// TotalTries is the number of attempts consumed so far, 1-indexed.
	TotalTries int

	Succeeded bool

	// Value is the operation's return value. Set only on success.
	Value any

	// LastErr is the most recent attempt failure.
	LastErr error

	Attempts []Attempt
}

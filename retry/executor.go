// Package retry drives fallible operations under a retry policy until they
// succeed, the retry budget is exhausted, or an unretryable failure occurs.
package retry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reprise-io/reprise/backoff"
	"github.com/reprise-io/reprise/call"
	"github.com/reprise-io/reprise/classify"
	"github.com/reprise-io/reprise/policy"
)

// Operation is a single fallible unit of work. It must be safe to invoke up
// to the configured retry budget; idempotence is the caller's concern, not
// the executor's.
type Operation func(ctx context.Context) (any, error)

// OperationValue is the typed counterpart of Operation, used by ExecuteValue.
type OperationValue[T any] func(ctx context.Context) (T, error)

// Executor orchestrates the retry loop for one Config.
//
// Attempts of a single execution run strictly in sequence on the calling
// goroutine; the only suspension point is the inter-attempt wait. An
// Executor holds per-call listener state, so it should not serve overlapping
// executions from multiple goroutines unless its listeners are stateless.
type Executor struct {
	config policy.Config

	clock func() time.Time
	sleep func(context.Context, time.Duration)
	newID func() string

	afterFailedTry call.AfterFailedTryListener
	beforeNextTry  call.BeforeNextTryListener
}

// Option configures an Executor.
type Option func(*Executor)

// WithClock sets the time source. Used by tests.
func WithClock(f func() time.Time) Option {
	return func(e *Executor) {
		e.clock = f
	}
}

// WithSleep sets the inter-attempt wait primitive. Used by tests.
func WithSleep(f func(context.Context, time.Duration)) Option {
	return func(e *Executor) {
		e.sleep = f
	}
}

// WithAfterFailedTry sets the hook fired immediately after a retryable
// failure, before the wait.
func WithAfterFailedTry(l call.AfterFailedTryListener) Option {
	return func(e *Executor) {
		e.afterFailedTry = l
	}
}

// WithBeforeNextTry sets the hook fired after the wait, before the next
// attempt.
func WithBeforeNextTry(l call.BeforeNextTryListener) Option {
	return func(e *Executor) {
		e.beforeNextTry = l
	}
}

// NewExecutor creates an Executor for cfg. Partial configs (from an
// unvalidated builder) are normalized: a missing backoff falls back to
// Fixed, a missing classifier to FailAny, a non-positive budget to one try.
func NewExecutor(cfg policy.Config, opts ...Option) *Executor {
	e := &Executor{config: cfg}

	for _, opt := range opts {
		opt(e)
	}

	if e.config.MaxTries < 1 {
		e.config.MaxTries = 1
	}
	if e.config.Delay < 0 {
		e.config.Delay = 0
	}
	if e.config.Backoff == nil {
		e.config.Backoff = backoff.Fixed{}
	}
	if e.config.Classifier == nil {
		e.config.Classifier = classify.FailAny{}
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.sleep == nil {
		e.sleep = waitWithContext
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}

	return e
}

// RegisterListener routes l to the hook slot matching the interfaces it
// satisfies. A listener of a recognized kind replaces any previously
// registered listener of that kind. A value satisfying neither kind is
// rejected with ErrUnknownListener.
func (e *Executor) RegisterListener(l any) error {
	recognized := false
	if a, ok := l.(call.AfterFailedTryListener); ok {
		e.afterFailedTry = a
		recognized = true
	}
	if b, ok := l.(call.BeforeNextTryListener); ok {
		e.beforeNextTry = b
		recognized = true
	}
	if !recognized {
		return ErrUnknownListener
	}
	return nil
}

// Execute invokes op until it succeeds, the budget is exhausted, or a
// failure classifies as terminal. name labels the call in telemetry and
// error messages.
//
// On success the finalized Results are returned. Exhaustion returns an
// *ExhaustedError carrying the final Results; a terminal failure returns an
// *UnexpectedError wrapping the cause.
func (e *Executor) Execute(ctx context.Context, name string, op Operation) (*call.Results, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	maxTries := e.config.MaxTries

	results := &call.Results{
		ID:        e.newID(),
		CallName:  name,
		StartTime: e.clock(),
		Attempts:  make([]call.Attempt, 0, maxTries),
	}

	for attempt := 1; attempt <= maxTries; attempt++ {
		began := e.clock()
		value, err := op(ctx)
		ended := e.clock()

		results.Attempts = append(results.Attempts, call.Attempt{
			Number:    attempt,
			StartTime: began,
			EndTime:   ended,
			Err:       err,
		})

		out := e.config.Classifier.Classify(err)

		if out.Kind == classify.OutcomeSuccess {
			results.Value = value
			e.finalize(results, attempt, true)
			return results, nil
		}

		results.LastErr = err

		if out.Kind != classify.OutcomeRetryable {
			// Terminal failures propagate immediately. No listener fires for
			// this failure and the partial results travel on the error only.
			e.finalize(results, attempt, false)
			return nil, &UnexpectedError{Results: results, Reason: out.Reason, Err: err}
		}

		e.refresh(results, attempt)

		if e.afterFailedTry != nil {
			e.afterFailedTry.AfterFailedTry(ctx, results)
		}

		if attempt == maxTries {
			break
		}

		wait := e.config.Backoff.Delay(attempt, e.config.Delay)
		if wait < 0 {
			wait = 0
		}
		results.Attempts[len(results.Attempts)-1].Wait = wait

		e.sleep(ctx, wait)

		if e.beforeNextTry != nil {
			e.beforeNextTry.BeforeNextTry(ctx, results)
		}
	}

	e.finalize(results, maxTries, false)
	return nil, &ExhaustedError{Results: results, Err: results.LastErr}
}

// ExecuteValue runs op through exec and returns its typed value alongside
// the finalized Results.
func ExecuteValue[T any](ctx context.Context, exec *Executor, name string, op OperationValue[T]) (T, *call.Results, error) {
	var zero T

	results, err := exec.Execute(ctx, name, func(ctx context.Context) (any, error) {
		return op(ctx)
	})
	if err != nil {
		return zero, nil, err
	}

	value, _ := results.Value.(T)
	return value, results, nil
}

// refresh updates the running telemetry after a retryable failure.
func (e *Executor) refresh(results *call.Results, attempt int) {
	results.TotalTries = attempt
	results.TotalElapsed = e.clock().Sub(results.StartTime)
	results.Succeeded = false
}

func (e *Executor) finalize(results *call.Results, tries int, succeeded bool) {
	now := e.clock()
	results.TotalTries = tries
	results.Succeeded = succeeded
	results.EndTime = now
	results.TotalElapsed = now.Sub(results.StartTime)
}

// waitWithContext blocks for d or until ctx is done, whichever comes first.
// Cancellation during the wait is swallowed: the loop proceeds straight to
// the next attempt instead of aborting the retry.
func waitWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

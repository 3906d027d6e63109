package call

import "context"

// AfterFailedTryListener fires immediately after a retryable failure, before
// the backoff wait. It receives the current Results snapshot and must not
// mutate it.
type AfterFailedTryListener interface {
	AfterFailedTry(ctx context.Context, results *Results)
}

// BeforeNextTryListener fires after the backoff wait, immediately before the
// next attempt. It receives the current Results snapshot and must not
// mutate it.
type BeforeNextTryListener interface {
	BeforeNextTry(ctx context.Context, results *Results)
}

// AfterFailedTryFunc adapts a plain function to AfterFailedTryListener.
type AfterFailedTryFunc func(ctx context.Context, results *Results)

func (f AfterFailedTryFunc) AfterFailedTry(ctx context.Context, results *Results) {
	f(ctx, results)
}

// BeforeNextTryFunc adapts a plain function to BeforeNextTryListener.
type BeforeNextTryFunc func(ctx context.Context, results *Results)

func (f BeforeNextTryFunc) BeforeNextTry(ctx context.Context, results *Results) {
	f(ctx, results)
}

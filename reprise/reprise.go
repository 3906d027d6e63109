// Package reprise is the convenience facade over the retry executor: Do and
// DoValue run operations through a shared default executor.
package reprise

import (
	"context"
	"log"
	"sync"

	"github.com/reprise-io/reprise/call"
	"github.com/reprise-io/reprise/policy"
	"github.com/reprise-io/reprise/retry"
)

var (
	defaultExec *retry.Executor
	defaultOnce sync.Once
)

// DefaultExecutor returns the shared, lazily-initialized executor. Unless
// SetDefault installed one, it is backed by the fixed-backoff preset: five
// tries, ten seconds between them, retry on any failure.
func DefaultExecutor() *retry.Executor {
	defaultOnce.Do(func() {
		if defaultExec == nil {
			cfg, err := policy.FixedBackoff5Tries10Sec().Build()
			if err != nil {
				panic(err) // presets always build
			}
			defaultExec = retry.NewExecutor(cfg)
		}
	})
	return defaultExec
}

// SetDefault installs exec as the shared executor. It must be called before
// DefaultExecutor is first used (e.g. at startup). If called after
// initialization, it logs a warning and does nothing.
func SetDefault(exec *retry.Executor) {
	if exec == nil {
		return
	}

	if defaultExec != nil {
		log.Printf("reprise: SetDefault called after the default executor was already initialized; ignoring.")
		return
	}

	defaultOnce.Do(func() {
		defaultExec = exec
	})
}

// Do executes op through the default executor.
func Do(ctx context.Context, name string, op retry.Operation) (*call.Results, error) {
	return DefaultExecutor().Execute(ctx, name, op)
}

// DoValue executes op through the default executor and returns its typed
// value.
func DoValue[T any](ctx context.Context, name string, op retry.OperationValue[T]) (T, *call.Results, error) {
	return retry.ExecuteValue(ctx, DefaultExecutor(), name, op)
}

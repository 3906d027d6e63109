package zaplog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reprise-io/reprise/call"
	"github.com/reprise-io/reprise/policy"
	"github.com/reprise-io/reprise/retry"
)

func newObservedListener(t *testing.T) (*Listener, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return New(zap.New(core)), logs
}

func TestAfterFailedTry_LogsWarnWithFields(t *testing.T) {
	listener, logs := newObservedListener(t)

	cause := errors.New("boom")
	listener.AfterFailedTry(context.Background(), &call.Results{
		ID:         "abc",
		CallName:   "svc.fetch",
		TotalTries: 2,
		LastErr:    cause,
	})

	entries := logs.FilterMessage("try failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "svc.fetch", fields["call"])
	assert.Equal(t, "abc", fields["call_id"])
	assert.EqualValues(t, 2, fields["tries"])
	assert.Equal(t, "boom", fields["error"])
}

func TestBeforeNextTry_LogsDebug(t *testing.T) {
	listener, logs := newObservedListener(t)

	listener.BeforeNextTry(context.Background(), &call.Results{CallName: "svc.fetch"})

	entries := logs.FilterMessage("retrying call").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
}

func TestNew_NilLoggerIsNoop(t *testing.T) {
	listener := New(nil)
	// Must not panic.
	listener.AfterFailedTry(context.Background(), &call.Results{})
	listener.BeforeNextTry(context.Background(), &call.Results{})
}

func TestListener_WiredToExecutor(t *testing.T) {
	listener, logs := newObservedListener(t)

	cfg, err := policy.NewBuilder().
		RetryOnAny().
		MaxTries(3).
		DelayBetweenTries(0).
		NoWaitBackoff().
		Build()
	require.NoError(t, err)

	exec := retry.NewExecutor(cfg)
	require.NoError(t, exec.RegisterListener(listener))

	_, err = exec.Execute(context.Background(), "logged", func(context.Context) (any, error) {
		return nil, errors.New("always")
	})
	require.ErrorIs(t, err, retry.ErrRetriesExhausted)

	// One warn entry per failed try, one debug entry per retry issued.
	assert.Len(t, logs.FilterMessage("try failed").All(), 3)
	assert.Len(t, logs.FilterMessage("retrying call").All(), 2)
}

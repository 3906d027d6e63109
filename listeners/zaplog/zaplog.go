// Package zaplog provides a structured-logging retry listener backed by zap.
package zaplog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/reprise-io/reprise/call"
)

// Listener logs every failed try and every upcoming retry with structured
// fields. It implements both hook kinds, so a single RegisterListener call
// wires it to an executor.
type Listener struct {
	logger *zap.Logger
}

// New creates a Listener. A nil logger is replaced with a no-op one.
func New(logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{logger: logger}
}

// AfterFailedTry logs the failure at warn level, immediately after the
// failed try and before the backoff wait.
func (l *Listener) AfterFailedTry(ctx context.Context, results *call.Results) {
	l.logger.Warn("try failed", append(fields(ctx, results), zap.Error(results.LastErr))...)
}

// BeforeNextTry logs at debug level after the wait, right before the next
// attempt.
func (l *Listener) BeforeNextTry(ctx context.Context, results *call.Results) {
	l.logger.Debug("retrying call", fields(ctx, results)...)
}

// fields builds the common per-call fields. When ctx carries an active
// OpenTelemetry span, trace_id and span_id are appended so logs correlate
// with distributed traces.
func fields(ctx context.Context, results *call.Results) []zap.Field {
	fs := []zap.Field{
		zap.String("call", results.CallName),
		zap.String("call_id", results.ID),
		zap.Int("tries", results.TotalTries),
		zap.Duration("elapsed", results.TotalElapsed),
	}

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			fs = append(fs,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	return fs
}

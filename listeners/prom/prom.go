// Package prom exposes retry telemetry as Prometheus metrics.
package prom

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reprise-io/reprise/call"
)

// Listener counts failed tries and issued retries per call name. It
// implements both hook kinds.
type Listener struct {
	failedTries *prometheus.CounterVec
	retries     *prometheus.CounterVec
}

// New creates a Listener and registers its collectors with reg. A nil
// registerer leaves the collectors unregistered, which is useful in tests.
func New(reg prometheus.Registerer) *Listener {
	l := &Listener{
		failedTries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reprise_failed_tries_total",
			Help: "Failed tries observed per call, including the final one.",
		}, []string{"call"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reprise_retries_total",
			Help: "Retries issued per call, i.e. tries after the first.",
		}, []string{"call"}),
	}

	if reg != nil {
		reg.MustRegister(l.failedTries, l.retries)
	}

	return l
}

func (l *Listener) AfterFailedTry(_ context.Context, results *call.Results) {
	l.failedTries.WithLabelValues(results.CallName).Inc()
}

func (l *Listener) BeforeNextTry(_ context.Context, results *call.Results) {
	l.retries.WithLabelValues(results.CallName).Inc()
}

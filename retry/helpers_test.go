package retry

import (
	"context"
	"sync"
	"time"

	"github.com/reprise-io/reprise/call"
)

// fakeClock advances a fixed step on every reading so elapsed times are
// deterministic.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0), step: step}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// sleepRecorder captures every inter-attempt wait instead of sleeping.
type sleepRecorder struct {
	waits []time.Duration
}

func (s *sleepRecorder) Sleep(_ context.Context, d time.Duration) {
	s.waits = append(s.waits, d)
}

// recordingListener implements both hook kinds and counts invocations.
type recordingListener struct {
	afterFailed []int // TotalTries at each AfterFailedTry
	beforeNext  []int // TotalTries at each BeforeNextTry
}

func (l *recordingListener) AfterFailedTry(_ context.Context, r *call.Results) {
	l.afterFailed = append(l.afterFailed, r.TotalTries)
}

func (l *recordingListener) BeforeNextTry(_ context.Context, r *call.Results) {
	l.beforeNext = append(l.beforeNext, r.TotalTries)
}

// afterOnlyListener implements just the "after failed try" hook.
type afterOnlyListener struct {
	calls int
}

func (l *afterOnlyListener) AfterFailedTry(context.Context, *call.Results) {
	l.calls++
}

package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoWait(t *testing.T) {
	for attempt := 1; attempt <= 10; attempt++ {
		assert.Equal(t, time.Duration(0), NoWait{}.Delay(attempt, 10*time.Second))
	}
}

func TestFixed(t *testing.T) {
	for attempt := 1; attempt <= 10; attempt++ {
		assert.Equal(t, 10*time.Second, Fixed{}.Delay(attempt, 10*time.Second))
	}
	assert.Equal(t, time.Duration(0), Fixed{}.Delay(1, -time.Second))
}

func TestExponential(t *testing.T) {
	cases := []struct {
		attempt int
		base    time.Duration
		want    time.Duration
	}{
		{attempt: 1, base: time.Second, want: time.Second},
		{attempt: 2, base: time.Second, want: 2 * time.Second},
		{attempt: 3, base: time.Second, want: 4 * time.Second},
		{attempt: 6, base: 250 * time.Millisecond, want: 8 * time.Second},
		{attempt: 0, base: time.Second, want: time.Second},
		{attempt: 1, base: 0, want: 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Exponential{}.Delay(tc.attempt, tc.base),
			"attempt=%d base=%v", tc.attempt, tc.base)
	}
}

func TestExponential_Overflow(t *testing.T) {
	got := Exponential{}.Delay(500, time.Hour)
	assert.Equal(t, time.Duration(math.MaxInt64), got)
}

func TestFibonacci(t *testing.T) {
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 1, want: time.Second},
		{attempt: 2, want: time.Second},
		{attempt: 3, want: 2 * time.Second},
		{attempt: 4, want: 3 * time.Second},
		{attempt: 5, want: 5 * time.Second},
		{attempt: 10, want: 55 * time.Second},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Fibonacci{}.Delay(tc.attempt, time.Second), "attempt=%d", tc.attempt)
	}
}

func TestRandom_Range(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 1000; i++ {
		d := Random{}.Delay(1, base)
		require.GreaterOrEqual(t, d, time.Duration(0))
		require.LessOrEqual(t, d, base)
	}
	assert.Equal(t, time.Duration(0), Random{}.Delay(1, 0))
}

func TestRandomExponential_Range(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := 1; attempt <= 5; attempt++ {
		ceiling := base * time.Duration(1<<(attempt-1))
		for i := 0; i < 200; i++ {
			d := RandomExponential{}.Delay(attempt, base)
			require.GreaterOrEqual(t, d, time.Duration(0))
			require.LessOrEqual(t, d, ceiling, "attempt=%d", attempt)
		}
	}
}

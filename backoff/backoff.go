// Package backoff computes the wait duration between retry attempts.
//
// Strategies are pure: they map (attempt, base delay) to a wait duration and
// never sleep themselves. Attempts are 1-indexed.
package backoff

import (
	"math"
	"math/rand"
	"time"
)

// Strategy computes how long to wait after the given attempt before the next
// one. Implementations must be stateless, never return a negative duration,
// and never block.
type Strategy interface {
	Delay(attempt int, base time.Duration) time.Duration
}

// maxShift caps the exponent so that a left shift cannot overflow int64.
const maxShift = 62

// NoWait retries immediately.
type NoWait struct{}

func (NoWait) Delay(int, time.Duration) time.Duration { return 0 }

// Fixed waits the base delay before every attempt.
type Fixed struct{}

func (Fixed) Delay(_ int, base time.Duration) time.Duration {
	if base < 0 {
		return 0
	}
	return base
}

// Exponential waits base * 2^(attempt-1).
type Exponential struct{}

func (Exponential) Delay(attempt int, base time.Duration) time.Duration {
	return scale(base, exponent(attempt))
}

// Fibonacci waits base * fib(attempt), where fib(1) = fib(2) = 1.
type Fibonacci struct{}

func (Fibonacci) Delay(attempt int, base time.Duration) time.Duration {
	return scale(base, fib(attempt))
}

// Random waits a uniformly random duration in [0, base].
type Random struct{}

func (Random) Delay(_ int, base time.Duration) time.Duration {
	return jitter(base)
}

// RandomExponential waits a uniformly random duration in
// [0, base * 2^(attempt-1)].
type RandomExponential struct{}

func (RandomExponential) Delay(attempt int, base time.Duration) time.Duration {
	return jitter(scale(base, exponent(attempt)))
}

func exponent(attempt int) int64 {
	shift := attempt - 1
	if shift < 0 {
		shift = 0
	} else if shift > maxShift {
		shift = maxShift
	}
	return int64(1) << shift
}

func fib(attempt int) int64 {
	if attempt < 1 {
		attempt = 1
	}
	a, b := int64(0), int64(1)
	for i := 0; i < attempt; i++ {
		if a > math.MaxInt64-b {
			return math.MaxInt64
		}
		a, b = b, a+b
	}
	return a
}

func scale(base time.Duration, factor int64) time.Duration {
	if base <= 0 || factor <= 0 {
		return 0
	}
	if int64(base) > math.MaxInt64/factor {
		return time.Duration(math.MaxInt64)
	}
	return base * time.Duration(factor)
}

func jitter(ceiling time.Duration) time.Duration {
	if ceiling <= 0 {
		return 0
	}
	n := int64(ceiling)
	if n < math.MaxInt64 {
		n++ // make the ceiling inclusive
	}
	return time.Duration(rand.Int63n(n))
}

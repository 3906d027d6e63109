package policy

import "time"

// Presets return fully-specified builders for common policies. They are pure
// conveniences; further builder calls follow the usual one-of rules.

// FixedBackoff5Tries10Sec retries any failure up to five times with a fixed
// ten-second delay.
func FixedBackoff5Tries10Sec() *Builder {
	return NewBuilder().
		RetryOnAny().
		MaxTries(5).
		DelayBetweenTries(10 * time.Second).
		FixedBackoff()
}

// ExponentialBackoff5Tries5Sec retries any failure up to five times with an
// exponential backoff on a five-second base.
func ExponentialBackoff5Tries5Sec() *Builder {
	return NewBuilder().
		RetryOnAny().
		MaxTries(5).
		DelayBetweenTries(5 * time.Second).
		ExponentialBackoff()
}

// FibonacciBackoff7Tries5Sec retries any failure up to seven times with a
// Fibonacci backoff on a five-second base.
func FibonacciBackoff7Tries5Sec() *Builder {
	return NewBuilder().
		RetryOnAny().
		MaxTries(7).
		DelayBetweenTries(5 * time.Second).
		FibonacciBackoff()
}

// RandomExponentialBackoff10Tries60Sec retries any failure up to ten times
// with a randomized exponential backoff on a sixty-second base.
func RandomExponentialBackoff10Tries60Sec() *Builder {
	return NewBuilder().
		RetryOnAny().
		MaxTries(10).
		DelayBetweenTries(60 * time.Second).
		RandomExponentialBackoff()
}

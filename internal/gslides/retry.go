package gslides

import (
	"errors"
	"math/rand/v2"
	"time"
)

// MaxRetries bounds how often a throttled call is reattempted.
const MaxRetries = 3

// RetryBaseDelay is the base duration for exponential backoff.
// Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * RetryBaseDelay
	if max := 30 * RetryBaseDelay; base > max {
		base = max
	}
	jitter := time.Duration(rand.Int64N(int64(base)/2 + 1))
	return base + jitter
}

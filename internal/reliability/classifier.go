package reliability

import (
	"math/rand"
	"time"
)

// IsRetryableHTTPStatus classifies retryable HTTP status codes.
func IsRetryableHTTPStatus(code int) bool {
	switch code {
	case 408, 429:
		return true
	default:
		return code >= 500
	}
}

// ExponentialBackoff computes a deterministic capped backoff duration.
func ExponentialBackoff(attempt int, base, cap time.Duration) time.Duration {
	if attempt <= 0 {
		return base
	}
	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= cap {
			return cap
		}
	}
	return d
}

// JitteredDelay returns base plus a uniformly random jitter in [0, jitterMax].
// A non-positive jitterMax disables the random component, which keeps retry
// timing deterministic in tests.
func JitteredDelay(base, jitterMax time.Duration) time.Duration {
	if base < 0 {
		base = 0
	}
	if jitterMax <= 0 {
		return base
	}
	return base + time.Duration(rand.Int63n(int64(jitterMax)+1))
}

package provider

import "time"

// RetryPolicy makes the gateway's retry contract an explicit, testable value
// instead of behaviour buried in the transport.
type RetryPolicy struct {
	// MaxAttempts bounds the number of outbound calls, first try included.
	MaxAttempts int
	// BaseDelay is waited between attempts before jitter.
	BaseDelay time.Duration
	// JitterMax is the upper bound of the random delay added per attempt.
	JitterMax time.Duration
	// Deadline is the hard budget across all attempts, backoff included.
	Deadline time.Duration
}

// DefaultRetryPolicy mirrors the service's standing retry contract:
// 3 attempts, 500ms base delay, up to 200ms jitter, 10s overall budget.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		JitterMax:   200 * time.Millisecond,
		Deadline:    10 * time.Second,
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.Deadline <= 0 {
		p.Deadline = 10 * time.Second
	}
	return p
}

package reliability

import (
	"testing"
	"time"
)

func TestIsRetryableHTTPStatus(t *testing.T) {
	cases := []struct {
		code int
		want bool
	}{
		{200, false},
		{400, false},
		{404, false},
		{408, true},
		{429, true},
		{500, true},
		{503, true},
		{529, true},
	}
	for _, tc := range cases {
		got := IsRetryableHTTPStatus(tc.code)
		if got != tc.want {
			t.Fatalf("IsRetryableHTTPStatus(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestExponentialBackoffCap(t *testing.T) {
	base := 100 * time.Millisecond
	capDur := 700 * time.Millisecond
	if got := ExponentialBackoff(0, base, capDur); got != base {
		t.Fatalf("attempt 0 = %v, want %v", got, base)
	}
	if got := ExponentialBackoff(10, base, capDur); got != capDur {
		t.Fatalf("attempt 10 = %v, want %v", got, capDur)
	}
}

func TestJitteredDelayBounds(t *testing.T) {
	base := 500 * time.Millisecond
	jitter := 200 * time.Millisecond
	for i := 0; i < 100; i++ {
		d := JitteredDelay(base, jitter)
		if d < base || d > base+jitter {
			t.Fatalf("JitteredDelay = %v, want in [%v, %v]", d, base, base+jitter)
		}
	}
}

func TestJitteredDelayNoJitterIsDeterministic(t *testing.T) {
	base := 500 * time.Millisecond
	if got := JitteredDelay(base, 0); got != base {
		t.Fatalf("JitteredDelay(base, 0) = %v, want %v", got, base)
	}
}

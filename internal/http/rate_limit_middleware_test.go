package httpx

import (
	"testing"
	"time"
)

func TestMemoryRateLimiterDeniesOverLimit(t *testing.T) {
	t.Parallel()

	rl := NewMemoryRateLimiter()
	defer rl.Close()

	for i := 0; i < 3; i++ {
		if decision := rl.Allow("ip:10.0.0.1", 3, time.Minute); !decision.allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	decision := rl.Allow("ip:10.0.0.1", 3, time.Minute)
	if decision.allowed {
		t.Fatalf("fourth request should be denied")
	}
	if decision.windowEnd.IsZero() {
		t.Fatalf("denied decision should carry the window end")
	}

	// Other keys are unaffected.
	if decision := rl.Allow("ip:10.0.0.2", 3, time.Minute); !decision.allowed {
		t.Fatalf("independent key should be allowed")
	}
}

func TestMemoryRateLimiterWindowReset(t *testing.T) {
	t.Parallel()

	rl := NewMemoryRateLimiter().(*memoryRateLimiter)
	defer rl.Close()

	rl.Allow("user:u1", 1, 10*time.Millisecond)
	if decision := rl.Allow("user:u1", 1, 10*time.Millisecond); decision.allowed {
		t.Fatalf("second request inside window should be denied")
	}
	time.Sleep(20 * time.Millisecond)
	if decision := rl.Allow("user:u1", 1, 10*time.Millisecond); !decision.allowed {
		t.Fatalf("request after window elapse should be allowed")
	}
}

func TestMemoryRateLimiterCleanup(t *testing.T) {
	t.Parallel()

	rl := NewMemoryRateLimiter().(*memoryRateLimiter)
	defer rl.Close()

	rl.Allow("ip:10.0.0.3", 5, time.Millisecond)
	rl.cleanup(time.Now().Add(time.Second))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if len(rl.entries) != 0 {
		t.Fatalf("expected expired entries swept, have %d", len(rl.entries))
	}
}

func TestMemoryRateLimiterCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	rl := NewMemoryRateLimiter()
	rl.Close()
	// Router.Close and deferred cleanup may both close the limiter.
	rl.Close()
}

func TestZeroLimitDisablesThrottling(t *testing.T) {
	t.Parallel()

	rl := NewMemoryRateLimiter()
	defer rl.Close()

	for i := 0; i < 50; i++ {
		if decision := rl.Allow("ip:10.0.0.4", 0, time.Minute); !decision.allowed {
			t.Fatalf("zero limit must never deny")
		}
	}
}

package throttle

import (
	"context"
	"testing"
	"time"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		limit  int
		window time.Duration
		ok     bool
	}{
		{name: "per_minute", input: "10/min", limit: 10, window: time.Minute, ok: true},
		{name: "per_hour", input: "100/hour", limit: 100, window: time.Hour, ok: true},
		{name: "per_day", input: "1000/day", limit: 1000, window: 24 * time.Hour, ok: true},
		{name: "spaces", input: " 5 / min ", limit: 5, window: time.Minute, ok: true},
		{name: "missing_period", input: "10", ok: false},
		{name: "unknown_period", input: "10/week", ok: false},
		{name: "zero_limit", input: "0/min", ok: false},
		{name: "negative_limit", input: "-3/min", ok: false},
		{name: "not_a_number", input: "ten/min", ok: false},
		{name: "empty", input: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rate, ok := ParseRate(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if !tc.ok {
				return
			}
			if rate.Limit != tc.limit {
				t.Fatalf("limit want %d got %d", tc.limit, rate.Limit)
			}
			if rate.Window != tc.window {
				t.Fatalf("window want %v got %v", tc.window, rate.Window)
			}
		})
	}
}

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestLimiter(t *testing.T) (*Limiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryHistoryStore()
	store.now = clock.Now
	return NewLimiter(store, WithClock(clock.Now)), clock
}

func TestLimiterAllowWithinLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	key := Key("manager", 1)

	for i := 0; i < 3; i++ {
		decision, err := limiter.Allow(context.Background(), key, "3/min")
		if err != nil {
			t.Fatalf("allow %d failed: %v", i, err)
		}
		if !decision.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}
}

func TestLimiterDeniesOverLimit(t *testing.T) {
	limiter, clock := newTestLimiter(t)
	key := Key("default", 7)

	for i := 0; i < 2; i++ {
		if decision, _ := limiter.Allow(context.Background(), key, "2/min"); !decision.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
		clock.Advance(5 * time.Second)
	}

	decision, err := limiter.Allow(context.Background(), key, "2/min")
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if decision.Allowed {
		t.Fatalf("third request within window should be denied")
	}
	// 最早一次请求在 10 秒前，重试等待 = 60 - 10
	if decision.RetryAfter != 50*time.Second {
		t.Fatalf("retry after want 50s got %v", decision.RetryAfter)
	}
}

func TestLimiterWindowSlides(t *testing.T) {
	limiter, clock := newTestLimiter(t)
	key := Key("delivery_crew", 3)

	for i := 0; i < 2; i++ {
		if decision, _ := limiter.Allow(context.Background(), key, "2/min"); !decision.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if decision, _ := limiter.Allow(context.Background(), key, "2/min"); decision.Allowed {
		t.Fatalf("request over limit should be denied")
	}

	clock.Advance(61 * time.Second)
	decision, err := limiter.Allow(context.Background(), key, "2/min")
	if err != nil {
		t.Fatalf("allow after window failed: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("request after window expiry should be allowed")
	}
}

func TestLimiterUnparsableRateAllowsAll(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	key := Key("default", 9)

	for i := 0; i < 50; i++ {
		decision, err := limiter.Allow(context.Background(), key, "unlimited")
		if err != nil {
			t.Fatalf("allow failed: %v", err)
		}
		if !decision.Allowed {
			t.Fatalf("unparsable rate should never throttle")
		}
	}
}

func TestLimiterKeysAreIsolated(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	if decision, _ := limiter.Allow(context.Background(), Key("default", 1), "1/min"); !decision.Allowed {
		t.Fatalf("first user should be allowed")
	}
	if decision, _ := limiter.Allow(context.Background(), Key("default", 1), "1/min"); decision.Allowed {
		t.Fatalf("first user second request should be denied")
	}
	if decision, _ := limiter.Allow(context.Background(), Key("default", 2), "1/min"); !decision.Allowed {
		t.Fatalf("second user should have a separate window")
	}
}

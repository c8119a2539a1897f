package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_Defaults(t *testing.T) {
	l := NewLimiter(0, 0)
	if l.defaultRate != 2 {
		t.Errorf("expected default rate 2, got %v", l.defaultRate)
	}
	if l.defaultBurst != 5 {
		t.Errorf("expected default burst 5, got %d", l.defaultBurst)
	}
}

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("categorize") {
		t.Error("first call should be allowed")
	}
	if !l.Allow("categorize") {
		t.Error("second call should be allowed within burst")
	}
	if l.Allow("categorize") {
		t.Error("third call should exceed burst")
	}
}

func TestLimiter_EndpointsIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("a") {
		t.Error("endpoint a should be allowed")
	}
	if !l.Allow("b") {
		t.Error("endpoint b should not share a's budget")
	}
}

func TestLimiter_SetEndpointRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetEndpointRate("fast", 100, 10)

	allowed := 0
	for i := 0; i < 10; i++ {
		if l.Allow("fast") {
			allowed++
		}
	}
	if allowed != 10 {
		t.Errorf("expected 10 allowed calls after override, got %d", allowed)
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow("slow") // drain the burst

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "slow"); err == nil {
		t.Error("expected error when context deadline expires before a token is available")
	}
}

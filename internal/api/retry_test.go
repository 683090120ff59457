package api

import (
	"context"
	"testing"
	"time"

	"github.com/theralink/client-go/internal/apierrors"
)

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxAttempts != 4 {
		t.Errorf("MaxAttempts = %d, want 4", cfg.MaxAttempts)
	}
	if cfg.BaseDelay != time.Second {
		t.Errorf("BaseDelay = %v, want 1s", cfg.BaseDelay)
	}
	if cfg.MaxDelay != 30*time.Second {
		t.Errorf("MaxDelay = %v, want 30s", cfg.MaxDelay)
	}
	if cfg.Multiplier != 2.0 {
		t.Errorf("Multiplier = %v, want 2.0", cfg.Multiplier)
	}
	if cfg.Jitter != 0.2 {
		t.Errorf("Jitter = %v, want 0.2", cfg.Jitter)
	}
}

func TestRetryConfig_Decide(t *testing.T) {
	cfg := DefaultRetryConfig()

	tests := []struct {
		name    string
		attempt int
		kind    apierrors.Kind
		want    bool
	}{
		{"first attempt, server error", 0, apierrors.KindServer, true},
		{"second attempt, server error", 1, apierrors.KindServer, true},
		{"third attempt, server error", 2, apierrors.KindServer, true},
		{"budget exhausted", 3, apierrors.KindServer, false},
		{"over budget", 4, apierrors.KindServer, false},
		{"network error", 0, apierrors.KindNetwork, true},
		{"rate limit", 0, apierrors.KindRateLimit, true},
		{"validation", 0, apierrors.KindValidation, false},
		{"authentication", 0, apierrors.KindAuthentication, false},
		{"authorization", 0, apierrors.KindAuthorization, false},
		{"not found", 0, apierrors.KindNotFound, false},
		{"unknown", 0, apierrors.KindUnknown, false},
		{"cancelled", 0, apierrors.KindCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := cfg.Decide(tt.attempt, tt.kind, 0)
			if d.ShouldRetry != tt.want {
				t.Errorf("Decide(%d, %s).ShouldRetry = %v, want %v",
					tt.attempt, tt.kind, d.ShouldRetry, tt.want)
			}
		})
	}
}

func TestRetryConfig_Decide_ServerHintWins(t *testing.T) {
	cfg := DefaultRetryConfig()

	d := cfg.Decide(0, apierrors.KindRateLimit, 2*time.Second)
	if !d.ShouldRetry {
		t.Fatal("expected retry")
	}
	if d.Delay != 2*time.Second {
		t.Errorf("Delay = %v, want the server hint of 2s", d.Delay)
	}
}

func TestRetryConfig_BackoffMonotonic(t *testing.T) {
	cfg := &RetryConfig{
		MaxAttempts: 6,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
		Jitter:      0, // No jitter for predictable comparisons
	}

	prev := time.Duration(0)
	for attempt := 0; attempt < 5; attempt++ {
		d := cfg.Decide(attempt, apierrors.KindServer, 0)
		if !d.ShouldRetry {
			t.Fatalf("attempt %d: expected retry", attempt)
		}
		if d.Delay < prev {
			t.Errorf("attempt %d: delay %v < previous %v", attempt, d.Delay, prev)
		}
		prev = d.Delay
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second}, // 32s capped at 30s
		{6, 30 * time.Second},
	}

	for _, tt := range tests {
		delay := cfg.delay(tt.attempt)
		if delay != tt.expected {
			t.Errorf("delay(%d) = %v, want %v", tt.attempt, delay, tt.expected)
		}
	}
}

func TestRetryConfig_Delay_WithJitter(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     0.2,
	}

	// With 20% jitter on 1s, the range is 0.8s to 1.2s.
	minDelay := 800 * time.Millisecond
	maxDelay := 1200 * time.Millisecond

	for i := 0; i < 100; i++ {
		delay := cfg.delay(0)
		if delay < minDelay || delay > maxDelay {
			t.Errorf("delay(0) = %v, expected between %v and %v", delay, minDelay, maxDelay)
		}
	}
}

func TestRetryConfig_Wait_Cancelled(t *testing.T) {
	cfg := DefaultRetryConfig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := cfg.Wait(ctx, 10*time.Second)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if time.Since(start) > time.Second {
		t.Error("Wait did not return promptly on cancellation")
	}
}

func TestRetryConfig_Wait_Completes(t *testing.T) {
	cfg := DefaultRetryConfig()

	if err := cfg.Wait(context.Background(), 10*time.Millisecond); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

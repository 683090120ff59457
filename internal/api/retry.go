package api

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/theralink/client-go/internal/apierrors"
)

// RetryConfig configures retry behavior for failed HTTP requests.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the initial delay between retry attempts.
	BaseDelay time.Duration
	// MaxDelay is the maximum delay between retry attempts.
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay increases after each attempt.
	Multiplier float64
	// Jitter is the randomization factor (0.0 to 1.0) added to delays
	// to prevent thundering herd.
	Jitter float64
}

// DefaultRetryConfig returns the default retry configuration:
// one initial attempt plus three retries.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts: 4,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
		Jitter:      0.2,
	}
}

// RetryDecision is the outcome of consulting the policy for one attempt.
type RetryDecision struct {
	ShouldRetry bool
	Delay       time.Duration
}

// Decide determines whether the attempt should be retried and after what
// delay. attempt is zero-based. A server-supplied hint (Retry-After)
// overrides the computed backoff.
func (r *RetryConfig) Decide(attempt int, kind apierrors.Kind, serverHint time.Duration) RetryDecision {
	if !kind.Retryable() {
		return RetryDecision{}
	}
	if attempt >= r.MaxAttempts-1 {
		return RetryDecision{}
	}
	if serverHint > 0 {
		return RetryDecision{ShouldRetry: true, Delay: serverHint}
	}
	return RetryDecision{ShouldRetry: true, Delay: r.delay(attempt)}
}

// delay calculates the exponential backoff for the given attempt with
// optional jitter.
func (r *RetryConfig) delay(attempt int) time.Duration {
	delay := float64(r.BaseDelay) * math.Pow(r.Multiplier, float64(attempt))
	if delay > float64(r.MaxDelay) {
		delay = float64(r.MaxDelay)
	}

	if r.Jitter > 0 {
		jitterAmount := delay * r.Jitter
		delay = delay - jitterAmount + (rand.Float64() * 2 * jitterAmount)
	}

	return time.Duration(delay)
}

// Wait sleeps for the decided delay, aborting early if ctx is done.
// No resource is held during the wait.
func (r *RetryConfig) Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

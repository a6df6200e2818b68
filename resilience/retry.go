package resilience

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// BackoffStrategy defines how delays increase between retries.
type BackoffStrategy int

const (
	// BackoffExponential multiplies the delay each attempt.
	BackoffExponential BackoffStrategy = iota
	// BackoffLinear increases delay linearly.
	BackoffLinear
	// BackoffConstant uses the same delay for all retries.
	BackoffConstant
)

// RetryConfig configures the retry behavior.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial).
	// Default: 3
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	// Default: 100ms
	InitialDelay time.Duration

	// MaxDelay caps the maximum delay between retries.
	// Default: 30s
	MaxDelay time.Duration

	// Multiplier is the backoff multiplier for exponential backoff.
	// Default: 2.0
	Multiplier float64

	// Strategy is the backoff strategy.
	// Default: BackoffExponential
	Strategy BackoffStrategy

	// Jitter adds randomness to delays to prevent thundering herd.
	// Default: true
	Jitter bool

	// RetryIf determines if an error should trigger a retry.
	// Default: all non-nil errors trigger retry.
	RetryIf func(err error) bool

	// OnRetry is called before each retry attempt.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// Retry implements retry with backoff.
type Retry struct {
	config RetryConfig
}

// NewRetry creates a new retry handler, applying defaults for zero fields.
func NewRetry(config RetryConfig) *Retry {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	if config.InitialDelay <= 0 {
		config.InitialDelay = 100 * time.Millisecond
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 30 * time.Second
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if config.RetryIf == nil {
		config.RetryIf = func(err error) bool { return err != nil }
	}

	return &Retry{config: config}
}

// Execute runs the operation with retry logic. When all attempts fail, the
// returned error wraps both ErrMaxRetriesExceeded and the last attempt's
// error. A non-retryable error (per RetryIf) is returned unchanged.
func (r *Retry) Execute(ctx context.Context, op func(context.Context) error) error {
	_, err := r.ExecuteValue(ctx, func(ctx context.Context) (any, error) {
		return nil, op(ctx)
	})
	return err
}

// ExecuteValue runs a value-returning operation with retry logic. It has the
// same shape as a memoized call, so a cached function composes directly:
//
//	retry.ExecuteValue(ctx, func(ctx context.Context) (any, error) {
//	    return cached.Call(ctx, args...)
//	})
func (r *Retry) ExecuteValue(ctx context.Context, op func(context.Context) (any, error)) (any, error) {
	var lastErr error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !r.config.RetryIf(err) {
			return nil, err
		}

		if attempt >= r.config.MaxAttempts {
			break
		}

		delay := r.calculateDelay(attempt)

		if r.config.OnRetry != nil {
			r.config.OnRetry(attempt, err, delay)
		}

		// Wait for delay or context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrMaxRetriesExceeded, r.config.MaxAttempts, lastErr)
}

func (r *Retry) calculateDelay(attempt int) time.Duration {
	var delay time.Duration

	switch r.config.Strategy {
	case BackoffConstant:
		delay = r.config.InitialDelay

	case BackoffLinear:
		delay = r.config.InitialDelay * time.Duration(attempt)

	case BackoffExponential:
		multiplier := math.Pow(r.config.Multiplier, float64(attempt-1))
		delay = time.Duration(float64(r.config.InitialDelay) * multiplier)
	}

	if delay > r.config.MaxDelay {
		delay = r.config.MaxDelay
	}

	if quarter := int64(delay / 4); r.config.Jitter && quarter > 0 {
		// Up to 25% jitter
		// #nosec G404 -- jitter is non-cryptographic timing variance.
		delay += time.Duration(rand.Int64N(quarter))
	}

	return delay
}

// Config returns the retry configuration.
func (r *Retry) Config() RetryConfig {
	return r.config
}

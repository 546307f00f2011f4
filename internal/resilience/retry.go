package resilience

import (
	"context"
	"errors"
	"time"
)

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// MaxRetries is the number of additional attempts after the first
	// failure. Total attempts = MaxRetries + 1.
	MaxRetries int
	// Sleep is the fixed delay between attempts. No backoff growth.
	Sleep time.Duration
	// PropagateError controls behavior once attempts are exhausted: when
	// true the last error is returned unchanged; when false the zero value
	// is returned with a nil error.
	PropagateError bool
	// RetryIf determines if an error should be retried. Defaults to
	// DefaultRetryIf, which retries everything except context cancellation.
	RetryIf func(error) bool
	// OnRetry is called before each retry with the attempt number that failed.
	OnRetry func(attempt int, err error)
}

// DefaultRetryConfig returns the defaults used when fields are unset.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		Sleep:          time.Second,
		PropagateError: true,
		RetryIf:        DefaultRetryIf,
	}
}

// DefaultRetryIf retries all errors except context cancellation.
func DefaultRetryIf(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Retry executes fn up to cfg.MaxRetries+1 times with a fixed cfg.Sleep
// between attempts. The first success returns immediately. After the final
// failure the last error is returned when cfg.PropagateError is true,
// otherwise the zero value with a nil error.
//
// The inter-attempt wait suspends on a timer and aborts on ctx cancellation,
// so concurrent work is never blocked by a sleeping retry.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryIf == nil {
		cfg.RetryIf = DefaultRetryIf
	}

	attempts := cfg.MaxRetries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !cfg.RetryIf(err) {
			return zero, err
		}

		// No sleep after the last attempt.
		if attempt == attempts {
			break
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}

		if err := wait(ctx, cfg.Sleep); err != nil {
			return zero, err
		}
	}

	if !cfg.PropagateError {
		return zero, nil
	}
	return zero, lastErr
}

// RetryFunc executes a function that returns only an error.
func RetryFunc(ctx context.Context, cfg RetryConfig, fn func() error) error {
	_, err := Retry(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// wait sleeps for the given duration or until ctx is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable marks a backend that could not be reached.
var ErrUnavailable = errors.New("cache unavailable")

// RetryableError marks a transient failure worth another attempt.
type RetryableError struct{ Err error }

// Retryable wraps err; nil stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was wrapped with [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Backoff controls [RetryWithBackoff].
type Backoff struct {
	Attempts int
	Delay    time.Duration
}

// DefaultBackoff suits a network round trip to Redis.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 50 * time.Millisecond}

// RetryWithBackoff calls fn until it succeeds, returns a non-retryable
// error, or runs out of attempts. The delay doubles after each failure.
func RetryWithBackoff(ctx context.Context, b Backoff, fn func() error) error {
	delay := b.Delay
	var lastErr error

	for i := 0; i < b.Attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < b.Attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc is called after a failed attempt, before waiting next.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries caps the number of retries after the first attempt. Zero means
	// the limit is driven by MaxElapsedTime only.
	MaxRetries uint64

	// nil retries every error, otherwise only errors for which it returns true.
	ShouldRetry ShouldRetryFunc

	// OnRetry is optional.
	OnRetry NotifyFunc
}

// Once is a Retrier that runs fn a single time. Used for non-idempotent calls.
type Once struct{}

func (Once) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

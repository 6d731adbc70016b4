package llm

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// RetryProvider wraps a Provider with retry logic for transient failures.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider with retry middleware.
func WithRetry(inner Provider, cfg RetryConfig) *RetryProvider {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialWait <= 0 {
		cfg.InitialWait = 1 * time.Second
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 10 * time.Second
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = 2.0
	}
	return &RetryProvider{inner: inner, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	wait := r.cfg.InitialWait

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(jitter(wait)):
			}
			wait = nextWait(wait, r.cfg)
		}

		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !r.shouldRetry(err, attempt) {
			return nil, err
		}

		// Honor server-provided retry hints.
		var rateLimit *ErrRateLimit
		if errors.As(err, &rateLimit) && rateLimit.RetryAfter > 0 {
			wait = rateLimit.RetryAfter
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry decides whether an error warrants another attempt.
// Rate limits and provider outages retry up to MaxAttempts. A schema
// validation failure gets exactly one retry since regeneration may
// produce valid output. Context cancellation never retries.
func (r *RetryProvider) shouldRetry(err error, attempt int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rateLimit *ErrRateLimit
	if errors.As(err, &rateLimit) {
		return true
	}

	var unavailable *ErrProviderUnavailable
	if errors.As(err, &unavailable) {
		return true
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return attempt == 0
	}

	return false
}

func nextWait(current time.Duration, cfg RetryConfig) time.Duration {
	next := time.Duration(float64(current) * cfg.Multiplier)
	if next > cfg.MaxWait {
		next = cfg.MaxWait
	}
	return next
}

// jitter applies +-20% randomization to avoid synchronized retries.
func jitter(d time.Duration) time.Duration {
	factor := 0.8 + rand.Float64()*0.4
	return time.Duration(float64(d) * factor)
}

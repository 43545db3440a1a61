package shopify

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimiter paces Admin API calls with a token bucket. Shopify's
// REST bucket leaks at 2 requests per second per shop; staying under
// that avoids 429 backoff loops entirely.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter with the given per-second rate
// and burst size.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until the limiter allows the call, or the context is
// canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// Allow reports whether a call may proceed immediately.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

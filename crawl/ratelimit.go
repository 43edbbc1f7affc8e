package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultDelay is the pause between requests to the documentation site.
const DefaultDelay = 500 * time.Millisecond

// Throttle spaces out requests to a single site using a token bucket with a
// burst of 1. The first Wait returns immediately.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle that allows one request per delay.
// A zero or negative delay disables throttling.
func NewThrottle(delay time.Duration) *Throttle {
	if delay <= 0 {
		return &Throttle{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

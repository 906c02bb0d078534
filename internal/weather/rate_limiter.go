package weather

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/AdityaDcode/FarmVista/internal/model"
)

// RateLimited wraps a Fetcher with a token-bucket rate limit so bursts of
// advice-generation requests cannot exhaust the provider's quota.
type RateLimited struct {
	fetcher Fetcher
	limiter *rate.Limiter
}

// NewRateLimited creates a rate-limited fetcher.
// rps is the maximum requests per second (fractional values allowed),
// burst is the maximum burst size.
func NewRateLimited(fetcher Fetcher, rps float64, burst int) *RateLimited {
	return &RateLimited{
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for rate limiter permission, then forwards to the wrapped fetcher
func (r *RateLimited) Fetch(ctx context.Context, latitude, longitude float64) (model.WeatherSnapshot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return model.WeatherSnapshot{}, &FetchError{Err: err}
	}
	return r.fetcher.Fetch(ctx, latitude, longitude)
}

var _ Fetcher = (*RateLimited)(nil)
var _ Fetcher = (*Client)(nil)

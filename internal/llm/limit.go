package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// limitedProvider is a decorator that throttles calls through a token
// bucket so bulk plan compiles cannot burst the advisory API.
type limitedProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps a provider with a requests-per-minute cap. A non
// positive cap disables limiting.
func WithRateLimit(p Provider, perMinute int) Provider {
	if perMinute <= 0 {
		return p
	}
	return &limitedProvider{
		inner:   p,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1),
	}
}

// Complete waits for a token, respecting the caller's deadline. A deadline
// hit while waiting surfaces as a context error, which callers resolve to
// their fallback path.
func (l *limitedProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.Complete(ctx, req)
}

func (l *limitedProvider) ModelID() string {
	return l.inner.ModelID()
}

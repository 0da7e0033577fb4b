package voice

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited caps how fast the wrapped synthesizer is called. A message
// full of missing words otherwise fires one engine call per word at once.
type RateLimited struct {
	inner   Synthesizer
	limiter *rate.Limiter
}

var _ Synthesizer = &RateLimited{}

func RateLimit(inner Synthesizer, perSecond float64) *RateLimited {
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

func (r *RateLimited) Synthesize(ctx context.Context, text string, language string) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, &SynthesisError{Text: text, Err: err}
	}
	return r.inner.Synthesize(ctx, text, language)
}

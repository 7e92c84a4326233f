package rmux

import (
	"github.com/rohanthewiz/rmux/consts"
	"golang.org/x/time/rate"
)

// RateLimit returns middleware applying one token bucket across every
// request it matches. rps is the sustained refill rate, burst the bucket
// size. A request arriving with the bucket empty is answered 429 on the
// spot - the rest of the chain, and the handler, never run for it.
//
// Scope the limiter by registering it with a pattern, e.g.
// d.UseFor("/api/*", rmux.RateLimit(100, 20)).
func RateLimit(rps float64, burst int) Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(ctx Context) (any, error) {
		if !limiter.Allow() {
			ctx.Status(consts.StatusTooManyRequests)
			ctx.SetHeader(consts.HeaderRetryAfter, "1")
			return map[string]string{"error": "rate limit exceeded"}, nil
		}

		return nil, ctx.Next()
	}
}

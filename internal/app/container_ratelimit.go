package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/http/middleware/ratelimit"
	"delivery-dispatch/internal/logx"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock, logger logx.Logger) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		logger.Info("rate limit disabled")
		return ratelimit.NopLimiter{}
	}
	api := ratelimit.Policy{Rate: rl.Rate, Burst: rl.Burst}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Default: api,
		Classes: map[ratelimit.Class]ratelimit.Policy{
			ratelimit.ClassAPI:     api,
			ratelimit.ClassWebhook: {Rate: rl.WebhookRate, Burst: rl.WebhookBurst},
		},
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.ClockFunc(time.Now)
}

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}

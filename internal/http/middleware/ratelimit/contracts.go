package ratelimit

import "time"

// Limiter decides whether the caller behind key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock provides current time to the token buckets.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function such as time.Now to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// NopLimiter is used when rate limiting is disabled.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }

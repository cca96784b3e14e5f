package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Class groups callers that share one rate policy. Bucket keys are
// "<class>|<caller>"; see Key.
type Class string

// Traffic classes.
const (
	// ClassAPI is dashboard and driver app traffic.
	ClassAPI Class = "api"
	// ClassWebhook is provider status callbacks, which arrive in bursts.
	ClassWebhook Class = "webhook"
)

// Key builds the bucket key for caller in class c.
func Key(c Class, caller string) string {
	return string(c) + "|" + caller
}

func classOf(key string) Class {
	c, _, ok := strings.Cut(key, "|")
	if !ok {
		return ""
	}
	return Class(c)
}

// Policy is the refill rate (tokens per second) and capacity of one bucket.
type Policy struct {
	Rate  float64
	Burst int
}

func (p Policy) normalized() Policy {
	if p.Rate <= 0 {
		p.Rate = 1
	}
	if p.Burst <= 0 {
		p.Burst = 1
	}
	return p
}

// Config stores TokenBucketLimiter settings.
type Config struct {
	// Default applies to keys whose class has no entry in Classes.
	Default Policy
	Classes map[Class]Policy
	// TTL drops buckets idle for longer; 0 keeps them forever.
	TTL time.Duration
	// MaxBuckets caps tracked callers across all classes; 0 is unlimited.
	MaxBuckets int
}

// TokenBucketLimiter keeps one token bucket per key, sized by the key's class.
type TokenBucketLimiter struct {
	clock    Clock
	fallback Policy
	classes  map[Class]Policy
	ttl      time.Duration
	max      int

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

type bucket struct {
	policy   Policy
	tokens   float64
	refilled time.Time
}

// NewTokenBucketLimiter creates a limiter; a nil clock uses wall time.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = ClockFunc(time.Now)
	}
	classes := make(map[Class]Policy, len(cfg.Classes))
	for c, p := range cfg.Classes {
		classes[c] = p.normalized()
	}
	return &TokenBucketLimiter{
		clock:    clock,
		fallback: cfg.Default.normalized(),
		classes:  classes,
		ttl:      cfg.TTL,
		max:      max(cfg.MaxBuckets, 0),
		buckets:  make(map[string]*bucket),
	}
}

// PolicyFor returns the policy applied to key.
func (l *TokenBucketLimiter) PolicyFor(key string) Policy {
	if p, ok := l.classes[classOf(key)]; ok {
		return p
	}
	return l.fallback
}

// Allow takes one token from key's bucket.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	b, ok := l.buckets[key]
	if !ok {
		if l.max > 0 && len(l.buckets) >= l.max {
			// table full: new callers wait for idle buckets to expire
			return false
		}
		p := l.PolicyFor(key)
		b = &bucket{policy: p, tokens: float64(p.Burst), refilled: now}
		l.buckets[key] = b
	}
	return b.take(now)
}

func (b *bucket) take(now time.Time) bool {
	if dt := now.Sub(b.refilled); dt > 0 {
		b.tokens = min(b.tokens+dt.Seconds()*b.policy.Rate, float64(b.policy.Burst))
		b.refilled = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops idle buckets at most once per max(TTL/2, 1m). Caller holds mu.
func (l *TokenBucketLimiter) sweep(now time.Time) {
	if l.ttl <= 0 || now.Before(l.nextSweep) {
		return
	}
	l.nextSweep = now.Add(max(l.ttl/2, time.Minute))
	for k, b := range l.buckets {
		if now.Sub(b.refilled) > l.ttl {
			delete(l.buckets, k)
		}
	}
}

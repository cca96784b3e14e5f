package geo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

const cacheKeyPrefix = "geocode:"

// CachedGeocoder keeps geocoding results in Redis. Cache failures fall through to the geocoder.
type CachedGeocoder struct {
	next   Geocoder
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logx.Logger
}

// NewCachedGeocoder wraps next with a Redis cache.
func NewCachedGeocoder(next Geocoder, rdb redis.Cmdable, ttl time.Duration, logger logx.Logger) *CachedGeocoder {
	return &CachedGeocoder{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

// Geocode returns the cached point or asks next and stores the answer.
func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (domain.Point, error) {
	key := cacheKeyPrefix + FoldKey(address)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.Point
		if jerr := json.Unmarshal(raw, &p); jerr == nil {
			return p, nil
		}
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("geocode cache read failed", logx.String("event", "geocode_cache"), logx.Err(err))
	}

	p, err := c.next.Geocode(ctx, address)
	if err != nil {
		return domain.Point{}, err
	}

	if raw, err := json.Marshal(p); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.Warn("geocode cache write failed", logx.String("event", "geocode_cache"), logx.Err(err))
		}
	}
	return p, nil
}

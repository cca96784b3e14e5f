// Package lock serialises concurrent dispatch commits per driver through Redis.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/logx"
)

const keyPrefix = "dispatch:driver-lock:"

// release deletes the key only while it still holds our token.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// DriverLock is a short-lived per-driver mutex.
type DriverLock struct {
	rdb    redis.Scripter
	setnx  func(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd
	ttl    time.Duration
	logger logx.Logger
}

// NewDriverLock creates a lock whose keys expire after ttl.
func NewDriverLock(rdb redis.Cmdable, ttl time.Duration, logger logx.Logger) *DriverLock {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &DriverLock{rdb: rdb, setnx: rdb.SetNX, ttl: ttl, logger: logger}
}

// Acquire takes the driver lock or fails with apperr.ErrDriverBusy. The returned
// func releases it and is safe to call once the lock has expired.
func (l *DriverLock) Acquire(ctx context.Context, driverID uuid.UUID) (func(context.Context), error) {
	key := keyPrefix + driverID.String()
	token := uuid.NewString()

	ok, err := l.setnx(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("driver lock: %w", err)
	}
	if !ok {
		return nil, apperr.ErrDriverBusy
	}
	return func(ctx context.Context) {
		if err := release.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			// the key still expires after ttl
			l.logger.Debug("driver lock release failed",
				logx.String("driver_id", driverID.String()),
				logx.Err(err),
			)
		}
	}, nil
}

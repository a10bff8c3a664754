package ratelimiter

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AttemptLimiter counts failures per resource in a fixed window that starts
// at the first failure. A resource is blocked once the count reaches the limit.
type AttemptLimiter struct {
	redis       contracts.RedisRepository
	log         *zap.Logger
	group       string
	maxAttempts int64
	window      time.Duration
}

func NewAttemptLimiter(redis contracts.RedisRepository, log *zap.Logger, group string, maxAttempts int, window time.Duration) contracts.AttemptLimiter {
	return &AttemptLimiter{
		redis:       redis,
		log:         log,
		group:       group,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func (l *AttemptLimiter) Blocked(ctx context.Context, resource string) (bool, error) {
	if l.maxAttempts <= 0 {
		return false, nil
	}

	current, err := l.redis.Get(ctx, l.key(resource))
	if err != nil {
		return false, err
	}
	if current == "" {
		return false, nil
	}

	count, err := strconv.ParseInt(strings.Trim(current, `"`), 10, 64)
	if err != nil {
		return false, exceptions.ErrRedisGet(err)
	}
	return count >= l.maxAttempts, nil
}

func (l *AttemptLimiter) RecordFailure(ctx context.Context, resource string) (int64, error) {
	key := l.key(resource)
	count, err := l.redis.Increment(ctx, key)
	if err != nil {
		return 0, err
	}

	if count == 1 {
		err = l.redis.Expire(ctx, key, l.window)
		if err != nil {
			return count, err
		}
	}

	if count >= l.maxAttempts {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		l.log.Warn("AttemptLimiter.RecordFailure limit reached",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Int64(constvars.LoggingCountKey, count),
		)
	}
	return count, nil
}

func (l *AttemptLimiter) Reset(ctx context.Context, resource string) error {
	return l.redis.Delete(ctx, l.key(resource))
}

func (l *AttemptLimiter) key(resource string) string {
	return fmt.Sprintf("%s:%s", l.group, strings.ToLower(strings.TrimSpace(resource)))
}

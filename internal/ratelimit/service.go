package ratelimit

import (
	"context"
	"fmt"
	"time"

	"leadflow-server/internal/clients/redis"
	"leadflow-server/internal/observability"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service handles rate limiting for operator API requests. Limiting is
// Redis-backed; without Redis the service allows everything, the API
// stays usable in single-node deployments.
type Service struct {
	redis  *redis.Client
	limit  int // requests per minute per key
	logger *observability.Logger
}

// NewService creates a new rate limiting service
func NewService(redisClient *redis.Client, requestsPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redisClient,
		limit:  requestsPerMinute,
		logger: logger,
	}
}

// CheckRateLimit checks if a key is within its per-minute budget using a
// sliding window over a Redis sorted set of request timestamps.
func (s *Service) CheckRateLimit(ctx context.Context, key string) (RateLimitResult, error) {
	if s.redis == nil || !s.redis.IsEnabled() {
		return RateLimitResult{Allowed: true, Limit: s.limit, Remaining: s.limit}, nil
	}

	redisKey := fmt.Sprintf("rl:%s", key)
	now := time.Now()
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-1 * time.Minute).UnixMilli()

	// Remove old entries outside the 1-minute window
	if err := s.redis.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStartMs)); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.redis.ZCard(ctx, redisKey)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		// Oldest request in the window determines when a slot frees up.
		oldest, err := s.redis.ZRange(ctx, redisKey, 0, 0)
		if err != nil || len(oldest) == 0 {
			return RateLimitResult{
				Allowed:      false,
				Limit:        s.limit,
				Remaining:    0,
				ResetAt:      now.Add(1 * time.Minute),
				RetryAfterMs: 60000,
			}, nil
		}

		var oldestTs int64
		fmt.Sscanf(oldest[0], "%d", &oldestTs)
		retryAfter := time.UnixMilli(oldestTs).Add(1 * time.Minute).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}

		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      time.UnixMilli(oldestTs).Add(1 * time.Minute),
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	if err := s.redis.ZAdd(ctx, redisKey, goredis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d", nowMs),
	}); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to add request: %w", err)
	}

	// Expire the key past the window so idle keys clean themselves up.
	if err := s.redis.Expire(ctx, redisKey, 2*time.Minute); err != nil {
		s.logger.Warn(ctx, "failed to set expiration on rate limit key")
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(1 * time.Minute),
	}, nil
}

package ratelimit

import (
	"context"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/oilimports/internal/config"
)

const keyWriteClient = "oilimports:write:%s"

// WriteLimiter throttles mutating requests per client. A nil limiter, or one
// without Redis, allows everything.
type WriteLimiter struct {
	bucket *TokenBucket
	cfg    *config.APIConfigHolder
}

func NewWriteLimiter(client *redis.Client, cfg *config.APIConfigHolder) *WriteLimiter {
	if client == nil || cfg == nil {
		return nil
	}
	return &WriteLimiter{
		bucket: NewTokenBucket(client),
		cfg:    cfg,
	}
}

func (l *WriteLimiter) Enabled() bool {
	return l != nil && l.bucket != nil && l.cfg.Get().RateLimit.Enabled
}

func (l *WriteLimiter) Allow(ctx context.Context, clientKey string) (*Result, error) {
	if !l.Enabled() {
		return &Result{Allowed: true}, nil
	}
	clientKey = strings.TrimSpace(clientKey)
	if clientKey == "" {
		clientKey = "anonymous"
	}
	settings := l.cfg.Get().RateLimit
	return l.bucket.Allow(ctx, fmt.Sprintf(keyWriteClient, clientKey), settings.Rate, settings.Burst)
}

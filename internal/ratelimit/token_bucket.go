package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// writeBucketScript refills KEYS[1] at ARGV[1] tokens per second up to ARGV[2],
// then spends one token if it can. Time comes from the Redis server so every
// API replica sees the same clock.
//
// Reply: {allowed (0|1), whole tokens left, milliseconds until the next token}.
const writeBucketScript = `
local rate  = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local ttl   = tonumber(ARGV[3])

local t = redis.call("TIME")
local now = tonumber(t[1]) * 1000 + math.floor(tonumber(t[2]) / 1000)

local state  = redis.call("HMGET", KEYS[1], "tokens", "at")
local tokens = tonumber(state[1]) or burst
local at     = tonumber(state[2]) or now

local elapsed = math.max(0, now - at)
tokens = math.min(burst, tokens + elapsed * rate / 1000)

local allowed = 0
local wait = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
else
  wait = math.ceil((1 - tokens) * 1000 / rate)
end

redis.call("HSET", KEYS[1], "tokens", tostring(tokens), "at", now)
redis.call("PEXPIRE", KEYS[1], ttl)

return {allowed, math.floor(tokens), wait}
`

var (
	ErrNotConfigured = errors.New("rate limiter not configured")
	ErrInvalidKey    = errors.New("rate limiter key is empty")
	ErrInvalidRate   = errors.New("rate limiter rate and burst must be positive")
)

// TokenBucket evaluates a shared token bucket stored in Redis.
type TokenBucket struct {
	client redis.Scripter
	script *redis.Script
}

// Result is the outcome of one Allow call.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

func NewTokenBucket(client redis.Scripter) *TokenBucket {
	if client == nil {
		return nil
	}
	return &TokenBucket{client: client, script: redis.NewScript(writeBucketScript)}
}

// Allow spends one token from the bucket at key.
func (b *TokenBucket) Allow(ctx context.Context, key string, rate float64, burst int) (*Result, error) {
	switch {
	case b == nil || b.client == nil:
		return nil, ErrNotConfigured
	case key == "":
		return nil, ErrInvalidKey
	case rate <= 0 || burst <= 0:
		return nil, ErrInvalidRate
	}

	reply, err := b.script.Run(ctx, b.client, []string{key}, rate, burst, bucketTTL(rate, burst).Milliseconds()).Int64Slice()
	if err != nil {
		return nil, err
	}
	if len(reply) != 3 {
		return nil, fmt.Errorf("rate limiter: unexpected script reply of %d values", len(reply))
	}

	return &Result{
		Allowed:    reply[0] == 1,
		Limit:      burst,
		Remaining:  int(reply[1]),
		RetryAfter: time.Duration(reply[2]) * time.Millisecond,
	}, nil
}

// bucketTTL keeps an idle bucket for twice the time a full refill takes.
func bucketTTL(rate float64, burst int) time.Duration {
	if rate <= 0 || burst <= 0 {
		return time.Second
	}
	return time.Duration(max(1, math.Ceil(2*float64(burst)/rate))) * time.Second
}

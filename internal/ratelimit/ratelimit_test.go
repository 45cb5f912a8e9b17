package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smallbiznis/oilimports/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilWriteLimiterAllows(t *testing.T) {
	var l *WriteLimiter
	assert.False(t, l.Enabled())

	res, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	assert.Nil(t, NewWriteLimiter(nil, config.NewStaticAPIConfigHolder(config.DefaultAPIConfig())))
}

func TestNilTokenBucket(t *testing.T) {
	assert.Nil(t, NewTokenBucket(nil))

	var b *TokenBucket
	_, err := b.Allow(context.Background(), "k", 1, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBucketTTL(t *testing.T) {
	assert.Equal(t, 4*time.Second, bucketTTL(20, 40))
	assert.Equal(t, time.Second, bucketTTL(1000, 1))
	assert.Equal(t, time.Second, bucketTTL(0, 10))
}

type fakeScripter struct {
	reply []any
	keys  []string
	args  []any
}

func (f *fakeScripter) result(keys []string, args []any) *redis.Cmd {
	f.keys = keys
	f.args = args
	return redis.NewCmdResult(f.reply, nil)
}

func (f *fakeScripter) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return f.result(keys, args)
}

func (f *fakeScripter) EvalSha(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return f.result(keys, args)
}

func (f *fakeScripter) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return f.result(keys, args)
}

func (f *fakeScripter) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return f.result(keys, args)
}

func (f *fakeScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult([]bool{true}, nil)
}

func (f *fakeScripter) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func TestTokenBucketAllowed(t *testing.T) {
	scripter := &fakeScripter{reply: []any{int64(1), int64(39), int64(0)}}
	bucket := NewTokenBucket(scripter)

	res, err := bucket.Allow(context.Background(), "oilimports:write:10.0.0.1", 20, 40)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 40, res.Limit)
	assert.Equal(t, 39, res.Remaining)
	assert.Zero(t, res.RetryAfter)
	assert.Equal(t, []string{"oilimports:write:10.0.0.1"}, scripter.keys)
}

func TestTokenBucketDenied(t *testing.T) {
	bucket := NewTokenBucket(&fakeScripter{reply: []any{int64(0), int64(0), int64(250)}})

	res, err := bucket.Allow(context.Background(), "k", 4, 4)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 250*time.Millisecond, res.RetryAfter)
}

func TestTokenBucketRejectsBadInput(t *testing.T) {
	bucket := NewTokenBucket(&fakeScripter{})

	_, err := bucket.Allow(context.Background(), "", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = bucket.Allow(context.Background(), "k", 0, 1)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestTokenBucketShortReply(t *testing.T) {
	bucket := NewTokenBucket(&fakeScripter{reply: []any{int64(1)}})

	_, err := bucket.Allow(context.Background(), "k", 1, 1)
	assert.Error(t, err)
}

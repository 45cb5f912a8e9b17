package ratelimit

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("ratelimit",
	fx.Provide(NewRedisClient, NewWriteLimiter),
	fx.Invoke(func(l *WriteLimiter, log *zap.Logger) {
		log.Info("write rate limiter ready", zap.Bool("enabled", l.Enabled()))
	}),
)

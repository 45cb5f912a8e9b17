package server

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/oilimports/internal/observability/logger"
	"github.com/smallbiznis/oilimports/internal/ratelimit"
	"go.uber.org/zap"
)

type writeLimiter interface {
	Enabled() bool
	Allow(ctx context.Context, clientKey string) (*ratelimit.Result, error)
}

// CORS allows the configured origins. An empty list or "*" allows any origin.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	allowAll := len(allowedOrigins) == 0
	for _, origin := range allowedOrigins {
		if strings.TrimSpace(origin) == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}

// WriteRateLimit throttles mutating routes per client IP.
func (s *Server) WriteRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.writeLimiter == nil || !s.writeLimiter.Enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		endpoint := normalizeRateLimitEndpoint(c)

		res, err := s.writeLimiter.Allow(ctx, c.ClientIP())
		if err != nil {
			// Fail open when Redis is unavailable.
			logger.FromContext(ctx).Warn("write rate limit check failed", zap.String("endpoint", endpoint), zap.Error(err))
			c.Next()
			return
		}
		if !res.Allowed {
			logger.FromContext(ctx).Warn("write rate limit exceeded", zap.String("endpoint", endpoint))
			s.obsMetrics.RecordRateLimitDenied(ctx, endpoint)

			retryAfter := int(res.RetryAfter.Round(time.Second) / time.Second)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			AbortWithError(c, ErrRateLimited)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Next()
	}
}

func normalizeRateLimitEndpoint(c *gin.Context) string {
	endpoint := strings.TrimSpace(c.FullPath())
	if endpoint == "" {
		endpoint = strings.TrimSpace(c.Request.URL.Path)
	}
	if endpoint == "" {
		endpoint = "unknown"
	}
	return endpoint
}

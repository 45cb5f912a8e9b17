package logger

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	obscontext "github.com/smallbiznis/oilimports/internal/observability/context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const requestIDHeader = "X-Request-Id"

// MiddlewareConfig controls request logging.
type MiddlewareConfig struct {
	Debug bool
	// ErrorClassifier turns the handler error into (error_type, error_code).
	ErrorClassifier func(err error) (string, string)
}

// GinMiddleware tags the request context with request and correlation ids and
// writes one "http_request" entry after the handler returns. Request bodies
// are never logged.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		ctx := obscontext.WithRequestID(c.Request.Context(), requestID)
		ctx, _ = obscontext.EnsureCorrelationID(ctx)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("bytes_out", max(c.Writer.Size(), 0)),
		}
		if id := c.Param("uuid"); id != "" {
			fields = append(fields, zap.String("record_uuid", id))
		}
		if kind := c.Param("kind"); kind != "" {
			fields = append(fields, zap.String("dimension_kind", kind))
		}
		if c.Request.Method == http.MethodGet && c.Request.URL.RawQuery != "" {
			fields = append(fields, zap.String("query", c.Request.URL.RawQuery))
		}
		if last := c.Errors.Last(); last != nil && cfg.ErrorClassifier != nil {
			errType, errCode := cfg.ErrorClassifier(last.Err)
			fields = append(fields, zap.String("error_type", errType), zap.String("error_code", errCode))
		}

		if ce := FromContext(c.Request.Context()).Check(requestLevel(route, status, cfg.Debug), "http_request"); ce != nil {
			ce.Write(fields...)
		}
	}
}

func requestLevel(route string, status int, debug bool) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case route == "/health" || route == "/metrics":
		return zapcore.DebugLevel
	case status >= http.StatusBadRequest && debug:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

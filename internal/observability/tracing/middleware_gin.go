package tracing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/oilimports/internal/observability/context"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/smallbiznis/oilimports/http"

// GinMiddleware opens a server span per request, continuing any upstream trace.
// It must run after the logging middleware so the request id is set.
func GinMiddleware() gin.HandlerFunc {
	tracer := otel.Tracer(tracerName)
	return func(c *gin.Context) {
		ctx := ExtractContext(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := tracer.Start(ctx, c.Request.Method, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		attrs := []attribute.KeyValue{
			attribute.String("http.request.method", c.Request.Method),
			attribute.Int("http.response.status_code", c.Writer.Status()),
			attribute.String("request_id", obscontext.RequestIDFromContext(ctx)),
		}
		if route := c.FullPath(); route != "" {
			span.SetName(c.Request.Method + " " + route)
			attrs = append(attrs, attribute.String("http.route", route))
		}
		if id := c.Param("uuid"); id != "" {
			attrs = append(attrs, attribute.String("record.uuid", id))
		}
		if kind := c.Param("kind"); kind != "" {
			attrs = append(attrs, attribute.String("dimension.kind", kind))
		}
		span.SetAttributes(SafeAttributes(attrs...)...)

		if c.Writer.Status() >= http.StatusInternalServerError {
			if last := c.Errors.Last(); last != nil {
				span.RecordError(SafeError(last.Err))
			}
			span.SetStatus(codes.Error, http.StatusText(c.Writer.Status()))
		}
	}
}

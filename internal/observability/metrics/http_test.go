package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestGinMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	m, err := newHTTPMetrics(registry, Config{Environment: "test"})
	require.NoError(t, err)

	router := gin.New()
	router.Use(GinMiddleware(m))
	router.GET("/crude-oil-imports/:uuid", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/crude-oil-imports/abc", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues("/crude-oil-imports/:uuid", http.MethodGet, "200"))
	if got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
	if inflight := testutil.ToFloat64(m.inflight); inflight != 0 {
		t.Fatalf("expected no requests in flight, got %v", inflight)
	}
}

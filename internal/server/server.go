package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/oilimports/internal/config"
	"github.com/smallbiznis/oilimports/internal/crudeimport"
	crudeimportdomain "github.com/smallbiznis/oilimports/internal/crudeimport/domain"
	"github.com/smallbiznis/oilimports/internal/dimension"
	dimensiondomain "github.com/smallbiznis/oilimports/internal/dimension/domain"
	"github.com/smallbiznis/oilimports/internal/observability"
	obsmiddleware "github.com/smallbiznis/oilimports/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/oilimports/internal/observability/metrics"
	obstracing "github.com/smallbiznis/oilimports/internal/observability/tracing"
	"github.com/smallbiznis/oilimports/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	dimension.Module,
	crudeimport.Module,
	ratelimit.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORS(cfg.CORSAllowedOrigins))
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	importSvc    crudeimportdomain.Service
	dimensionSvc dimensiondomain.Service
	writeLimiter writeLimiter
	obsMetrics   *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	ImportSvc    crudeimportdomain.Service
	DimensionSvc dimensiondomain.Service
	WriteLimiter *ratelimit.WriteLimiter `optional:"true"`
	ObsMetrics   *obsmetrics.Metrics     `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		importSvc:    p.ImportSvc,
		dimensionSvc: p.DimensionSvc,
		obsMetrics:   p.ObsMetrics,
	}
	if p.WriteLimiter != nil {
		svc.writeLimiter = p.WriteLimiter
	}

	svc.registerRoutes()
	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	imports := s.engine.Group("/crude-oil-imports")
	{
		imports.GET("", s.ListCrudeOilImports)
		imports.GET("/:uuid", s.GetCrudeOilImport)
		imports.POST("", s.WriteRateLimit(), s.CreateCrudeOilImport)
		imports.POST("/bulk", s.WriteRateLimit(), s.CreateCrudeOilImportsBulk)
		imports.PATCH("/:uuid", s.WriteRateLimit(), s.PatchCrudeOilImport)
		imports.PUT("/:uuid", s.WriteRateLimit(), s.ReplaceCrudeOilImport)
		imports.DELETE("/:uuid", s.WriteRateLimit(), s.DeleteCrudeOilImport)
	}

	s.engine.GET("/dimensions/:kind", s.ListDimensions)
}

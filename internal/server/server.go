package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marinex/fueleu/internal/banking"
	bankingdomain "github.com/marinex/fueleu/internal/banking/domain"
	"github.com/marinex/fueleu/internal/compliance"
	compliancedomain "github.com/marinex/fueleu/internal/compliance/domain"
	"github.com/marinex/fueleu/internal/config"
	obslogger "github.com/marinex/fueleu/internal/observability/logger"
	obsmetrics "github.com/marinex/fueleu/internal/observability/metrics"
	"github.com/marinex/fueleu/internal/pooling"
	poolingdomain "github.com/marinex/fueleu/internal/pooling/domain"
	"github.com/marinex/fueleu/internal/route"
	routedomain "github.com/marinex/fueleu/internal/route/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	obsmetrics.Module,
	route.Module,
	compliance.Module,
	banking.Module,
	pooling.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
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
	engine        *gin.Engine
	cfg           config.Config
	routeSvc      routedomain.Service
	complianceSvc compliancedomain.Service
	bankingSvc    bankingdomain.Service
	poolingSvc    poolingdomain.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	RouteSvc      routedomain.Service
	ComplianceSvc compliancedomain.Service
	BankingSvc    bankingdomain.Service
	PoolingSvc    poolingdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		routeSvc:      p.RouteSvc,
		complianceSvc: p.ComplianceSvc,
		bankingSvc:    p.BankingSvc,
		poolingSvc:    p.PoolingSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	routes := api.Group("/routes")
	routes.GET("", s.ListRoutes)
	routes.POST("", s.CreateRoute)
	routes.POST("/:id/baseline", s.SetBaseline)
	routes.GET("/comparison", s.GetComparison)

	compliance := api.Group("/compliance")
	compliance.GET("/cb", s.GetComplianceBalance)
	compliance.GET("/adjusted-cb", s.GetAdjustedComplianceBalance)
	compliance.GET("/ships", s.ListShips)

	banking := api.Group("/banking")
	banking.GET("/records", s.GetBankingRecords)
	banking.POST("/bank", s.BankSurplus)
	banking.POST("/apply", s.ApplySurplus)

	pools := api.Group("/pools")
	pools.GET("", s.ListPools)
	pools.GET("/:id", s.GetPool)
	pools.POST("", s.CreatePool)
}

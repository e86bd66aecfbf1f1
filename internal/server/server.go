package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	bankingdomain "github.com/covenantworks/covenant/internal/banking/domain"
	"github.com/covenantworks/covenant/internal/clock"
	"github.com/covenantworks/covenant/internal/config"
	financedomain "github.com/covenantworks/covenant/internal/finance/domain"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
	"github.com/covenantworks/covenant/internal/observability/logger"
	reportdomain "github.com/covenantworks/covenant/internal/report/domain"
	vendordomain "github.com/covenantworks/covenant/internal/vendors/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	cfg config.Config
	db  *gorm.DB
	log *zap.Logger

	engine *gin.Engine
	clock  clock.Clock

	reportSvc  reportdomain.Service
	ledgerSvc  ledgerdomain.Service
	bankingSvc bankingdomain.Service
	financeSvc financedomain.Service
	vendorSvc  vendordomain.Service
}

type ServerParam struct {
	fx.In

	Config config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	Engine *gin.Engine
	Clock  clock.Clock

	ReportSvc  reportdomain.Service
	LedgerSvc  ledgerdomain.Service
	BankingSvc bankingdomain.Service
	FinanceSvc financedomain.Service
	VendorSvc  vendordomain.Service
}

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Logger:    log,
		SkipPaths: []string{"/healthz"},
	}))
	engine.Use(gin.Recovery())
	return engine
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:        p.Config,
		db:         p.DB,
		log:        p.Log.Named("server"),
		engine:     p.Engine,
		clock:      p.Clock,
		reportSvc:  p.ReportSvc,
		ledgerSvc:  p.LedgerSvc,
		bankingSvc: p.BankingSvc,
		financeSvc: p.FinanceSvc,
		vendorSvc:  p.VendorSvc,
	}
}

func (s *Server) RegisterAPIRoutes() {
	s.engine.GET("/healthz", s.Healthz)

	api := s.engine.Group("/api")
	api.GET("/associations", s.ListAssociations)
	api.GET("/associations/:id/summary", s.GetFinancialSummary)
	api.GET("/associations/:id/reports/:type", s.GetReportData)
	api.POST("/associations/:id/reports/seed", s.SeedReports)
	api.GET("/associations/:id/accounts", s.ListBankAccounts)
	api.GET("/associations/:id/transactions", s.ListTransactions)
	api.POST("/associations/:id/transactions", s.CreateTransaction)
	api.GET("/associations/:id/gl-accounts", s.ListGLAccounts)
	api.POST("/associations/:id/journal-entries", s.CreateJournalEntry)
	api.POST("/journal-entries/:id/post", s.PostJournalEntry)
	api.GET("/associations/:id/vendors", s.ListVendors)
	api.GET("/associations/:id/insurance", s.VendorInsurance)
}

func (s *Server) Healthz(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

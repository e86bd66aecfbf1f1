package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/covenantworks/covenant/internal/banking"
	"github.com/covenantworks/covenant/internal/banking/reconcile"
	"github.com/covenantworks/covenant/internal/clock"
	"github.com/covenantworks/covenant/internal/config"
	"github.com/covenantworks/covenant/internal/events"
	"github.com/covenantworks/covenant/internal/finance"
	"github.com/covenantworks/covenant/internal/ledger"
	"github.com/covenantworks/covenant/internal/migration"
	"github.com/covenantworks/covenant/internal/observability/logger"
	"github.com/covenantworks/covenant/internal/report"
	reportdomain "github.com/covenantworks/covenant/internal/report/domain"
	"github.com/covenantworks/covenant/internal/seed"
	"github.com/covenantworks/covenant/internal/server"
	"github.com/covenantworks/covenant/internal/vendors"
	"github.com/covenantworks/covenant/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		clock.Module,
		events.Module,

		report.Module,
		ledger.Module,
		banking.Module,
		finance.Module,
		vendors.Module,
		reconcile.Module,

		fx.Invoke(func(conn *gorm.DB, cfg config.Config, reportSvc reportdomain.Service) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			if cfg.Bootstrap.EnsureDefaultAssociation {
				if err := seed.EnsureDefaultAssociation(conn); err != nil {
					return err
				}
				if cfg.Bootstrap.SeedReportData {
					return reportSvc.SeedInitialReportData(context.Background(), "assoc1")
				}
			}
			return nil
		}),

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(s *server.Server) {
			s.RegisterAPIRoutes()
		}),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}

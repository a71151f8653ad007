package main

import (
	"context"
	"time"

	"github.com/marketpulse/marketpulse-api/infrastructure/database/postgres"
	"github.com/marketpulse/marketpulse-api/infrastructure/integrator"
	"github.com/marketpulse/marketpulse-api/infrastructure/integrator/amazon"
	"github.com/marketpulse/marketpulse-api/infrastructure/integrator/ebay"
	"github.com/marketpulse/marketpulse-api/infrastructure/integrator/etsy"
	"github.com/marketpulse/marketpulse-api/infrastructure/integrator/swell"
	"github.com/marketpulse/marketpulse-api/infrastructure/integrator/tokens"
	"github.com/marketpulse/marketpulse-api/infrastructure/migration"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/internal/api"
	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/scheduler"
	"github.com/marketpulse/marketpulse-api/internal/usecases/analyzing"
	"github.com/marketpulse/marketpulse-api/internal/usecases/authenticating"
	"github.com/marketpulse/marketpulse-api/internal/usecases/connecting"
	"github.com/marketpulse/marketpulse-api/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Run(pgConn); err != nil {
		logrus.WithError(err).Fatal("error migrating database")
	}

	userRepo := repository.NewUserRepository(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	syncEventRepo := repository.NewSyncEventRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	integrators := []integrator.MarketplaceIntegrator{
		etsy.New(cfg, etsy.NewClient(cfg)),
		ebay.New(cfg, ebay.NewClient(cfg)),
		amazon.New(cfg, amazon.NewClient(cfg)),
		swell.New(cfg, swell.NewClient(cfg)),
	}

	tokenManager := tokens.NewManager(credentialRepo)

	syncer := syncing.NewService(cfg, credentialRepo, saleRepo, syncEventRepo, tokenManager, integrators)
	connector := connecting.NewService(credentialRepo, syncEventRepo, integrators)
	analyzer := analyzing.NewService(saleRepo)

	syncScheduler := scheduler.NewSyncSchedulerService(cfg, credentialRepo, syncer)
	if err := syncScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting sync scheduler")
	}

	server, err := api.New(
		cfg,
		authenticator,
		connector,
		syncer,
		analyzer,
		syncEventRepo,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

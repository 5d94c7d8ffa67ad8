package main

import (
	"context"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/infrastructure/database/postgres"
	"github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon"
	"github.com/ozmetrics/ozon-performance-sync/infrastructure/repository"
	"github.com/ozmetrics/ozon-performance-sync/internal/api"
	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/pipeline"
	"github.com/ozmetrics/ozon-performance-sync/internal/scheduler"
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
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	credentialRepo := repository.NewCredentialRepository(pgConn)
	analyticsRepo := repository.NewAnalyticsRepository(pgConn)

	ozonIntegrator := ozon.New(cfg)

	runner := pipeline.NewRunner(cfg, credentialRepo, analyticsRepo, ozonIntegrator)

	collectionSyncService := scheduler.NewCollectionSyncService(runner, cfg)
	if err := collectionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Could not start the collection sync scheduler")
	} else {
		logrus.Info("Collection sync scheduler started")
	}

	server, err := api.New(cfg, collectionSyncService)
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
		logrus.WithError(err).Fatal("Could not connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Could not ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-insights-api/infrastructure/repository"
	"github.com/vfg2006/clinic-insights-api/internal/api"
	"github.com/vfg2006/clinic-insights-api/internal/cache"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/scheduler"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/closing"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/pipeline"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	pipelineRepo := repository.NewPipelineRepository(pgConn)
	closingRepo := repository.NewClosingRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	reportingService := reporting.NewService(cfg, snapshotRepo)
	if cfg.Reporting.CacheEnabled {
		projectionCache := cache.New(cfg.Reporting.CacheTTL)
		defer projectionCache.Stop()

		reportingService = reportingService.WithCache(projectionCache)
		logrus.WithField("ttl", cfg.Reporting.CacheTTL.String()).Info("Cache de projeções habilitado")
	}

	pipelineService := pipeline.NewService(cfg, pipelineRepo)
	closingService := closing.NewService(closingRepo)

	monthlyClosingService := scheduler.NewMonthlyClosingService(closingRepo, reportingService, cfg)
	if err := monthlyClosingService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento mensal")
	}

	server, err := api.New(
		cfg,
		reportingService,
		pipelineService,
		closingService,
		authenticator,
		monthlyClosingService,
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
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

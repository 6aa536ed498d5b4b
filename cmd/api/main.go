package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/survey-service/internal/api/http"
	"github.com/spec-kit/survey-service/internal/api/http/handlers"
	"github.com/spec-kit/survey-service/internal/config"
	"github.com/spec-kit/survey-service/internal/events"
	"github.com/spec-kit/survey-service/internal/observability"
	"github.com/spec-kit/survey-service/internal/persistence"
	"github.com/spec-kit/survey-service/internal/render"
	"github.com/spec-kit/survey-service/internal/service"
	"github.com/spec-kit/survey-service/internal/store"
	"github.com/spec-kit/survey-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var blob store.Blob
	if cfg.Survey.Backend == config.StoreBackendPostgres {
		blob = store.NewPostgresBlob(pg.PoolHandle(), cfg.Survey.StorageKey)
	} else {
		blob = store.NewRedisBlob(redis.Client, cfg.Survey.StorageKey)
	}
	recordStore := store.NewRecordStore(blob, logger)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)

	surveyService := service.NewSurveyService(cfg.Survey, service.SurveyDependencies{
		Store:      recordStore,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	auditService := service.NewAuditService(dispatcher, logger, metrics)
	worker.StartAuditWorker(auditService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Survey.Backend, pg, redis)
	surveyHandler := handlers.NewSurveyHandler(surveyService, cfg.Export.Filename)
	dashboardHandler := handlers.NewDashboardHandler(surveyService, render.NewChartRenderer())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    healthHandler,
		Survey:    surveyHandler,
		Dashboard: dashboardHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

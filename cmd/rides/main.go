package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/config"
	"github.com/piresc/fleetdispatch/internal/pkg/database"
	"github.com/piresc/fleetdispatch/internal/pkg/health"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/metrics"
	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/nats"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/internal/pkg/server"
	reportsHandler "github.com/piresc/fleetdispatch/services/reports/handler"
	reportsRepository "github.com/piresc/fleetdispatch/services/reports/repository"
	reportsUsecase "github.com/piresc/fleetdispatch/services/reports/usecase"
	"github.com/piresc/fleetdispatch/services/rides/gateway"
	"github.com/piresc/fleetdispatch/services/rides/handler"
	"github.com/piresc/fleetdispatch/services/rides/repository"
	"github.com/piresc/fleetdispatch/services/rides/usecase"
	trackingGateway "github.com/piresc/fleetdispatch/services/tracking/gateway"
	trackingHandler "github.com/piresc/fleetdispatch/services/tracking/handler"
	trackingRepository "github.com/piresc/fleetdispatch/services/tracking/repository"
	trackingUsecase "github.com/piresc/fleetdispatch/services/tracking/usecase"
)

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Redis backs the tracking position cache and the dashboard cache
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
	}

	// The publisher owns the stream definition so events are kept even
	// before the notification worker first starts
	streamCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = natsClient.CreateStream(streamCtx, nats.RideEventsStreamConfig())
	cancel()
	if err != nil {
		zapLogger.Fatal("Failed to create ride events stream", logger.Err(err))
	}

	// Rides
	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	ridesGW := gateway.NewRideGW(natsClient)
	rideUC, err := usecase.NewRideUC(configs, rideRepo, ridesGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}

	// Tracking
	trackingRepo := trackingRepository.NewTrackingRepository(redisClient)
	monitorGW := trackingGateway.NewMonitorGW(configs.Tracking, zapLogger)
	trackingUC := trackingUsecase.NewTrackingUC(configs, trackingRepo, monitorGW, rideUC)

	// Reports
	reportRepo := reportsRepository.NewReportRepository(postgresClient.GetDB(), redisClient)
	reportUC := reportsUsecase.NewReportUC(configs, reportRepo)

	e := echo.New()
	e.HideBanner = true

	// panic recovery first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.PrometheusMiddleware(appName))

	healthService := health.NewService(zapLogger)
	healthService.Require("postgres", health.Postgres(postgresClient))
	healthService.Require("redis", health.Redis(redisClient))
	healthService.Require("nats", health.NATS(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)
	metrics.RegisterEndpoint(e)

	handler.NewHandler(rideUC, configs).RegisterRoutes(e)
	trackingHandler.NewHandler(trackingUC, configs).RegisterRoutes(e)
	reportsHandler.NewHandler(reportUC, configs).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	// cleanups run in reverse: NATS drains before the stores close
	srv.OnShutdown(func(context.Context) error { return zapLogger.Close() })
	srv.OnShutdown(func(context.Context) error { postgresClient.Close(); return nil })
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { natsClient.Close(); return nil })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
	logger.Info("Server exited", logger.String("app", appName))
}

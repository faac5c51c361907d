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
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/internal/pkg/server"
	"github.com/piresc/fleetdispatch/services/fleet/handler"
	"github.com/piresc/fleetdispatch/services/fleet/repository"
	"github.com/piresc/fleetdispatch/services/fleet/usecase"
)

const (
	loginAttempts = 10
	loginWindow   = time.Minute
)

func main() {
	appName := "fleet-service"
	configPath := "config/fleet.env"
	configs := config.InitConfig(configPath)

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

	// Redis holds the login rate limit counters
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	userRepo := repository.NewUserRepository(postgresClient.GetDB())
	vehicleRepo := repository.NewVehicleRepository(postgresClient.GetDB())

	if configs.Seed.Enabled {
		seed, err := config.LoadSeed(configs.Seed.File)
		if err != nil {
			zapLogger.Fatal("Failed to load seed file", logger.String("file", configs.Seed.File), logger.Err(err))
		}
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err = usecase.NewSeeder(configs, userRepo, vehicleRepo).Run(seedCtx, seed)
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to seed bootstrap data", logger.Err(err))
		}
	}

	userUC := usecase.NewUserUC(configs, userRepo)
	vehicleUC := usecase.NewVehicleUC(vehicleRepo)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.PrometheusMiddleware(appName))

	healthService := health.NewService(zapLogger)
	healthService.Require("postgres", health.Postgres(postgresClient))
	healthService.Optional("redis", health.Redis(redisClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)
	metrics.RegisterEndpoint(e)

	handler.NewHandler(userUC, vehicleUC, configs).
		LimitLogin(middleware.IPRateLimiter(loginAttempts, loginWindow, redisClient.GetClient())).
		RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error { return zapLogger.Close() })
	srv.OnShutdown(func(context.Context) error { postgresClient.Close(); return nil })
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
	logger.Info("Server exited", logger.String("app", appName))
}

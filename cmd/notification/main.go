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
	"github.com/piresc/fleetdispatch/internal/pkg/rabbitmq"
	"github.com/piresc/fleetdispatch/internal/pkg/server"
	"github.com/piresc/fleetdispatch/internal/pkg/websocket"
	"github.com/piresc/fleetdispatch/services/notification"
	"github.com/piresc/fleetdispatch/services/notification/gateway"
	"github.com/piresc/fleetdispatch/services/notification/handler"
	natsHandler "github.com/piresc/fleetdispatch/services/notification/handler/nats"
	"github.com/piresc/fleetdispatch/services/notification/repository"
	"github.com/piresc/fleetdispatch/services/notification/usecase"
)

func main() {
	appName := "notification-service"
	configPath := "config/notification.env"
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

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
	}

	var (
		delivery notification.DeliveryPublisher
		rabbit   *rabbitmq.Client
	)
	if configs.RabbitMQ.Enabled {
		rabbit, err = rabbitmq.ConnectRabbitMQ(configs.RabbitMQ, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to RabbitMQ", logger.Err(err))
		}
		delivery = rabbitmq.NewDeliveryPublisher(rabbit)
	} else {
		delivery = gateway.NewLogDispatcher()
	}

	wsManager := websocket.NewManager(configs.JWT)

	notificationRepo := repository.NewNotificationRepository(postgresClient.GetDB())
	notificationUC := usecase.NewNotificationUC(notificationRepo, wsManager, delivery)

	rideEvents := natsHandler.NewRideEventHandler(notificationUC, natsClient, configs.Notification)
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = rideEvents.InitNATSConsumers(initCtx)
	cancel()
	if err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.PrometheusMiddleware(appName))

	healthService := health.NewService(zapLogger)
	healthService.Require("postgres", health.Postgres(postgresClient))
	healthService.Require("nats", health.NATS(natsClient))
	if rabbit != nil {
		// delivery failures are only logged, so a broker outage degrades the feed
		healthService.Optional("rabbitmq", health.RabbitMQ(rabbit))
	}
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)
	metrics.RegisterEndpoint(e)

	handler.NewHandler(notificationUC, wsManager, configs).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error { return zapLogger.Close() })
	srv.OnShutdown(func(context.Context) error { postgresClient.Close(); return nil })
	srv.OnShutdown(func(context.Context) error {
		if rabbit != nil {
			rabbit.Close()
		}
		return nil
	})
	srv.OnShutdown(func(context.Context) error { natsClient.Close(); return nil })
	// stop pulling events before anything downstream goes away
	srv.OnShutdown(func(context.Context) error { rideEvents.Stop(); return nil })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
	logger.Info("Server exited", logger.String("app", appName))
}

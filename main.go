package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"techgear/internal/config"
	"techgear/internal/database"
	"techgear/internal/logger"
	"techgear/internal/server"
	"techgear/internal/services"
	"techgear/pkg/rabbitmq"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(config.New())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync(zlog)

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}
	if cfg.DatabaseSeed {
		if err := database.Seed(db); err != nil {
			zlog.Fatal("failed to seed database", zap.Error(err))
		}
	}

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		zlog.Info("RABBITMQ_URL not set, product events disabled")
	}

	app := server.NewApp(server.Options{
		DB:        db,
		Publisher: publisher,
		Log:       zlog,
		AccessLog: true,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Info("starting server", zap.String("addr", cfg.AppPort), zap.String("driver", cfg.DatabaseDriver))
		if err := app.Listen(cfg.AppPort); err != nil {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Error("error during Fiber shutdown", zap.Error(err))
	}
	zlog.Info("server gracefully stopped")
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ptgym/internal/config"
	"ptgym/internal/db"
	"ptgym/internal/logger"
	"ptgym/internal/notification"
	"ptgym/internal/server"

	"github.com/redis/go-redis/v9"
)

// @title PT Gym API
// @version 1.0
// @description Personal training lesson scheduling and change requests.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Configure(cfg.Env, cfg.LogLevel); err != nil {
		logger.Fatalf("Failed to configure logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting PT Gym application", "env", cfg.Env, "timezone", cfg.Location.String())

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sender notification.Sender = notification.LogSender{}
	if cfg.FirebaseCredentialsFile != "" {
		fcm, err := notification.NewFCMSender(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			logger.Fatalf("Failed to initialize FCM: %v", err)
		}
		sender = fcm
		logger.Info("FCM sender initialized")
	} else {
		logger.Warn("FIREBASE_CREDENTIALS_FILE not set, push notifications are only logged")
	}

	queue := notification.NewQueue(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), sender)
	defer queue.Close()
	go queue.Start(ctx)
	go reportQueueLength(ctx, queue)

	dispatcher := notification.NewDispatcher(notification.NewTokenRepository(database), queue)

	srv := server.New(database, cfg, dispatcher)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	// Stop the worker only after in-flight requests have enqueued their jobs.
	cancel()

	logger.Info("Server stopped")
}

func reportQueueLength(ctx context.Context, queue *notification.Queue) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			queue.QueueLength(ctx)
		}
	}
}

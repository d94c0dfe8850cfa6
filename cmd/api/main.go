package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/database"
	"github.com/pageza/dippingsauce/backend/internal/logger"
	"github.com/pageza/dippingsauce/backend/internal/middleware"
	"github.com/pageza/dippingsauce/backend/internal/server"
	"github.com/pageza/dippingsauce/backend/internal/service"
	"github.com/pageza/dippingsauce/backend/internal/storage"
)

func main() {
	// A missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLog := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: !config.IsProduction(),
	})
	defer func() { _ = zapLog.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, zapLog); err != nil {
		zapLog.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLog *zap.Logger) error {
	ctx := context.Background()

	db, err := database.Open(cfg, zapLog)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	tokens, err := service.NewTokenService(cfg)
	if err != nil {
		return err
	}

	metrics := middleware.NewMetrics()
	deps := server.NewDependencies(cfg, db, tokens)

	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = redisClient.Close() }()
		deps.AuthLimit = middleware.NewAuthRateLimiter(redisClient, cfg.AuthRateLimit, zapLog, metrics).Middleware()
		zapLog.Info("auth rate limiting enabled", zap.Int("per_minute", cfg.AuthRateLimit))
	}

	s3Cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return err
	}
	if s3Cfg != nil {
		deps.Images = storage.NewImageStore(s3Cfg)
		zapLog.Info("image uploads enabled", zap.String("bucket", s3Cfg.BucketName))
	}

	srv, err := server.New(cfg, zapLog, metrics, deps)
	if err != nil {
		return err
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		zapLog.Info("received signal", zap.String("signal", sig.String()))
	}

	zapLog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	zapLog.Info("server stopped")
	return nil
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/database"
	"github.com/pageza/dippingsauce/backend/internal/logger"
	"github.com/pageza/dippingsauce/backend/internal/repository"
	"github.com/pageza/dippingsauce/backend/internal/seed"
	"github.com/pageza/dippingsauce/backend/internal/service"
)

func main() {
	username := flag.String("username", "admin", "Account to create; empty skips account creation")
	password := flag.String("password", "testpassword123", "Password for the seeded account")
	recipes := flag.Int("recipes", 25, "Number of sample recipes")
	reviews := flag.Int("reviews", 15, "Number of sample reviews")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLog := logger.New(logger.Config{Level: cfg.LogLevel, Development: true})
	defer func() { _ = zapLog.Sync() }()

	ctx := context.Background()
	db, err := database.Open(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(ctx, db); err != nil {
		zapLog.Fatal("failed to migrate database", zap.Error(err))
	}

	tokens, err := service.NewTokenService(cfg)
	if err != nil {
		zapLog.Fatal("failed to create token service", zap.Error(err))
	}
	auth := service.NewAuthService(repository.NewUserRepository(db), tokens, cfg.BCryptCost)

	_, err = seed.New(db, auth, zapLog).Run(ctx, seed.Options{
		Username: *username,
		Password: *password,
		Recipes:  *recipes,
		Reviews:  *reviews,
	})
	if err != nil {
		zapLog.Fatal("seeding failed", zap.Error(err))
	}
}

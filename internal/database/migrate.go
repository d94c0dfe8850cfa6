package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// Migrate brings the schema up to date. SQLite is migrated by gorm from
// the models; postgres runs the embedded goose migrations.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("failed to auto-migrate sqlite schema: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("error getting sql.DB: %w", err)
	}
	return RunMigrations(ctx, sqlDB, "up")
}

// RunMigrations executes a goose command ("up", "down", "status",
// "version", ...) against the embedded postgres migrations
func RunMigrations(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, db, migrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

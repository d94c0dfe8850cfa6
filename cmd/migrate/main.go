package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/database"
)

const usage = `Usage: migrate [-rollback] [command [args...]]

Commands:
  up        apply all pending migrations (default)
  down      roll back the most recent migration
  status    print the state of every migration
  version   print the current schema version
`

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration (same as the down command)")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	_ = godotenv.Load()

	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}
	if *rollback {
		command = "down"
	}

	switch command {
	case "up", "down", "status", "version":
	default:
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		log.Fatalf("migrations only run against postgres; sqlite is migrated by the server at startup (DB_DRIVER=%s)", cfg.DBDriver)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db, command, args...); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

// Command migrate manages the database schema.
//
// Usage:
//
//	migrate [--config=path] up|down|status
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/meetroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetroom-backend/internal/app"
	"github.com/heartmarshall/meetroom-backend/internal/config"
	"github.com/heartmarshall/meetroom-backend/migrations"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: migrate [--config=path] up|down|status")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		err = postgres.Migrate(ctx, pool, migrations.FS, logger)
	case "down":
		err = postgres.MigrateDown(ctx, pool, migrations.FS, logger)
	case "status":
		var states []postgres.MigrationState
		states, err = postgres.MigrationStatus(ctx, pool, migrations.FS)
		for _, s := range states {
			mark := "pending"
			if s.Applied {
				mark = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", s.Version, mark, s.Path)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		os.Exit(2)
	}

	if err != nil {
		pool.Close()
		log.Fatalf("migrate %s: %v", flag.Arg(0), err)
	}
}

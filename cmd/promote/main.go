// Command promote grants the admin role to an existing user by email. It
// recovers a company whose only admin was deactivated.
//
// Usage:
//
//	promote [--config=path] --email=user@example.com
//
// The user is reactivated as well.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/meetroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetroom-backend/internal/config"
	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote [--config=path] --email=user@example.com")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	n, err := postgres.Exec(ctx, pool, postgres.Builder.Update("users").
		Set("role", string(domain.UserRoleAdmin)).
		Set("active", true).
		Set("updated_at", time.Now()).
		Where("email = ?", domain.NormalizeEmail(*email)))
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	if n == 0 {
		fmt.Printf("No user found with email %q.\n", *email)
		pool.Close()
		os.Exit(1)
	}

	fmt.Printf("User %q promoted to admin.\n", *email)
}

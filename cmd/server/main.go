// Command server runs the meeting-room booking HTTP API.
//
// Flags:
//
//	--config  path to the YAML config file (default: $CONFIG_PATH or ./config.yaml)
//
// The process stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/meetroom-backend/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		log.Fatalf("server: %v", err)
	}
}

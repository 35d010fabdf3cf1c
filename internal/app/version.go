package app

import (
	"log/slog"
	"runtime"
)

// Stamped at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/meetroom-backend/internal/app.Version=1.4.0 -X ...app.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = "unknown"
)

// buildInfo groups the binary's version data for the startup log line.
func buildInfo() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("go", runtime.Version()),
	)
}

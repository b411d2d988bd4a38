// Package observability provides logging, metrics, and tracing.
package observability

import (
	"log/slog"
	"os"
)

// Logger is the application-wide structured logger, writing JSON to stdout.
var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Package logger provides the application's structured logging setup.
//
// The server is configured with a tint (colorized text) handler in dev and
// test environments and a JSON handler in prod and staging. Request handlers
// obtain a request-scoped logger via ContextRequestLogger; the request
// logging middleware stores one in the request context with the request ID
// already attached.
package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type contextKey struct{}

// ParseLogLevel maps a level name to a slog.Level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger creates the application logger and installs it as the slog
// default.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler

	switch environment {
	case "prod", "staging":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	appLogger := slog.New(handler)
	slog.SetDefault(appLogger)

	return appLogger
}

// ContextWithLogger returns a new context carrying the given request logger.
func ContextWithLogger(ctx context.Context, requestLogger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, requestLogger)
}

// ContextRequestLogger extracts the request logger from ctx.
// It falls back to the process-wide default logger when the context does not
// carry one (e.g. in tests that call handlers directly).
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if requestLogger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return requestLogger
	}
	return slog.Default()
}

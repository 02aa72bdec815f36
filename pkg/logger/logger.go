// Package logger provides a structured, levelled logger built on log/slog.
//
// Production (APP_ENV=production) writes JSON for log aggregators; every
// other environment gets the human-readable text handler:
//
//	logger.Info("order created", "order_id", 12, "items", 3)
//	// → time=... level=INFO msg="order created" order_id=12 items=3
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/salesdesk/config"
)

var L *slog.Logger

func init() {
	L = New(os.Stdout, config.AppEnv())
	slog.SetDefault(L)
}

// New builds a logger for the given environment writing to w.
func New(w io.Writer, env string) *slog.Logger {
	switch env {
	case "production", "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }

// Package main is the entrypoint for the Userboard API server.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/userboard/userboard/internal/config"
	"github.com/userboard/userboard/internal/handler"
	"github.com/userboard/userboard/internal/metrics"
	"github.com/userboard/userboard/internal/router"
	"github.com/userboard/userboard/internal/server"
	"github.com/userboard/userboard/internal/service"
	"github.com/userboard/userboard/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// The store connection must be up before the server accepts traffic.
	st, err := store.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("failed to connect to store", "error", err)
		os.Exit(1)
	}

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	if cfg.MonitorInterval > 0 {
		st.StartMonitor(monitorCtx, cfg.MonitorInterval)
	}

	recorder := metrics.NewInMemory()
	userService := service.NewUserService(st, recorder)

	r := router.New(router.Config{
		Handler:        handler.New(),
		Health:         handler.NewHealthHandler(st),
		Users:          handler.NewUserHandler(userService, logger),
		Metrics:        handler.NewMetricsHandler(recorder),
		Logger:         logger,
		AllowedOrigins: cfg.GetCORSAllowedOrigins(),
		MaxBodySize:    cfg.MaxRequestBodySize,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	srv.OnShutdown("store", func(ctx context.Context) error {
		stopMonitor()
		return st.Disconnect(ctx)
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
// With LOG_FILE set, output goes to a size-rotated file.
func initLogger(cfg *config.Config) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
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

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"

	"github.com/MosaabBleik/menu-service/internal/config"
	"github.com/MosaabBleik/menu-service/internal/database"
	"github.com/MosaabBleik/menu-service/internal/handlers"
	"github.com/MosaabBleik/menu-service/internal/menu"
	"github.com/MosaabBleik/menu-service/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("menu service stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load env vars
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})).
		With("service", "menu-service", "project_id", cfg.ProjectID)
	slog.SetDefault(logger)

	// Connect to database
	client, closeStore, err := database.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	menuHandler := &handlers.MenuHandler{
		Service:   menu.NewService(client, menu.WithLogger(logger)),
		ProjectID: cfg.ProjectID,
		Logger:    logger,
	}

	// Router
	router, err := handlers.NewRouter(menuHandler, logger, otel.GetMeterProvider())
	if err != nil {
		return err
	}

	return server.Run(ctx, logger, server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, router)
}

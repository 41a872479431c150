package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/pagetitle/internal/config"
	"github.com/nfrund/pagetitle/internal/logging"
	"github.com/nfrund/pagetitle/internal/server"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	// Create a new server instance with all routes registered.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Start the server; it returns after a graceful shutdown.
	if err := s.Start(context.Background()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

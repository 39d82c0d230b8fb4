package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// @title Voice Journal API
// @version 1.0
// @description Journals of recorded audio entries with speech-to-text transcription and sentiment.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	app := &cli.Command{
		Name:  "vja_backend",
		Usage: "Voice journal API server",
		Commands: []*cli.Command{
			serveCommand(logger),
			migrateCommand(logger),
			sweepCommand(logger),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dsa_tracker/internal/app"
	"dsa_tracker/internal/platform/config"
	"dsa_tracker/internal/platform/logger"
)

func main() {
	cfg, envFileFound := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogLevel)
	if !envFileFound {
		logger.Info().Msg("no .env file found, using environment only")
	}
	logger.Info().Str("env", cfg.AppEnv).Str("storage", cfg.StorageDriver).Bool("auth", cfg.AuthEnabled()).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger.Log)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialise application")
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
	}
}

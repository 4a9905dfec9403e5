// Package main runs Tarnished, a turn-based boss-rush played in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/config"
	"github.com/cory-johannsen/tarnished/internal/lifecycle"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Fatalf("initializing: %v", err)
	}
	logger := app.Logger
	logger.Info("tarnished initialized", zap.Duration("startup", time.Since(start)))

	lc := lifecycle.New(logger)
	lc.OnShutdown("app", cleanup)
	err = lc.Run(context.Background(), "campaign", app.Play)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		logger.Fatal("campaign failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/recordcheck/pkg/config"
	"github.com/dmitrymomot/recordcheck/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	cfgErr := config.Load(&cfg, config.WithPrefix(envPrefix))

	log := processLogger(cfg, os.Stderr)
	logger.SetAsDefault(log)
	if cfgErr != nil {
		log.Error("load configuration", logger.Error(cfgErr))
		os.Exit(2)
	}

	app := newApp(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(ctx, os.Args); err != nil {
		log.ErrorContext(ctx, "command failed", logger.Error(err))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"foodorder/internal/client"
	"foodorder/internal/config"
	"foodorder/internal/console"
	"foodorder/internal/logging"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		logging.NewWithOutput(os.Stderr, "warn", false).WithError(err).Fatal("load config")
	}

	//画面(stdout)と混ざらないようにstderrへ
	log := logging.NewWithOutput(os.Stderr, cfg.LogLevel, false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg.BackendURL, client.WithLogger(log))
	if err := console.New(api, os.Stdin, os.Stdout, log).Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Fatal("console stopped")
	}
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/regtoken/internal/app"
)

func main() {
	opts := app.Options{}
	flag.StringVar(&opts.ConfigFile, "config", app.DefaultConfigFile, "path to the JSON config file")
	flag.StringVar(&opts.EnvFile, "env", app.DefaultEnvFile, "path to the .env file loaded outside production")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, opts); err != nil {
		slog.Error("Server stopped with an error.", "reason", err)
		stop()
		os.Exit(1)
	}
	slog.Info("Server shutdown gracefully.")
}

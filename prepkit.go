package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"prepkit/pkg/app"
)

// main exposes a root-level entry point so the drills can be run with `go run prepkit.go`.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:], os.Stdout, nil); err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("prepkit stopped with error", zap.Error(err))
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"prepkit/pkg/app"
)

// main acts as a thin adapter so installs via go install get a prepkit binary.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:], os.Stdout, nil); err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("prepkit stopped with error", zap.Error(err))
	}
}

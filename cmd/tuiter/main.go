package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tuiterhq/tuiter/internal/tuiter/app"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	application, err := app.New(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			application.Logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		application.Logger.Info("shutting down", "signal", sig.String())
	}

	if err := application.Shutdown(context.Background()); err != nil {
		application.Logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}

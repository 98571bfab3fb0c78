package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	devhubhttp "github.com/fwojciec/devhub/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// or the process receives SIGINT or SIGTERM, then drains in-flight requests.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if deps.Server == nil {
		return errors.New("server not configured")
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(deps.Server.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), devhubhttp.DefaultShutdownTimeout)
		defer cancel()
		return deps.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

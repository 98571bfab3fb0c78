package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	main "github.com/fwojciec/devhub/cmd/devhub"
	devhubhttp "github.com/fwojciec/devhub/http"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns nil after the context is canceled", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		srv := devhubhttp.NewServer()
		srv.Addr = "127.0.0.1:0"
		srv.Logger = logger

		ctx, cancel := context.WithCancel(context.Background())
		deps := &main.Dependencies{Ctx: ctx, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Logger: logger, Server: srv}

		done := make(chan error, 1)
		go func() { done <- (&main.ServeCmd{}).Run(deps) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not stop")
		}
	})

	t.Run("reports listen errors", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		srv := devhubhttp.NewServer()
		srv.Addr = "256.0.0.1:bad"
		srv.Logger = logger

		deps := &main.Dependencies{Ctx: context.Background(), Logger: logger, Server: srv}

		err := (&main.ServeCmd{}).Run(deps)

		require.Error(t, err)
	})
}

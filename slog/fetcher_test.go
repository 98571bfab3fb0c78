package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/devhub/mock"
	devhubslog "github.com/fwojciec/devhub/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs url and body size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>ok</html>", nil
			},
		}

		f := devhubslog.NewLoggingFetcher(inner, logger)
		html, err := f.Fetch(context.Background(), "https://notion.example.com/page")

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		out := buf.String()
		assert.Contains(t, out, "msg=fetch")
		assert.Contains(t, out, "url=https://notion.example.com/page")
		assert.Contains(t, out, "bytes=15")
		assert.Contains(t, out, "duration=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		f := devhubslog.NewLoggingFetcher(inner, logger)
		_, err := f.Fetch(context.Background(), "https://notion.example.com/page")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="connection refused"`)
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	f := devhubslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.NoError(t, f.Close())
	assert.True(t, closed)
}

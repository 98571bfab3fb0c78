package importer_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/devhub"
	"github.com/fwojciec/devhub/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	noDelay := []time.Duration{0, 0, 0}

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		html, err := importer.FetchWithRetry(context.Background(), "https://x.test", func(context.Context, string) (string, error) {
			calls++
			return "<html></html>", nil
		}, nil, noDelay)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures and logs each retry", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		calls := 0
		html, err := importer.FetchWithRetry(context.Background(), "https://x.test", func(context.Context, string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection reset")
			}
			return "ok", nil
		}, logger, noDelay)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 2, bytes.Count(logs.Bytes(), []byte("retrying fetch")))
	})

	t.Run("gives up after the last delay", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := importer.FetchWithRetry(context.Background(), "https://x.test", func(context.Context, string) (string, error) {
			calls++
			return "", errors.New("timeout")
		}, nil, noDelay)

		assert.EqualError(t, err, "timeout")
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := importer.FetchWithRetry(context.Background(), "https://x.test", func(context.Context, string) (string, error) {
			calls++
			return "", devhub.Errorf(devhub.ENOTFOUND, "HTTP 404")
		}, nil, noDelay)

		assert.Equal(t, devhub.ENOTFOUND, devhub.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		_, err := importer.FetchWithRetry(ctx, "https://x.test", func(context.Context, string) (string, error) {
			cancel()
			return "", errors.New("boom")
		}, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

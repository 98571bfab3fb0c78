package importer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/devhub"
	"github.com/fwojciec/devhub/importer"
	"github.com/fwojciec/devhub/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importedAt = time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

// recordingStore is a mock.ContentStore that remembers what happened.
type recordingStore struct {
	mu        sync.Mutex
	saved     []*devhub.ImportedPage
	committed bool
	aborted   bool
}

func (s *recordingStore) mock() *mock.ContentStore {
	return &mock.ContentStore{
		SaveFn: func(_ context.Context, p *devhub.ImportedPage) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.saved = append(s.saved, p)
			return nil
		},
		CommitFn: func() error { s.committed = true; return nil },
		AbortFn:  func() error { s.aborted = true; return nil },
	}
}

func registry(pages ...*devhub.ActivePage) *mock.ActivePageService {
	return &mock.ActivePageService{
		FindActivePagesFn: func(context.Context) ([]*devhub.ActivePage, error) {
			return pages, nil
		},
	}
}

func newImporter(pages *mock.ActivePageService, store devhub.ContentStore, fetch func(context.Context, string) (string, error)) *importer.Importer {
	return &importer.Importer{
		Pages:   pages,
		Fetcher: &mock.Fetcher{FetchFn: fetch},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*devhub.ExtractResult, error) {
				return &devhub.ExtractResult{Title: "Extracted", ContentHTML: html}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "# " + strings.TrimPrefix(html, "<h1>"), nil
			},
		},
		Store:       store,
		RetryDelays: []time.Duration{0},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:         func() time.Time { return importedAt },
	}
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("saves fetched pages and commits", func(t *testing.T) {
		t.Parallel()

		store := &recordingStore{}
		im := newImporter(registry(
			&devhub.ActivePage{ExternalID: "a", Title: "Deploy", Slug: "ops/deploy", Category: "Ops", SourceURL: "https://notion.example.com/a", Active: true},
		), store.mock(), func(_ context.Context, url string) (string, error) {
			return "<h1>Deploy", nil
		})

		result, err := im.Import(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, len("# Deploy"), result.Bytes)
		assert.True(t, store.committed)
		assert.False(t, store.aborted)

		require.Len(t, store.saved, 1)
		page := store.saved[0]
		assert.Equal(t, "ops/deploy", page.Slug)
		assert.Equal(t, "Deploy", page.Title, "registry title wins over extracted title")
		assert.Equal(t, "Ops", page.Category)
		assert.Equal(t, "https://notion.example.com/a", page.SourceURL)
		assert.Equal(t, "# Deploy", page.Content)
		assert.Equal(t, importer.ContentHash("# Deploy"), page.ContentHash)
		assert.Equal(t, importedAt, page.ImportedAt)
	})

	t.Run("skips inactive and incomplete pages", func(t *testing.T) {
		t.Parallel()

		store := &recordingStore{}
		var fetched []string
		var mu sync.Mutex
		im := newImporter(registry(
			&devhub.ActivePage{ExternalID: "a", Title: "A", Slug: "a", SourceURL: "https://x.test/a", Active: true},
			&devhub.ActivePage{ExternalID: "b", Title: "B", Slug: "b", SourceURL: "https://x.test/b", Active: false},
			&devhub.ActivePage{ExternalID: "c", Title: "C", SourceURL: "https://x.test/c", Active: true},
			&devhub.ActivePage{ExternalID: "d", Title: "D", Slug: "d", Active: true},
		), store.mock(), func(_ context.Context, url string) (string, error) {
			mu.Lock()
			fetched = append(fetched, url)
			mu.Unlock()
			return "<h1>A", nil
		})

		result, err := im.Import(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 3, result.Skipped)
		assert.Equal(t, []string{"https://x.test/a"}, fetched)
	})

	t.Run("counts failures without aborting", func(t *testing.T) {
		t.Parallel()

		store := &recordingStore{}
		im := newImporter(registry(
			&devhub.ActivePage{ExternalID: "a", Title: "A", Slug: "a", SourceURL: "https://x.test/a", Active: true},
			&devhub.ActivePage{ExternalID: "b", Title: "B", Slug: "b", SourceURL: "https://x.test/b", Active: true},
		), store.mock(), func(_ context.Context, url string) (string, error) {
			if strings.HasSuffix(url, "/b") {
				return "", devhub.Errorf(devhub.ENOTFOUND, "HTTP 404")
			}
			return "<h1>A", nil
		})

		var mu sync.Mutex
		var events []importer.ProgressType
		result, err := im.Import(context.Background(), func(ev importer.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, ev.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Failed)
		assert.True(t, store.committed)
		assert.Equal(t, importer.ProgressStarted, events[0])
		assert.Equal(t, importer.ProgressFinished, events[len(events)-1])
		assert.Contains(t, events, importer.ProgressFailed)
		assert.Contains(t, events, importer.ProgressCompleted)
	})

	t.Run("aborts when every page fails", func(t *testing.T) {
		t.Parallel()

		store := &recordingStore{}
		im := newImporter(registry(
			&devhub.ActivePage{ExternalID: "a", Title: "A", Slug: "a", SourceURL: "https://x.test/a", Active: true},
		), store.mock(), func(context.Context, string) (string, error) {
			return "", errors.New("connection refused")
		})

		result, err := im.Import(context.Background(), nil)

		require.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Failed)
		assert.True(t, store.aborted)
		assert.False(t, store.committed)
	})

	t.Run("commits an empty section when nothing is importable", func(t *testing.T) {
		t.Parallel()

		store := &recordingStore{}
		im := newImporter(registry(), store.mock(), func(context.Context, string) (string, error) {
			t.Error("unexpected fetch")
			return "", nil
		})

		result, err := im.Import(context.Background(), nil)

		require.NoError(t, err)
		assert.Zero(t, result.Saved)
		assert.True(t, store.committed)
	})

	t.Run("rate limits by source host", func(t *testing.T) {
		t.Parallel()

		store := &recordingStore{}
		var mu sync.Mutex
		var hosts []string
		im := newImporter(registry(
			&devhub.ActivePage{ExternalID: "a", Title: "A", Slug: "a", SourceURL: "https://notion.example.com/a", Active: true},
		), store.mock(), func(context.Context, string) (string, error) {
			return "<h1>A", nil
		})
		im.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				mu.Lock()
				defer mu.Unlock()
				hosts = append(hosts, domain)
				return nil
			},
		}

		_, err := im.Import(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"notion.example.com"}, hosts)
	})

	t.Run("registry failure is returned", func(t *testing.T) {
		t.Parallel()

		im := newImporter(&mock.ActivePageService{
			FindActivePagesFn: func(context.Context) ([]*devhub.ActivePage, error) {
				return nil, errors.New("db closed")
			},
		}, (&recordingStore{}).mock(), nil)

		_, err := im.Import(context.Background(), nil)

		assert.ErrorContains(t, err, "db closed")
	})
}

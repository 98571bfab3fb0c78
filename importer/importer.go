// Package importer materializes active pages from the registry into the
// content store. Each page with a source URL and slug is fetched, reduced to
// its main content, converted to markdown and written as a document with
// front-matter, so it renders like hand-written documentation.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/devhub"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched in parallel.
const DefaultConcurrency = 4

// Importer orchestrates an import run.
type Importer struct {
	Pages       devhub.ActivePageService
	Fetcher     devhub.Fetcher
	Extractor   devhub.Extractor
	Converter   devhub.Converter
	Store       devhub.ContentStore
	RateLimiter devhub.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger

	// Now stamps imported pages. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of an import run.
type Result struct {
	Saved   int
	Skipped int // inactive, or missing a slug or source URL
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during an import run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

type importResult struct {
	position int
	page     *devhub.ImportedPage
	err      error
}

// Import fetches every importable page and replaces the store's contents
// with the results. Individual page failures are counted, not fatal. When
// every page fails the store is left untouched and an error is returned.
func (im *Importer) Import(ctx context.Context, progress ProgressFunc) (*Result, error) {
	pages, err := im.Pages.FindActivePages(ctx)
	if err != nil {
		return nil, fmt.Errorf("find active pages: %w", err)
	}

	var result Result
	var targets []*devhub.ActivePage
	for _, p := range pages {
		if !p.Active || p.Slug == "" || p.SourceURL == "" {
			result.Skipped++
			continue
		}
		targets = append(targets, p)
	}

	total := len(targets)
	emit := func(ev ProgressEvent) {
		if progress != nil {
			progress(ev)
		}
	}
	emit(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan importResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, p := range targets {
			g.Go(func() error {
				resultCh <- im.processPage(gctx, i, p)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collected by position so the store sees a stable order.
	results := make([]importResult, total)
	var completed atomic.Int64
	for r := range resultCh {
		results[r.position] = r
		n := int(completed.Add(1))
		if r.err != nil {
			emit(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: targets[r.position].SourceURL, Error: r.err})
		} else {
			emit(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: targets[r.position].SourceURL})
		}
	}

	if err := ctx.Err(); err != nil {
		_ = im.Store.Abort()
		return nil, err
	}

	for _, r := range results {
		if r.err != nil {
			result.Failed++
			im.logger().Warn("import failed", "url", targets[r.position].SourceURL, "error", r.err)
			continue
		}
		if err := im.Store.Save(ctx, r.page); err != nil {
			result.Failed++
			im.logger().Warn("save failed", "slug", r.page.Slug, "error", err)
			continue
		}
		result.Saved++
		result.Bytes += len(r.page.Content)
	}

	emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if total > 0 && result.Saved == 0 {
		if err := im.Store.Abort(); err != nil {
			return &result, fmt.Errorf("abort: %w", err)
		}
		return &result, fmt.Errorf("all %d pages failed to import", total)
	}
	if err := im.Store.Commit(); err != nil {
		return &result, fmt.Errorf("commit: %w", err)
	}
	return &result, nil
}

// processPage fetches, extracts and converts a single page.
func (im *Importer) processPage(ctx context.Context, position int, p *devhub.ActivePage) importResult {
	r := importResult{position: position}

	u, err := url.Parse(p.SourceURL)
	if err != nil || u.Host == "" {
		r.err = devhub.Errorf(devhub.EINVALID, "invalid source URL %q", p.SourceURL)
		return r
	}

	if im.RateLimiter != nil {
		if err := im.RateLimiter.Wait(ctx, u.Host); err != nil {
			r.err = err
			return r
		}
	}

	delays := im.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, p.SourceURL, im.Fetcher.Fetch, im.Logger, delays)
	if err != nil {
		r.err = err
		return r
	}

	extracted, err := im.Extractor.Extract(html)
	if err != nil {
		r.err = err
		return r
	}

	markdown, err := im.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		r.err = err
		return r
	}

	title := p.Title
	if title == "" {
		title = extracted.Title
	}

	r.page = &devhub.ImportedPage{
		Slug:        p.Slug,
		Title:       title,
		Category:    p.Category,
		SourceURL:   p.SourceURL,
		Content:     markdown,
		ContentHash: ContentHash(markdown),
		ImportedAt:  im.now(),
	}
	return r
}

func (im *Importer) logger() *slog.Logger {
	if im.Logger != nil {
		return im.Logger
	}
	return slog.Default()
}

func (im *Importer) now() time.Time {
	if im.Now != nil {
		return im.Now()
	}
	return time.Now()
}

// ContentHash returns the hex xxhash of content.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// Package rod fetches imported pages through headless Chrome, for sources
// such as Notion public pages that render their content client-side.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/devhub"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultSettleTime is how long the DOM must stay unchanged before a page
// counts as rendered.
const DefaultSettleTime = 500 * time.Millisecond

// Ensure Fetcher implements devhub.Fetcher at compile time.
var _ devhub.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	settle   time.Duration

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithSettleTime sets how long the DOM must be stable before it is read.
func WithSettleTime(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// NewFetcher launches a headless Chrome and connects to it.
// Close must be called to stop the browser process.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{settle: DefaultSettleTime}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to url, waits for the DOM to settle and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	if err := page.WaitDOMStable(f.settle, 0); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close shuts the browser down. It is safe to call more than once.
func (f *Fetcher) Close() error {
	f.closeOnce.Do(func() {
		f.closeErr = f.browser.Close()
		f.launcher.Kill()
	})
	return f.closeErr
}

package devhub

import (
	"context"
	"time"
)

// ImportedPage is an active page materialized as a markdown document.
type ImportedPage struct {
	Slug        string
	Title       string
	Category    string
	SourceURL   string
	Content     string // Markdown
	ContentHash string
	ImportedAt  time.Time
}

// Validate returns an error if the page cannot be written to the content store.
func (p *ImportedPage) Validate() error {
	if p.Slug == "" {
		return Errorf(EINVALID, "imported page slug required")
	}
	if p.SourceURL == "" {
		return Errorf(EINVALID, "imported page source URL required")
	}
	return nil
}

// ContentStore persists imported pages with atomic semantics.
// Save writes to a pending location; Commit makes all pending pages visible
// at once; Abort discards them.
type ContentStore interface {
	Save(ctx context.Context, page *ImportedPage) error
	Commit() error
	Abort() error
}

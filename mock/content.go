package mock

import (
	"context"

	"github.com/fwojciec/devhub"
)

var _ devhub.ContentResolver = (*ContentResolver)(nil)

// ContentResolver is a mock implementation of devhub.ContentResolver.
type ContentResolver struct {
	ResolveFn func(ctx context.Context, segments []string) (*devhub.Document, error)
}

func (r *ContentResolver) Resolve(ctx context.Context, segments []string) (*devhub.Document, error) {
	return r.ResolveFn(ctx, segments)
}

var _ devhub.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of devhub.DocumentParser.
type DocumentParser struct {
	ParseFn func(raw []byte) (*devhub.Document, error)
}

func (p *DocumentParser) Parse(raw []byte) (*devhub.Document, error) {
	return p.ParseFn(raw)
}

var _ devhub.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of devhub.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}

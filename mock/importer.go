package mock

import (
	"context"

	"github.com/fwojciec/devhub"
)

var _ devhub.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of devhub.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*devhub.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*devhub.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ devhub.Converter = (*Converter)(nil)

// Converter is a mock implementation of devhub.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ devhub.ContentStore = (*ContentStore)(nil)

// ContentStore is a mock implementation of devhub.ContentStore.
type ContentStore struct {
	SaveFn   func(ctx context.Context, page *devhub.ImportedPage) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ContentStore) Save(ctx context.Context, page *devhub.ImportedPage) error {
	return s.SaveFn(ctx, page)
}

func (s *ContentStore) Commit() error {
	return s.CommitFn()
}

func (s *ContentStore) Abort() error {
	return s.AbortFn()
}

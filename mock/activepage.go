package mock

import (
	"context"
	"time"

	"github.com/fwojciec/devhub"
)

var _ devhub.ActivePageService = (*ActivePageService)(nil)

// ActivePageService is a mock implementation of devhub.ActivePageService.
type ActivePageService struct {
	FindActivePagesFn   func(ctx context.Context) ([]*devhub.ActivePage, error)
	LastUpdatedFn       func(ctx context.Context) (time.Time, error)
	SyncActivePagesFn   func(ctx context.Context, inputs []devhub.ActivePageInput) ([]*devhub.ActivePage, error)
	DeleteActivePagesFn func(ctx context.Context, ids []string) ([]*devhub.ActivePage, error)
}

func (s *ActivePageService) FindActivePages(ctx context.Context) ([]*devhub.ActivePage, error) {
	return s.FindActivePagesFn(ctx)
}

func (s *ActivePageService) LastUpdated(ctx context.Context) (time.Time, error) {
	return s.LastUpdatedFn(ctx)
}

func (s *ActivePageService) SyncActivePages(ctx context.Context, inputs []devhub.ActivePageInput) ([]*devhub.ActivePage, error) {
	return s.SyncActivePagesFn(ctx, inputs)
}

func (s *ActivePageService) DeleteActivePages(ctx context.Context, ids []string) ([]*devhub.ActivePage, error) {
	return s.DeleteActivePagesFn(ctx, ids)
}

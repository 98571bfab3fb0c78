package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/devhub"
)

// Ensure LoggingActivePageService implements devhub.ActivePageService.
var _ devhub.ActivePageService = (*LoggingActivePageService)(nil)

// LoggingActivePageService wraps an ActivePageService with logging.
// Mutations log at info level, reads at debug.
type LoggingActivePageService struct {
	next   devhub.ActivePageService
	logger *slog.Logger
}

// NewLoggingActivePageService creates a new LoggingActivePageService.
func NewLoggingActivePageService(next devhub.ActivePageService, logger *slog.Logger) *LoggingActivePageService {
	return &LoggingActivePageService{next: next, logger: logger}
}

func (s *LoggingActivePageService) FindActivePages(ctx context.Context) (pages []*devhub.ActivePage, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "find active pages",
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindActivePages(ctx)
}

func (s *LoggingActivePageService) LastUpdated(ctx context.Context) (t time.Time, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "last updated",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LastUpdated(ctx)
}

func (s *LoggingActivePageService) SyncActivePages(ctx context.Context, inputs []devhub.ActivePageInput) (pages []*devhub.ActivePage, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "sync active pages",
			"submitted", len(inputs),
			"stored", len(pages),
			"active", countActive(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SyncActivePages(ctx, inputs)
}

func (s *LoggingActivePageService) DeleteActivePages(ctx context.Context, ids []string) (pages []*devhub.ActivePage, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "delete active pages",
			"ids", ids,
			"remaining", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteActivePages(ctx, ids)
}

func countActive(pages []*devhub.ActivePage) int {
	n := 0
	for _, p := range pages {
		if p.Active {
			n++
		}
	}
	return n
}
